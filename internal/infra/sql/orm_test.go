package sql_test

import (
	"context"
	"errors"
	"time"

	"staybook-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type testRecord struct {
	ID   string `gorm:"primaryKey"`
	Name string
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()

		err = orm.AutoMigrate(&testRecord{})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.Context("record lifecycle", func() {
		ginkgo.It("creates and finds records", func() {
			record := testRecord{ID: "r1", Name: "first"}
			err := orm.WithContext(ctx).Create(&record).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var found testRecord
			err = orm.WithContext(ctx).First(&found, "id = ?", "r1").Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(found.Name).To(gomega.Equal("first"))
		})

		ginkgo.It("maps a missing record onto the sentinel", func() {
			var found testRecord
			err := orm.WithContext(ctx).First(&found, "id = ?", "missing").Error()
			gomega.Expect(errors.Is(err, sql.ErrRecordNotFound)).To(gomega.BeTrue())
		})

		ginkgo.It("updates in place with Save", func() {
			record := testRecord{ID: "r1", Name: "first"}
			gomega.Expect(orm.WithContext(ctx).Create(&record).Error()).NotTo(gomega.HaveOccurred())

			record.Name = "renamed"
			gomega.Expect(orm.WithContext(ctx).Save(&record).Error()).NotTo(gomega.HaveOccurred())

			var count int64
			err := orm.WithContext(ctx).Model(&testRecord{}).Count(&count).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(1)))
		})
	})

	ginkgo.Context("Transaction", func() {
		ginkgo.It("rolls back every write when the callback fails", func() {
			err := orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
				record := testRecord{ID: "r1", Name: "first"}
				if err := tx.Create(&record).Error(); err != nil {
					return err
				}
				return errors.New("boom")
			})
			gomega.Expect(err).To(gomega.HaveOccurred())

			var count int64
			gomega.Expect(orm.WithContext(ctx).Model(&testRecord{}).Count(&count).Error()).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})

		ginkgo.It("commits when the callback succeeds", func() {
			err := orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
				return tx.Create(&testRecord{ID: "r1", Name: "first"}).Error()
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var count int64
			gomega.Expect(orm.WithContext(ctx).Model(&testRecord{}).Count(&count).Error()).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(1)))
		})
	})

	ginkgo.Context("WithTimeout", func() {
		ginkgo.It("returns a usable ORM instance", func() {
			timeoutORM := orm.WithTimeout(ctx, 2*time.Second)
			gomega.Expect(timeoutORM).NotTo(gomega.BeNil())

			var count int64
			err := timeoutORM.Model(&testRecord{}).Count(&count).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})
	})

	ginkgo.Context("isolation", func() {
		ginkgo.It("gives every memory ORM its own database", func() {
			other, err := sql.NewMemoryORM()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(other.AutoMigrate(&testRecord{})).NotTo(gomega.HaveOccurred())

			gomega.Expect(orm.WithContext(ctx).Create(&testRecord{ID: "r1"}).Error()).NotTo(gomega.HaveOccurred())

			var count int64
			gomega.Expect(other.WithContext(ctx).Model(&testRecord{}).Count(&count).Error()).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})
	})
})
