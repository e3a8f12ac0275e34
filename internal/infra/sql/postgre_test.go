package sql_test

import (
	"staybook-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("PostgreDatabase", func() {
	ginkgo.It("hands out a single shared pool handle", func() {
		first := sql.NewPosgreDatabase("postgres://localhost/staybook")
		second := sql.NewPosgreDatabase("postgres://localhost/other")

		gomega.Expect(first).NotTo(gomega.BeNil())
		gomega.Expect(second).To(gomega.BeIdenticalTo(first))
	})
})
