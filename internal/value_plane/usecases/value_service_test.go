package usecases_test

import (
	"context"
	"errors"
	"time"

	"staybook-server/internal/infra/utils"
	schemausecases "staybook-server/internal/schema_plane/usecases"
	"staybook-server/internal/shared_kernel/domain"
	valueusecases "staybook-server/internal/value_plane/usecases"
	"staybook-server/internal/value_plane/validation"
	mockvalue "staybook-server/test/unit/doubles/value_plane/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ValueService", func() {
	var (
		ctrl            *gomock.Controller
		mockRepository  *mockvalue.MockStoredValueRepository
		mockDefinitions *mockvalue.MockFieldDefinitionProvider
		service         valueusecases.ValueService

		ctx        context.Context
		instanceID domain.ID
		definition domain.FieldDefinition
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = mockvalue.NewMockStoredValueRepository(ctrl)
		mockDefinitions = mockvalue.NewMockFieldDefinitionProvider(ctrl)
		service = valueusecases.NewValueService(mockRepository, mockDefinitions)

		ctx = context.Background()
		instanceID = domain.ID(utils.GenerateUUID())

		numberType, err := domain.NewFieldTypeBuilder().
			WithName("number").
			WithDisplayName("Number").
			WithRuleSchema(domain.RuleSchema{domain.RuleMin, domain.RuleMax}).
			Build()
		Expect(err).ToNot(HaveOccurred())

		definition, err = domain.NewFieldDefinitionBuilder().
			WithCategoryID(domain.ID(utils.GenerateUUID())).
			WithType(numberType).
			WithFieldName("max_guests").
			WithDisplayName("Maximum Guests").
			WithCustomRules(domain.RuleSet{Min: utils.Ptr(1.0), Max: utils.Ptr(20.0)}).
			Build()
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("UpsertValue", func() {
		It("creates a value on first write", func() {
			mockDefinitions.EXPECT().GetByID(ctx, definition.ID).Return(definition, nil)
			mockRepository.EXPECT().
				GetByInstanceAndField(ctx, instanceID, definition.ID).
				Return(domain.StoredValue{}, valueusecases.ErrValueNotFound)
			mockRepository.EXPECT().
				Create(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, value domain.StoredValue) error {
					Expect(value.InstanceID).To(Equal(instanceID))
					Expect(value.FieldDefinitionID).To(Equal(definition.ID))
					Expect(value.RawValue).To(Equal("5"))
					return nil
				})

			result, err := service.UpsertValue(ctx, instanceID, definition.ID, "5")

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Accepted()).To(BeTrue())
			Expect(result.Normalized).To(Equal("5"))
		})

		It("updates in place on a second write", func() {
			existing := domain.NewStoredValue(instanceID, definition.ID, "5")
			existing.Orphaned = true

			mockDefinitions.EXPECT().GetByID(ctx, definition.ID).Return(definition, nil)
			mockRepository.EXPECT().
				GetByInstanceAndField(ctx, instanceID, definition.ID).
				Return(existing, nil)
			mockRepository.EXPECT().
				Update(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, value domain.StoredValue) error {
					Expect(value.ID).To(Equal(existing.ID))
					Expect(value.RawValue).To(Equal("7"))
					Expect(value.Orphaned).To(BeFalse())
					return nil
				})

			result, err := service.UpsertValue(ctx, instanceID, definition.ID, "7")

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Accepted()).To(BeTrue())
		})

		It("returns the violations without persisting when the value is rejected", func() {
			mockDefinitions.EXPECT().GetByID(ctx, definition.ID).Return(definition, nil)

			result, err := service.UpsertValue(ctx, instanceID, definition.ID, "25")

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Accepted()).To(BeFalse())
			Expect(result.HasCode(validation.CodeAboveMax)).To(BeTrue())
		})

		It("rejects writes against an unknown definition", func() {
			unknownID := domain.ID(utils.GenerateUUID())
			mockDefinitions.EXPECT().
				GetByID(ctx, unknownID).
				Return(domain.FieldDefinition{}, schemausecases.ErrFieldDefinitionNotFound)

			_, err := service.UpsertValue(ctx, instanceID, unknownID, "5")

			Expect(err).To(MatchError(schemausecases.ErrFieldDefinitionNotFound))
		})

		It("treats a soft-deleted definition as not found", func() {
			deleted := definition
			now := time.Now()
			deleted.DeletedAt = &now
			mockDefinitions.EXPECT().GetByID(ctx, definition.ID).Return(deleted, nil)

			_, err := service.UpsertValue(ctx, instanceID, definition.ID, "5")

			Expect(err).To(MatchError(schemausecases.ErrFieldDefinitionNotFound))
		})

		It("surfaces a broken definition as a configuration error", func() {
			broken := definition
			broken.CustomRules = domain.RuleSet{Pattern: utils.Ptr("([unclosed")}
			mockDefinitions.EXPECT().GetByID(ctx, definition.ID).Return(broken, nil)

			result, err := service.UpsertValue(ctx, instanceID, definition.ID, "5")

			Expect(err).To(MatchError(schemausecases.ErrInvalidFieldConfiguration))
			Expect(result.ConfigurationError()).To(BeTrue())
		})
	})

	Context("GetValue", func() {
		It("returns the stored value", func() {
			stored := domain.NewStoredValue(instanceID, definition.ID, "5")
			mockRepository.EXPECT().
				GetByInstanceAndField(ctx, instanceID, definition.ID).
				Return(stored, nil)

			value, err := service.GetValue(ctx, instanceID, definition.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(value.RawValue).To(Equal("5"))
		})

		It("propagates not found", func() {
			mockRepository.EXPECT().
				GetByInstanceAndField(ctx, instanceID, definition.ID).
				Return(domain.StoredValue{}, valueusecases.ErrValueNotFound)

			_, err := service.GetValue(ctx, instanceID, definition.ID)

			Expect(err).To(MatchError(valueusecases.ErrValueNotFound))
		})
	})

	Context("ListInstanceValues", func() {
		It("returns every value of the instance", func() {
			values := []domain.StoredValue{
				domain.NewStoredValue(instanceID, definition.ID, "5"),
				domain.NewStoredValue(instanceID, domain.ID(utils.GenerateUUID()), "hello"),
			}
			mockRepository.EXPECT().FindByInstance(ctx, instanceID).Return(values, nil)

			result, err := service.ListInstanceValues(ctx, instanceID)

			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(2))
		})

		It("wraps repository failures", func() {
			mockRepository.EXPECT().
				FindByInstance(ctx, instanceID).
				Return(nil, errors.New("connection reset"))

			_, err := service.ListInstanceValues(ctx, instanceID)

			Expect(err).To(MatchError(ContainSubstring("listing instance values")))
		})
	})

	Context("RevalidateInstance", func() {
		It("reports stale values against the current definition without mutating them", func() {
			// Grandfathered value written before the max was tightened to 20.
			stale := domain.NewStoredValue(instanceID, definition.ID, "50")
			fresh := domain.NewStoredValue(instanceID, definition.ID, "5")
			fresh.FieldDefinitionID = domain.ID(utils.GenerateUUID())

			freshDef := definition
			freshDef.ID = fresh.FieldDefinitionID

			mockRepository.EXPECT().
				FindByInstance(ctx, instanceID).
				Return([]domain.StoredValue{stale, fresh}, nil)
			mockDefinitions.EXPECT().GetByID(ctx, stale.FieldDefinitionID).Return(definition, nil)
			mockDefinitions.EXPECT().GetByID(ctx, fresh.FieldDefinitionID).Return(freshDef, nil)

			results, err := service.RevalidateInstance(ctx, instanceID)

			Expect(err).ToNot(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[stale.FieldDefinitionID].HasCode(validation.CodeAboveMax)).To(BeTrue())
			Expect(results[fresh.FieldDefinitionID].Accepted()).To(BeTrue())
		})

		It("skips values whose definition is gone", func() {
			orphan := domain.NewStoredValue(instanceID, domain.ID(utils.GenerateUUID()), "5")

			mockRepository.EXPECT().
				FindByInstance(ctx, instanceID).
				Return([]domain.StoredValue{orphan}, nil)
			mockDefinitions.EXPECT().
				GetByID(ctx, orphan.FieldDefinitionID).
				Return(domain.FieldDefinition{}, schemausecases.ErrFieldDefinitionNotFound)

			results, err := service.RevalidateInstance(ctx, instanceID)

			Expect(err).ToNot(HaveOccurred())
			Expect(results).To(BeEmpty())
		})
	})
})
