package queries_test

import (
	"testing"
	"time"

	"intake/internal/adapters/out/memory/sessionrepo"
	"intake/internal/core/application/usecases/queries"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedEstimator struct{}

func (fixedEstimator) Estimate(pickup, delivery order.Address, weight string) *wizard.RouteEstimate {
	if !pickup.IsComplete() || !delivery.IsComplete() || weight == "" {
		return nil
	}
	return &wizard.RouteEstimate{DistanceKm: 47, TimeMinutes: 56, Cost: 120.5}
}

func TestGetSessionQuery(t *testing.T) {
	t.Run("requires a session id", func(t *testing.T) {
		_, err := queries.NewGetSessionQuery(kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var q queries.GetSessionQuery

		require.ErrorIs(t, q.Validate(), queries.ErrGetSessionQueryIsNotConstructed)
	})
}

func TestGetSessionQueryHandler_Handle(t *testing.T) {
	repo := sessionrepo.NewRepository(nil)
	handler := queries.NewGetSessionQueryHandler(repo)

	t.Run("empty session", func(t *testing.T) {
		s, err := wizard.NewSession(kernel.NewUUID(), fixedEstimator{})
		require.NoError(t, err)
		require.NoError(t, repo.Add(t.Context(), s))
		query, _ := queries.NewGetSessionQuery(s.ID())

		view, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.True(t, view.ID.IsEqual(s.ID()))
		assert.Equal(t, "form", view.Stage)
		assert.Empty(t, view.PickupDateTime)
		assert.Nil(t, view.Estimate)
		assert.Equal(t, "general", view.Parcel.Category)
		assert.Equal(t, "Général", view.Parcel.CategoryLabel)
		assert.Equal(t, order.General.InstructionsPlaceholder(), view.Parcel.InstructionsPlaceholder)
	})

	t.Run("filled session", func(t *testing.T) {
		// Given
		s, _ := wizard.NewSession(kernel.NewUUID(), fixedEstimator{})
		today := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
		require.NoError(t, s.SetPickupAddressField(order.Street, "12 Rue des Lilas"))
		require.NoError(t, s.SetPickupAddressField(order.City, "Lyon"))
		require.NoError(t, s.SetPickupAddressField(order.PostalCode, "69003"))
		require.NoError(t, s.SetDeliveryAddressField(order.Street, "4 Quai de la Joliette"))
		require.NoError(t, s.SetDeliveryAddressField(order.City, "Marseille"))
		require.NoError(t, s.SetDeliveryAddressField(order.PostalCode, "13002"))
		require.NoError(t, s.SetPickupDate("2026-10-18", today))
		require.NoError(t, s.SetPickupTime("09:30"))
		require.NoError(t, s.SetParcelField(order.Weight, "12"))
		require.NoError(t, s.SetParcelCategory(order.Fragile))
		require.NoError(t, s.SetCustomerField(order.Email, "jean@example.fr"))
		require.NoError(t, repo.Add(t.Context(), s))
		query, _ := queries.NewGetSessionQuery(s.ID())

		// When
		view, err := handler.Handle(t.Context(), query)

		// Then
		require.NoError(t, err)
		assert.Equal(t, queries.AddressView{Street: "4 Quai de la Joliette", City: "Marseille", PostalCode: "13002"},
			view.DeliveryAddress)
		assert.Equal(t, "2026-10-18T09:30", view.PickupDateTime)
		assert.Equal(t, "Fragile", view.Parcel.CategoryLabel)
		assert.Equal(t, "jean@example.fr", view.Customer.Email)
		require.NotNil(t, view.Estimate)
		assert.Equal(t, 47, view.Estimate.DistanceKm)
		assert.Equal(t, "120,50 €", view.Estimate.FormattedCost)
	})

	t.Run("unknown session", func(t *testing.T) {
		query, _ := queries.NewGetSessionQuery(kernel.NewUUID())

		_, err := handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
