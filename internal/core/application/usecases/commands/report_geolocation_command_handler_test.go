package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportGeolocationCommandHandler_Handle(t *testing.T) {
	position, _ := kernel.NewCoordinates(45.76, 4.83)

	t.Run("fills the pickup address from the position", func(t *testing.T) {
		repo := newFakeRepository()
		id := seedSession(t, repo, false, false)
		address := order.NewAddress("123 Rue de la Géolocalisation", "Votre Ville (Simulée)", "42000")
		geocoder := new(MockGeocoder)
		geocoder.On("Reverse", mock.Anything, position).Return(address, nil).Once()
		cmd, _ := commands.NewReportGeolocationPositionCommand(id, position)

		h := commands.NewReportGeolocationCommandHandler(repo, geocoder, slog.Default())
		require.NoError(t, h.Handle(t.Context(), cmd))

		s := load(t, repo, id)
		assert.Equal(t, address, s.Details().PickupAddress())
		assert.Equal(t, wizard.GeolocatedAddressInfo, s.FormInfo())
		geocoder.AssertExpectations(t)
	})

	t.Run("records the reported failure", func(t *testing.T) {
		repo := newFakeRepository()
		id := seedSession(t, repo, false, false)
		cmd, _ := commands.NewReportGeolocationFailureCommand(id, wizard.PermissionDenied)

		h := commands.NewReportGeolocationCommandHandler(repo, new(MockGeocoder), slog.Default())
		require.NoError(t, h.Handle(t.Context(), cmd))

		assert.Equal(t, wizard.PermissionDenied.Message(), load(t, repo, id).FormError())
	})

	t.Run("geocoder errors are shown as unavailable position", func(t *testing.T) {
		repo := newFakeRepository()
		id := seedSession(t, repo, false, false)
		geocoder := new(MockGeocoder)
		geocoder.On("Reverse", mock.Anything, position).Return(order.Address{}, errors.New("no route")).Once()
		cmd, _ := commands.NewReportGeolocationPositionCommand(id, position)

		h := commands.NewReportGeolocationCommandHandler(repo, geocoder, slog.Default())
		require.NoError(t, h.Handle(t.Context(), cmd))

		s := load(t, repo, id)
		assert.Equal(t, wizard.PositionUnavailable.Message(), s.FormError())
		assert.Empty(t, s.Details().PickupAddress().Street())
	})
}
