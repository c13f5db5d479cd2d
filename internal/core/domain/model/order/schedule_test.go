package order_test

import (
	"testing"
	"time"

	"intake/internal/core/domain/model/order"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlots(t *testing.T) {
	slots := order.TimeSlots()

	require.Len(t, slots, 20)
	assert.Equal(t, order.TimeSlot{Value: "08:00", Label: "8:00 AM"}, slots[0])
	assert.Equal(t, order.TimeSlot{Value: "12:00", Label: "12:00 PM"}, slots[8])
	assert.Equal(t, order.TimeSlot{Value: "13:30", Label: "1:30 PM"}, slots[11])
	assert.Equal(t, order.TimeSlot{Value: "17:30", Label: "5:30 PM"}, slots[19])
	assert.True(t, order.IsTimeSlot("10:30"))
	assert.False(t, order.IsTimeSlot("10:15"))
	assert.False(t, order.IsTimeSlot("18:00"))
}

func TestValidatePickupDate(t *testing.T) {
	today := time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)

	require.NoError(t, order.ValidatePickupDate("", today))
	require.NoError(t, order.ValidatePickupDate("2026-10-17", today))
	require.NoError(t, order.ValidatePickupDate("2027-01-01", today))
	require.ErrorIs(t, order.ValidatePickupDate("2026-10-16", today), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.ValidatePickupDate("17/10/2026", today), errs.ErrValueIsInvalid)
}

func TestValidatePickupTime(t *testing.T) {
	require.NoError(t, order.ValidatePickupTime(""))
	require.NoError(t, order.ValidatePickupTime("08:00"))
	require.ErrorIs(t, order.ValidatePickupTime("7:00"), errs.ErrValueIsInvalid)
}

func TestFormatting(t *testing.T) {
	at := time.Date(2026, 3, 5, 9, 7, 0, 0, time.UTC)

	assert.Equal(t, "05/03/2026", order.FormatDate(at))
	assert.Equal(t, "09:07", order.FormatTime(at))
	assert.Equal(t, "05/03/2026 09:07:00", order.FormatDateTime(at))
}
