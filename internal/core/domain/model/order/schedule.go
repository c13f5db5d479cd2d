package order

import (
	"fmt"
	"time"

	"intake/internal/pkg/errs"
)

const (
	// DateLayout is the wire format of a pickup date.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format of a pickup time.
	TimeLayout = "15:04"
	// DateTimeLayout is the local ISO-8601 form returned by OrderDetails.PickupDateTime.
	DateTimeLayout = DateLayout + "T" + TimeLayout

	firstSlotMinutes = 8 * 60
	lastSlotMinutes  = 17*60 + 30
	slotStepMinutes  = 30
)

// TimeSlot is a bookable pickup time: Value is "HH:MM" in 24h form, Label the 12h form shown to customers.
type TimeSlot struct {
	Value string
	Label string
}

// TimeSlots returns the pickup slots from 08:00 to 17:30 every 30 minutes.
func TimeSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, (lastSlotMinutes-firstSlotMinutes)/slotStepMinutes+1)
	for total := firstSlotMinutes; total <= lastSlotMinutes; total += slotStepMinutes {
		hour, minute := total/60, total%60

		displayHour := hour % 12
		if displayHour == 0 {
			displayHour = 12
		}
		period := "AM"
		if hour >= 12 {
			period = "PM"
		}

		slots = append(slots, TimeSlot{
			Value: fmt.Sprintf("%02d:%02d", hour, minute),
			Label: fmt.Sprintf("%d:%02d %s", displayHour, minute, period),
		})
	}
	return slots
}

// IsTimeSlot reports whether value is one of TimeSlots.
func IsTimeSlot(value string) bool {
	for _, slot := range TimeSlots() {
		if slot.Value == value {
			return true
		}
	}
	return false
}

// ValidatePickupDate accepts "" (cleared) or a YYYY-MM-DD date that is not before today's date.
func ValidatePickupDate(date string, today time.Time) error {
	if date == "" {
		return nil
	}
	day, err := time.ParseInLocation(DateLayout, date, today.Location())
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickupDate", err)
	}
	y, m, d := today.Date()
	if day.Before(time.Date(y, m, d, 0, 0, 0, 0, today.Location())) {
		return errs.NewValueIsInvalidErrorWithCause("pickupDate", fmt.Errorf("%s is in the past", date))
	}
	return nil
}

// ValidatePickupTime accepts "" (cleared) or one of the offered time slots.
func ValidatePickupTime(value string) error {
	if value == "" || IsTimeSlot(value) {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("pickupTime", fmt.Errorf("%q is not an offered time slot", value))
}

// FormatDate renders t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatTime renders t as HH:MM.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatDateTime renders t as dd/mm/yyyy HH:MM:SS.
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}
