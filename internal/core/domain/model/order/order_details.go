package order

import (
	"errors"
	"time"
)

// ErrPickupIsNotScheduled is returned by PickupAt when the date or the time is missing.
var ErrPickupIsNotScheduled = errors.New("pickup date and time are not set")

// OrderDetails is everything the customer enters in the form. It only holds
// strings and small enums, so assigning it copies it entirely; the wizard relies
// on that to freeze a snapshot once the form is left.
type OrderDetails struct {
	pickupAddress   Address
	deliveryAddress Address
	pickupDate      string
	pickupTime      string
	parcel          Parcel
	customer        Customer
}

// NewOrderDetails returns empty details with a General parcel.
func NewOrderDetails() OrderDetails {
	return OrderDetails{parcel: NewParcel()}
}

// RestoreOrderDetails rebuilds details from already captured values, for example fixtures
// or a stored snapshot. No validation is performed.
func RestoreOrderDetails(
	pickupAddress, deliveryAddress Address,
	pickupDate, pickupTime string,
	parcel Parcel,
	customer Customer,
) OrderDetails {
	return OrderDetails{
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
		pickupDate:      pickupDate,
		pickupTime:      pickupTime,
		parcel:          parcel,
		customer:        customer,
	}
}

// RestoreParcel rebuilds a parcel from captured values. No validation is performed.
func RestoreParcel(weight, length, width, height, contents string, category Category, specialInstructions string) Parcel {
	return Parcel{
		weight:              weight,
		length:              length,
		width:               width,
		height:              height,
		contents:            contents,
		category:            category,
		specialInstructions: specialInstructions,
	}
}

func (d OrderDetails) PickupAddress() Address   { return d.pickupAddress }
func (d OrderDetails) DeliveryAddress() Address { return d.deliveryAddress }
func (d OrderDetails) PickupDate() string       { return d.pickupDate }
func (d OrderDetails) PickupTime() string       { return d.pickupTime }
func (d OrderDetails) Parcel() Parcel           { return d.parcel }
func (d OrderDetails) Customer() Customer       { return d.customer }

// PickupDateTime returns "<date>T<time>" once both parts are chosen, "" otherwise.
func (d OrderDetails) PickupDateTime() string {
	if d.pickupDate == "" || d.pickupTime == "" {
		return ""
	}
	return d.pickupDate + "T" + d.pickupTime
}

// PickupAt parses PickupDateTime in the given location.
func (d OrderDetails) PickupAt(loc *time.Location) (time.Time, error) {
	value := d.PickupDateTime()
	if value == "" {
		return time.Time{}, ErrPickupIsNotScheduled
	}
	return time.ParseInLocation(DateTimeLayout, value, loc)
}

func (d *OrderDetails) SetPickupAddress(address Address) {
	d.pickupAddress = address
}

func (d *OrderDetails) SetPickupAddressField(field AddressField, value string) error {
	address, err := d.pickupAddress.WithField(field, value)
	if err != nil {
		return err
	}
	d.pickupAddress = address
	return nil
}

func (d *OrderDetails) SetDeliveryAddressField(field AddressField, value string) error {
	address, err := d.deliveryAddress.WithField(field, value)
	if err != nil {
		return err
	}
	d.deliveryAddress = address
	return nil
}

// SetPickupDate stores a YYYY-MM-DD date; dates before today are rejected.
func (d *OrderDetails) SetPickupDate(date string, today time.Time) error {
	if err := ValidatePickupDate(date, today); err != nil {
		return err
	}
	d.pickupDate = date
	return nil
}

// SetPickupTime stores one of the offered HH:MM slots.
func (d *OrderDetails) SetPickupTime(value string) error {
	if err := ValidatePickupTime(value); err != nil {
		return err
	}
	d.pickupTime = value
	return nil
}

func (d *OrderDetails) SetParcelField(field ParcelField, value string) error {
	parcel, err := d.parcel.WithField(field, value)
	if err != nil {
		return err
	}
	d.parcel = parcel
	return nil
}

func (d *OrderDetails) SetParcelCategory(category Category) error {
	parcel, err := d.parcel.WithCategory(category)
	if err != nil {
		return err
	}
	d.parcel = parcel
	return nil
}

func (d *OrderDetails) SetCustomerField(field CustomerField, value string) error {
	customer, err := d.customer.WithField(field, value)
	if err != nil {
		return err
	}
	d.customer = customer
	return nil
}
