package order

import (
	"fmt"
	"regexp"
	"strings"

	"intake/internal/pkg/errs"
)

var postalCodePattern = regexp.MustCompile(`^\d{5}$`)

// AddressField names an editable field of an Address.
type AddressField int

const (
	// UnknownAddressField is the invalid zero value.
	UnknownAddressField AddressField = iota
	Street
	City
	PostalCode
)

func getAddressFieldStrings() map[AddressField]string {
	//nolint:exhaustive // UnknownAddressField is intentionally excluded as it's invalid
	return map[AddressField]string{
		Street:     "street",
		City:       "city",
		PostalCode: "postalCode",
	}
}

// ParseAddressField maps the wire name ("street", "city", "postalCode") to an AddressField.
func ParseAddressField(s string) (AddressField, error) {
	for field, name := range getAddressFieldStrings() {
		if name == s {
			return field, nil
		}
	}
	return UnknownAddressField, errs.NewValueIsInvalidErrorWithCause(
		"address field", fmt.Errorf("%q is not an address field", s))
}

// Validate rejects UnknownAddressField and out-of-range values.
func (f AddressField) Validate() error {
	if _, ok := getAddressFieldStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("address field", fmt.Errorf("%d is not an address field", f))
	}
	return nil
}

func (f AddressField) String() string {
	if s, ok := getAddressFieldStrings()[f]; ok {
		return s
	}
	return "unknown"
}

// Address is a postal address as typed by the customer. Values are kept verbatim;
// completeness and postal code format are checked by the validation rules, not on input.
type Address struct {
	street     string
	city       string
	postalCode string
}

// NewAddress builds an address from raw field values.
func NewAddress(street, city, postalCode string) Address {
	return Address{street: street, city: city, postalCode: postalCode}
}

func (a Address) Street() string     { return a.street }
func (a Address) City() string       { return a.city }
func (a Address) PostalCode() string { return a.postalCode }

// Field returns the value of the given field, or "" for an unknown field.
func (a Address) Field(field AddressField) string {
	switch field {
	case Street:
		return a.street
	case City:
		return a.city
	case PostalCode:
		return a.postalCode
	case UnknownAddressField:
	}
	return ""
}

// WithField returns a copy of the address with one field replaced.
func (a Address) WithField(field AddressField, value string) (Address, error) {
	if err := field.Validate(); err != nil {
		return a, err
	}
	switch field {
	case Street:
		a.street = value
	case City:
		a.city = value
	case PostalCode:
		a.postalCode = value
	case UnknownAddressField:
	}
	return a, nil
}

// IsComplete reports whether street, city and postal code are all non-empty.
func (a Address) IsComplete() bool {
	return a.street != "" && a.city != "" && a.postalCode != ""
}

// HasValidPostalCode reports whether the postal code is exactly five digits.
func (a Address) HasValidPostalCode() bool {
	return postalCodePattern.MatchString(a.postalCode)
}

// String renders "street, city, postalCode".
func (a Address) String() string {
	return strings.Join([]string{a.street, a.city, a.postalCode}, ", ")
}
