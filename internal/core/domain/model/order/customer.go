package order

import (
	"fmt"
	"regexp"

	"intake/internal/pkg/errs"
)

var (
	// French numbering: ten digits starting with 0, pairs optionally separated by space, '_', '.' or '-'.
	phonePattern = regexp.MustCompile(`^0[1-9](?:[ _.-]?\d{2}){4}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// CustomerField names an editable field of a Customer.
type CustomerField int

const (
	// UnknownCustomerField is the invalid zero value.
	UnknownCustomerField CustomerField = iota
	Name
	Phone
	Email
)

func getCustomerFieldStrings() map[CustomerField]string {
	//nolint:exhaustive // UnknownCustomerField is intentionally excluded as it's invalid
	return map[CustomerField]string{
		Name:  "name",
		Phone: "phone",
		Email: "email",
	}
}

// ParseCustomerField maps a wire name to a CustomerField.
func ParseCustomerField(s string) (CustomerField, error) {
	for field, name := range getCustomerFieldStrings() {
		if name == s {
			return field, nil
		}
	}
	return UnknownCustomerField, errs.NewValueIsInvalidErrorWithCause(
		"customer field", fmt.Errorf("%q is not a customer field", s))
}

func (f CustomerField) Validate() error {
	if _, ok := getCustomerFieldStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("customer field", fmt.Errorf("%d is not a customer field", f))
	}
	return nil
}

func (f CustomerField) String() string {
	if s, ok := getCustomerFieldStrings()[f]; ok {
		return s
	}
	return "unknown"
}

// Customer holds the contact details used for the callback and the notifications.
type Customer struct {
	name  string
	phone string
	email string
}

// NewCustomer builds a customer from raw field values.
func NewCustomer(name, phone, email string) Customer {
	return Customer{name: name, phone: phone, email: email}
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Phone() string { return c.phone }
func (c Customer) Email() string { return c.email }

// Field returns the value of the given field, or "" for an unknown field.
func (c Customer) Field(field CustomerField) string {
	switch field {
	case Name:
		return c.name
	case Phone:
		return c.phone
	case Email:
		return c.email
	case UnknownCustomerField:
	}
	return ""
}

// WithField returns a copy of the customer with one field replaced.
func (c Customer) WithField(field CustomerField, value string) (Customer, error) {
	if err := field.Validate(); err != nil {
		return c, err
	}
	switch field {
	case Name:
		c.name = value
	case Phone:
		c.phone = value
	case Email:
		c.email = value
	case UnknownCustomerField:
	}
	return c, nil
}

// HasValidPhone reports whether the phone number follows the French ten-digit format.
func (c Customer) HasValidPhone() bool {
	return phonePattern.MatchString(c.phone)
}

// HasValidEmail reports whether the email looks like local@domain.tld.
func (c Customer) HasValidEmail() bool {
	return emailPattern.MatchString(c.email)
}
