package queries

import (
	"errors"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New(
	"GetSessionQuery must be created via NewGetSessionQuery constructor",
)

// GetSessionQuery reads the current state of one wizard session.
//
// Example:
//
//	query, err := NewGetSessionQuery(sessionID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetSessionQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionQuery{}, err
	}
	return GetSessionQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSessionQuery) SessionID() kernel.UUID { return q.sessionID }

func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

// AddressView is an address as entered.
type AddressView struct {
	Street     string
	City       string
	PostalCode string
}

// ParcelView carries the parcel fields plus the label and placeholder of its category.
type ParcelView struct {
	Weight                  string
	Length                  string
	Width                   string
	Height                  string
	Contents                string
	Category                string
	CategoryLabel           string
	SpecialInstructions     string
	InstructionsPlaceholder string
}

type CustomerView struct {
	Name  string
	Phone string
	Email string
}

// EstimateView is the route estimate with the cost preformatted in French.
type EstimateView struct {
	DistanceKm    int
	TimeMinutes   int
	Cost          float64
	FormattedCost string
}

// GetSessionQueryResponse is the read model of a session. PickupDateTime is empty
// until both the date and the time are set; Estimate is nil until it can be computed.
type GetSessionQueryResponse struct {
	ID                  kernel.UUID
	Stage               string
	Version             int64
	Confirming          bool
	PickupAddress       AddressView
	DeliveryAddress     AddressView
	PickupDate          string
	PickupTime          string
	PickupDateTime      string
	Parcel              ParcelView
	Customer            CustomerView
	Estimate            *EstimateView
	FormError           string
	FormInfo            string
	NotificationWarning string
	ConfirmationMessage string
}
