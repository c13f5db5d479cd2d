package wizard

import (
	"errors"
	"fmt"
	"time"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not created via NewSession.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrOrderIsFrozen is returned when order details are edited outside the Form stage.
	ErrOrderIsFrozen = errors.New("order details are frozen outside the form stage")

	// ErrConfirmationInProgress is returned when a session is asked to confirm or go back
	// while an earlier confirmation has not finished.
	ErrConfirmationInProgress = errors.New("order confirmation is already in progress")

	// ErrEstimatorIsRequired is returned by NewSession without an Estimator.
	ErrEstimatorIsRequired = errors.New("route estimator is required")
)

const confirmationFailurePrefix = "Échec de la confirmation de la commande : "

// Session is the wizard state of one browser tab. It owns the order details while
// they are edited, the simulated route estimate, and the messages shown to the customer.
//
// Session follows these invariants:
//   - Order details change only in the Form stage
//   - The stage leaves Form only when every validation rule passes
//   - The route estimate always reflects the current addresses and weight
//
// Sessions are not safe for concurrent use; repositories hand out clones and detect
// concurrent writers through the version.
type Session struct {
	id kernel.UUID

	details order.OrderDetails

	stage Stage

	estimate *RouteEstimate

	estimator Estimator

	confirming bool

	confirmationMessage string

	formError string

	formInfo string

	notificationWarning string

	version int64

	isConstructed bool
}

// NewSession starts a session in the Form stage with empty order details.
func NewSession(id kernel.UUID, estimator Estimator) (*Session, error) {
	s := &Session{
		details:       order.NewOrderDetails(),
		stage:         Form,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setEstimator(estimator),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the session was built by NewSession.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// Clone returns an independent copy. Order details are plain values, so only the
// estimate pointer needs copying.
func (s *Session) Clone() *Session {
	clone := *s
	if s.estimate != nil {
		estimate := *s.estimate
		clone.estimate = &estimate
	}
	return &clone
}

func (s *Session) ID() kernel.UUID             { return s.id }
func (s *Session) Details() order.OrderDetails { return s.details }
func (s *Session) Stage() Stage                { return s.stage }
func (s *Session) IsConfirming() bool          { return s.confirming }
func (s *Session) ConfirmationMessage() string { return s.confirmationMessage }
func (s *Session) FormError() string           { return s.formError }
func (s *Session) FormInfo() string            { return s.formInfo }
func (s *Session) NotificationWarning() string { return s.notificationWarning }
func (s *Session) Version() int64              { return s.version }

// Estimate returns a copy of the current route estimate, nil while inputs are incomplete.
func (s *Session) Estimate() *RouteEstimate {
	if s.estimate == nil {
		return nil
	}
	estimate := *s.estimate
	return &estimate
}

// IncrementVersion is called by repositories after a successful write.
func (s *Session) IncrementVersion() {
	s.version++
}

func (s *Session) SetPickupAddressField(field order.AddressField, value string) error {
	return s.edit(func(d *order.OrderDetails) error { return d.SetPickupAddressField(field, value) }, true)
}

func (s *Session) SetDeliveryAddressField(field order.AddressField, value string) error {
	return s.edit(func(d *order.OrderDetails) error { return d.SetDeliveryAddressField(field, value) }, true)
}

// SetPickupDate stores the YYYY-MM-DD pickup date. today bounds the earliest allowed date.
func (s *Session) SetPickupDate(date string, today time.Time) error {
	return s.edit(func(d *order.OrderDetails) error { return d.SetPickupDate(date, today) }, false)
}

func (s *Session) SetPickupTime(value string) error {
	return s.edit(func(d *order.OrderDetails) error { return d.SetPickupTime(value) }, false)
}

// SetParcelField edits a parcel text field. Only the weight feeds the estimate.
func (s *Session) SetParcelField(field order.ParcelField, value string) error {
	return s.edit(func(d *order.OrderDetails) error { return d.SetParcelField(field, value) }, field == order.Weight)
}

func (s *Session) SetParcelCategory(category order.Category) error {
	return s.edit(func(d *order.OrderDetails) error { return d.SetParcelCategory(category) }, false)
}

func (s *Session) SetCustomerField(field order.CustomerField, value string) error {
	return s.edit(func(d *order.OrderDetails) error { return d.SetCustomerField(field, value) }, false)
}

// ApplyGeolocatedAddress replaces the pickup address with the one resolved from the
// device position and records the informational notice.
func (s *Session) ApplyGeolocatedAddress(address order.Address) error {
	if err := s.requireEditable(); err != nil {
		return err
	}
	s.details.SetPickupAddress(address)
	s.recomputeEstimate()
	s.formError = ""
	s.formInfo = GeolocatedAddressInfo
	return nil
}

// RecordGeolocationFailure shows the failure message as form error. Geolocation is
// optional, so the session stays usable.
func (s *Session) RecordGeolocationFailure(failure GeolocationFailure) error {
	if err := s.requireEditable(); err != nil {
		return err
	}
	if failure != GeolocationUnsupported {
		s.formInfo = ""
	}
	s.formError = failure.Message()
	return nil
}

// ProceedToSummary validates the order details and moves to Summary. A failing rule is
// recorded as form error and returned as *order.ValidationError.
func (s *Session) ProceedToSummary() error {
	next, err := s.stage.Proceed()
	if err != nil {
		return err
	}

	if err := order.Validate(s.details); err != nil {
		var validationErr *order.ValidationError
		if errors.As(err, &validationErr) {
			s.formError = validationErr.Message
		}
		return err
	}

	s.formError = ""
	s.stage = next
	return nil
}

// ReturnToForm goes back to editing, keeping every entered value.
func (s *Session) ReturnToForm() error {
	if s.confirming {
		return ErrConfirmationInProgress
	}
	next, err := s.stage.Back()
	if err != nil {
		return err
	}
	s.stage = next
	return nil
}

// BeginConfirmation marks the session as confirming, clears previous error and warning,
// and returns the frozen order details to confirm.
func (s *Session) BeginConfirmation() (order.OrderDetails, error) {
	if s.confirming {
		return order.OrderDetails{}, ErrConfirmationInProgress
	}
	if _, err := s.stage.Confirm(); err != nil {
		return order.OrderDetails{}, err
	}
	s.confirming = true
	s.formError = ""
	s.notificationWarning = ""
	return s.details, nil
}

// FailConfirmation records why the confirmation message could not be produced.
// The session stays in Summary so the customer can retry.
func (s *Session) FailConfirmation(cause error) error {
	if s.stage != Summary {
		return &StageTransitionError{From: s.stage, Action: "fail confirmation"}
	}
	s.confirming = false
	s.formError = confirmationFailurePrefix + cause.Error()
	return nil
}

// CompleteConfirmation stores the confirmation message and the notification warning, then
// moves to Confirmed. Notification failures never block confirmation.
func (s *Session) CompleteConfirmation(message string, failed []Channel) error {
	next, err := s.stage.Confirm()
	if err != nil {
		return err
	}
	s.confirming = false
	s.confirmationMessage = message
	s.notificationWarning = NotificationWarning(failed)
	s.stage = next
	return nil
}

// StartNewOrder clears everything and returns to an empty form.
func (s *Session) StartNewOrder() error {
	next, err := s.stage.Reset()
	if err != nil {
		return err
	}
	s.details = order.NewOrderDetails()
	s.stage = next
	s.estimate = nil
	s.confirming = false
	s.confirmationMessage = ""
	s.formError = ""
	s.formInfo = ""
	s.notificationWarning = ""
	return nil
}

func (s *Session) edit(apply func(d *order.OrderDetails) error, affectsEstimate bool) error {
	if err := s.requireEditable(); err != nil {
		return err
	}
	if err := apply(&s.details); err != nil {
		return err
	}
	if affectsEstimate {
		s.recomputeEstimate()
	}
	return nil
}

func (s *Session) requireEditable() error {
	if s.stage != Form {
		return fmt.Errorf("%w: stage is %s", ErrOrderIsFrozen, s.stage)
	}
	return nil
}

func (s *Session) recomputeEstimate() {
	s.estimate = s.estimator.Estimate(
		s.details.PickupAddress(),
		s.details.DeliveryAddress(),
		s.details.Parcel().Weight(),
	)
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Session) setEstimator(estimator Estimator) error {
	if estimator == nil {
		return ErrEstimatorIsRequired
	}
	s.estimator = estimator
	return nil
}
