package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"intake/internal/core/domain/model/kernel"
	"intake/internal/core/domain/model/order"
	"intake/internal/core/domain/model/wizard"
	"intake/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *wizard.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*wizard.Session, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*wizard.Session); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *wizard.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockGenerator struct{ mock.Mock }

func (m *MockGenerator) Generate(ctx context.Context, details order.OrderDetails) (string, error) {
	args := m.Called(ctx, details)
	return args.String(0), args.Error(1)
}

type MockSmsGateway struct{ mock.Mock }

func (m *MockSmsGateway) SendSms(ctx context.Context, phone, content string) error {
	args := m.Called(ctx, phone, content)
	return args.Error(0)
}

type MockEmailTransport struct{ mock.Mock }

func (m *MockEmailTransport) SendEmail(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Dispatch(ctx context.Context, details order.OrderDetails, message string) []wizard.Channel {
	args := m.Called(ctx, details, message)
	if failed, ok := args.Get(0).([]wizard.Channel); ok {
		return failed
	}
	return nil
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Reverse(ctx context.Context, position kernel.Coordinates) (order.Address, error) {
	args := m.Called(ctx, position)
	return args.Get(0).(order.Address), args.Error(1)
}

// fakeRepository is a minimal versioned store for multi-step flows.
type fakeRepository struct {
	mu       sync.Mutex
	sessions map[kernel.UUID]*wizard.Session
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{sessions: map[kernel.UUID]*wizard.Session{}}
}

func (r *fakeRepository) Add(_ context.Context, s *wizard.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s.Clone()
	return nil
}

func (r *fakeRepository) Get(_ context.Context, id kernel.UUID) (*wizard.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("sessionId", id.String())
	}
	return s.Clone(), nil
}

func (r *fakeRepository) Update(_ context.Context, s *wizard.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.sessions[s.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("sessionId", s.ID().String())
	}
	if stored.Version() != s.Version() {
		return errs.NewVersionIsInvalidError("session")
	}
	s.IncrementVersion()
	r.sessions[s.ID()] = s.Clone()
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id kernel.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *fakeRepository) DeleteIdleSince(context.Context, time.Time) (int, error) {
	return 0, nil
}

type fixedEstimator struct{}

func (fixedEstimator) Estimate(pickup, delivery order.Address, weight string) *wizard.RouteEstimate {
	if !pickup.IsComplete() || !delivery.IsComplete() || weight == "" {
		return nil
	}
	return &wizard.RouteEstimate{DistanceKm: 50, TimeMinutes: 60, Cost: 150}
}

var today = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

// seedSession stores a new session, optionally filled and moved to Summary.
func seedSession(t *testing.T, repo *fakeRepository, filled, summary bool) kernel.UUID {
	t.Helper()
	s, err := wizard.NewSession(kernel.NewUUID(), fixedEstimator{})
	require.NoError(t, err)

	if filled {
		require.NoError(t, s.SetPickupAddressField(order.Street, "12 Rue des Lilas"))
		require.NoError(t, s.SetPickupAddressField(order.City, "Lyon"))
		require.NoError(t, s.SetPickupAddressField(order.PostalCode, "69003"))
		require.NoError(t, s.SetDeliveryAddressField(order.Street, "4 Quai de la Joliette"))
		require.NoError(t, s.SetDeliveryAddressField(order.City, "Marseille"))
		require.NoError(t, s.SetDeliveryAddressField(order.PostalCode, "13002"))
		require.NoError(t, s.SetPickupDate("2026-10-18", today))
		require.NoError(t, s.SetPickupTime("09:30"))
		require.NoError(t, s.SetParcelField(order.Weight, "12"))
		require.NoError(t, s.SetParcelField(order.Contents, "Pièces de machine"))
		require.NoError(t, s.SetCustomerField(order.Name, "Jean Dupont"))
		require.NoError(t, s.SetCustomerField(order.Phone, "06 12 34 56 78"))
		require.NoError(t, s.SetCustomerField(order.Email, "jean.dupont@example.com"))
	}
	if summary {
		require.NoError(t, s.ProceedToSummary())
	}

	require.NoError(t, repo.Add(t.Context(), s))
	return s.ID()
}

func load(t *testing.T, repo *fakeRepository, id kernel.UUID) *wizard.Session {
	t.Helper()
	s, err := repo.Get(t.Context(), id)
	require.NoError(t, err)
	return s
}
