package payment

import (
	"errors"
	"testing"

	"unique-travel/httpServices/sslcommerz"
	bookingModel "unique-travel/models/booking"
	paymentModel "unique-travel/models/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreatePayment(p *paymentModel.Payment) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockStore) PaymentByTrxID(trxID string) (*paymentModel.Payment, error) {
	args := m.Called(trxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*paymentModel.Payment), args.Error(1)
}

func (m *MockStore) BookingByID(id uint) (*bookingModel.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookingModel.Booking), args.Error(1)
}

func (m *MockStore) UpdatePaymentStatus(paymentID uint, status string) error {
	args := m.Called(paymentID, status)
	return args.Error(0)
}

func (m *MockStore) UpdateBookingStatus(bookingID uint, status string) error {
	args := m.Called(bookingID, status)
	return args.Error(0)
}

func (m *MockStore) InTransaction(fn func(Store) error) error {
	m.Called()
	return fn(m)
}

// MockGateway is a mock implementation of Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateSession(req sslcommerz.SessionRequest) (*sslcommerz.SessionResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sslcommerz.SessionResponse), args.Error(1)
}

func TestInitiatePersistsPendingPayment(t *testing.T) {
	store := &MockStore{}
	gateway := &MockGateway{}
	svc := NewService(store, gateway)

	gateway.On("CreateSession", mock.MatchedBy(func(r sslcommerz.SessionRequest) bool {
		return r.Amount == 150 && r.Currency == "BDT" && r.TrxID != ""
	})).Return(&sslcommerz.SessionResponse{
		Status:         "SUCCESS",
		GatewayPageURL: "https://gateway.example/pay/abc",
	}, nil)

	store.On("CreatePayment", mock.MatchedBy(func(p *paymentModel.Payment) bool {
		return p.Status == paymentModel.StatusPending && p.BookingID == 7 && p.TrxID != ""
	})).Return(nil)

	url, p, err := svc.Initiate(InitiateRequest{
		BookingID:     7,
		Amount:        150,
		Currency:      "BDT",
		CustomerEmail: "a@x.com",
		CustomerPhone: "01700000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.example/pay/abc", url)
	assert.Equal(t, paymentModel.StatusPending, p.Status)
	store.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestInitiateGatewayFailureLeavesNoState(t *testing.T) {
	store := &MockStore{}
	gateway := &MockGateway{}
	svc := NewService(store, gateway)

	gateway.On("CreateSession", mock.Anything).Return(nil, errors.New("connection refused"))

	_, _, err := svc.Initiate(InitiateRequest{BookingID: 7, Amount: 150, Currency: "BDT"})
	assert.ErrorIs(t, err, ErrGateway)
	store.AssertNotCalled(t, "CreatePayment", mock.Anything)
}

func TestConfirmMovesBookingAndPayment(t *testing.T) {
	store := &MockStore{}
	svc := NewService(store, &MockGateway{})

	store.On("InTransaction").Return(nil)
	store.On("PaymentByTrxID", "T1").Return(&paymentModel.Payment{
		ID: 3, TrxID: "T1", BookingID: 9, Status: paymentModel.StatusPending,
	}, nil)
	store.On("BookingByID", uint(9)).Return(&bookingModel.Booking{
		ID: 9, Status: bookingModel.StatusPending,
	}, nil)
	store.On("UpdateBookingStatus", uint(9), bookingModel.StatusInReview).Return(nil)
	store.On("UpdatePaymentStatus", uint(3), paymentModel.StatusSuccess).Return(nil)

	err := svc.Confirm("T1")
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestConfirmUnknownTrxID(t *testing.T) {
	store := &MockStore{}
	svc := NewService(store, &MockGateway{})

	store.On("InTransaction").Return(nil)
	store.On("PaymentByTrxID", "missing").Return(nil, nil)

	err := svc.Confirm("missing")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
	store.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything)
}

func TestConfirmReplayedCallback(t *testing.T) {
	store := &MockStore{}
	svc := NewService(store, &MockGateway{})

	store.On("InTransaction").Return(nil)
	store.On("PaymentByTrxID", "T1").Return(&paymentModel.Payment{
		ID: 3, TrxID: "T1", BookingID: 9, Status: paymentModel.StatusSuccess,
	}, nil)

	err := svc.Confirm("T1")
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	store.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything)
}

func TestConfirmMissingBooking(t *testing.T) {
	store := &MockStore{}
	svc := NewService(store, &MockGateway{})

	store.On("InTransaction").Return(nil)
	store.On("PaymentByTrxID", "T1").Return(&paymentModel.Payment{
		ID: 3, TrxID: "T1", BookingID: 9, Status: paymentModel.StatusPending,
	}, nil)
	store.On("BookingByID", uint(9)).Return(nil, nil)

	err := svc.Confirm("T1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestTrxIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newTrxID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
