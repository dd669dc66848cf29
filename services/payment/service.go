package payment

import (
	"errors"
	"fmt"
	"strings"

	"unique-travel/httpServices/sslcommerz"
	bookingModel "unique-travel/models/booking"
	paymentModel "unique-travel/models/payment"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyProcessed = errors.New("payment already processed")
	ErrGateway          = errors.New("payment gateway request failed")
)

// Store is the persistence surface the orchestrator needs. InTransaction
// runs fn against a transaction-bound store and commits when fn returns nil.
type Store interface {
	CreatePayment(p *paymentModel.Payment) error
	PaymentByTrxID(trxID string) (*paymentModel.Payment, error)
	BookingByID(id uint) (*bookingModel.Booking, error)
	UpdatePaymentStatus(paymentID uint, status string) error
	UpdateBookingStatus(bookingID uint, status string) error
	InTransaction(fn func(Store) error) error
}

// Gateway initiates hosted payment sessions.
type Gateway interface {
	CreateSession(req sslcommerz.SessionRequest) (*sslcommerz.SessionResponse, error)
}

// InitiateRequest is the validated input for starting a payment attempt.
type InitiateRequest struct {
	BookingID     uint
	Amount        float64
	Currency      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PackageTitle  string
	SuccessURL    string
	FailURL       string
	CancelURL     string
}

// Service orchestrates the payment flow: initiate a gateway session and
// persist a pending payment, then reconcile payment and booking state when
// the gateway calls back.
type Service struct {
	store   Store
	gateway Gateway
}

func NewService(store Store, gateway Gateway) *Service {
	return &Service{store: store, gateway: gateway}
}

// Initiate generates a transaction id, opens a gateway session and records a
// pending payment. The payment row is only written after the gateway call
// succeeds, so a gateway failure leaves no state behind.
func (s *Service) Initiate(req InitiateRequest) (string, *paymentModel.Payment, error) {
	trxID := newTrxID()

	session, err := s.gateway.CreateSession(sslcommerz.SessionRequest{
		TrxID:         trxID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ProductName:   req.PackageTitle,
		SuccessURL:    req.SuccessURL,
		FailURL:       req.FailURL,
		CancelURL:     req.CancelURL,
	})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	p := &paymentModel.Payment{
		TrxID:         trxID,
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Status:        paymentModel.StatusPending,
	}
	if err := s.store.CreatePayment(p); err != nil {
		return "", nil, err
	}

	return session.GatewayPageURL, p, nil
}

// Confirm reconciles a successful gateway callback: the linked booking moves
// to In Review and the payment to success, atomically. Replays of an already
// confirmed trxID return ErrAlreadyProcessed without touching state.
func (s *Service) Confirm(trxID string) error {
	return s.store.InTransaction(func(tx Store) error {
		p, err := tx.PaymentByTrxID(trxID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrPaymentNotFound
		}
		if p.Status == paymentModel.StatusSuccess {
			return ErrAlreadyProcessed
		}

		b, err := tx.BookingByID(p.BookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}

		if err := tx.UpdateBookingStatus(b.ID, bookingModel.StatusInReview); err != nil {
			return err
		}
		return tx.UpdatePaymentStatus(p.ID, paymentModel.StatusSuccess)
	})
}

// newTrxID returns a compact correlation key for the gateway.
func newTrxID() string {
	return "TRX-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}
