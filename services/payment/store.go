package payment

import (
	"errors"

	bookingModel "unique-travel/models/booking"
	paymentModel "unique-travel/models/payment"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a gorm connection or transaction.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreatePayment(p *paymentModel.Payment) error {
	return s.db.Create(p).Error
}

func (s *GormStore) PaymentByTrxID(trxID string) (*paymentModel.Payment, error) {
	var p paymentModel.Payment
	err := s.db.Where("trx_id = ?", trxID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) BookingByID(id uint) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	err := s.db.First(&b, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *GormStore) UpdatePaymentStatus(paymentID uint, status string) error {
	return s.db.Model(&paymentModel.Payment{}).Where("id = ?", paymentID).
		Update("status", status).Error
}

func (s *GormStore) UpdateBookingStatus(bookingID uint, status string) error {
	return s.db.Model(&bookingModel.Booking{}).Where("id = ?", bookingID).
		Update("status", status).Error
}

// InTransaction binds a fresh store to a gorm transaction.
func (s *GormStore) InTransaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
