package payment

import (
	"fmt"
)

// CreatePaymentRequest is the payload for initiating a gateway payment.
type CreatePaymentRequest struct {
	BookingID     uint    `json:"bookingId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	PackageTitle  string  `json:"packageTitle"`
}

func (r CreatePaymentRequest) Validate() error {
	if r.BookingID == 0 {
		return fmt.Errorf("bookingId is required")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if r.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if r.CustomerEmail == "" {
		return fmt.Errorf("customerEmail is required")
	}
	if r.CustomerPhone == "" {
		return fmt.Errorf("customerPhone is required")
	}
	return nil
}
