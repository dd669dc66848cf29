package coupon

import (
	"fmt"
)

// CouponCreateRequest is the payload for creating a discount code.
type CouponCreateRequest struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
	ExpiresAt       string `json:"expiresAt"` // YYYY-MM-DD
}

func (r CouponCreateRequest) Validate() error {
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	if r.DiscountPercent <= 0 || r.DiscountPercent > 100 {
		return fmt.Errorf("discountPercent must be between 1 and 100")
	}
	if r.ExpiresAt == "" {
		return fmt.Errorf("expiresAt is required")
	}
	return nil
}

// ValidateCouponRequest checks a code at checkout time.
type ValidateCouponRequest struct {
	Code string `json:"code"`
}

func (r ValidateCouponRequest) Validate() error {
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	return nil
}
