package booking

import (
	"fmt"
)

// BookingCreateRequest is the payload for reserving a package.
type BookingCreateRequest struct {
	PackageID    uint    `json:"packageId"`
	PackageTitle string  `json:"packageTitle"`
	TouristName  string  `json:"touristName"`
	GuideEmail   string  `json:"guideEmail"`
	TourDate     string  `json:"tourDate"` // YYYY-MM-DD
	Price        float64 `json:"price"`
}

func (b BookingCreateRequest) Validate() error {
	if b.PackageID == 0 {
		return fmt.Errorf("packageId is required")
	}
	if b.GuideEmail == "" {
		return fmt.Errorf("guideEmail is required")
	}
	if b.TourDate == "" {
		return fmt.Errorf("tourDate is required")
	}
	if b.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	return nil
}

// StatusUpdateRequest is the payload for a guide's accept/reject decision.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}
