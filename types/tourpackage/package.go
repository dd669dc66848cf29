package tourpackage

import (
	"fmt"
)

// PackageCreateRequest is the payload for adding a tour package.
type PackageCreateRequest struct {
	Title    string   `json:"title"`
	TripType string   `json:"tripType"`
	Price    float64  `json:"price"`
	About    string   `json:"about"`
	Photos   []string `json:"photos"`
}

func (r PackageCreateRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	return nil
}
