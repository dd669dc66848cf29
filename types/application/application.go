package application

import (
	"fmt"
)

// ApplicationCreateRequest is a tourist's tour-guide candidacy payload.
type ApplicationCreateRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Title    string `json:"title"`
	Reason   string `json:"reason"`
	CVLink   string `json:"cvLink"`
}

func (r ApplicationCreateRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.CVLink == "" {
		return fmt.Errorf("cvLink is required")
	}
	return nil
}
