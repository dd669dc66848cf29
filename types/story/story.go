package story

import (
	"fmt"
)

// StoryCreateRequest is the payload for publishing a travel story.
type StoryCreateRequest struct {
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Name    string   `json:"name"`
	Photos  []string `json:"photo"`
}

func (s StoryCreateRequest) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("title is required")
	}
	if s.Excerpt == "" {
		return fmt.Errorf("excerpt is required")
	}
	return nil
}

// StoryUpdateRequest carries the partial edits for an existing story. All
// fields are optional; an update that changes nothing is rejected.
type StoryUpdateRequest struct {
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	NewPhotos     []string `json:"newPhotos"`
	RemovedPhotos []string `json:"removedPhotos"`
}
