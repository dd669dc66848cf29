package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergePhotos(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		removed  []string
		added    []string
		want     []string
	}{
		{
			name:     "remove one add one",
			existing: []string{"a", "b"},
			removed:  []string{"a"},
			added:    []string{"c"},
			want:     []string{"b", "c"},
		},
		{
			name:     "no changes",
			existing: []string{"a", "b"},
			want:     []string{"a", "b"},
		},
		{
			name:     "remove all",
			existing: []string{"a", "b"},
			removed:  []string{"a", "b"},
			want:     []string{},
		},
		{
			name:     "add to empty gallery",
			existing: nil,
			added:    []string{"x", "y"},
			want:     []string{"x", "y"},
		},
		{
			name:     "adding an existing photo is a no-op",
			existing: []string{"a"},
			added:    []string{"a", "b"},
			want:     []string{"a", "b"},
		},
		{
			name:     "removal wins over addition of the same photo",
			existing: []string{"a"},
			removed:  []string{"a"},
			added:    []string{"a"},
			want:     []string{},
		},
		{
			name:     "removing an absent photo changes nothing",
			existing: []string{"a"},
			removed:  []string{"z"},
			want:     []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergePhotos(tt.existing, tt.removed, tt.added)
			assert.Equal(t, tt.want, got)
		})
	}
}
