package domain

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/twxfilter/twx-catalog/pkg/errors"
)

// Validate checks the fields every downstream consumer relies on. Optional
// fields pass through unchecked; malformed scrapes may legitimately lack
// videoUrl or durationMillis.
func (m MediaItem) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: media item has no id", apperrors.ErrValidation)
	}
	if m.Type == "" {
		return fmt.Errorf("%w: media item %s has no type", apperrors.ErrValidation, m.ID)
	}
	if m.URL == "" {
		return fmt.Errorf("%w: media item %s has no url", apperrors.ErrValidation, m.ID)
	}
	if m.ParentURL == "" {
		return fmt.Errorf("%w: media item %s has no parentUrl", apperrors.ErrValidation, m.ID)
	}
	return nil
}

// ValidateAll validates a batch as a whole. A single invalid element rejects
// the entire batch; consumers assume homogeneity and never apply a batch
// partially.
func ValidateAll(items []MediaItem) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// DecodeItems parses a JSON array of media items, validating every element.
// Unknown fields are preserved on the decoded items.
func DecodeItems(data []byte) ([]MediaItem, error) {
	var items []MediaItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := ValidateAll(items); err != nil {
		return nil, err
	}
	return items, nil
}
