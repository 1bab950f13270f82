package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"nortetech-site/internal/blob"
	"nortetech-site/internal/storage"
)

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// mapBlobError maps upload rejections to service errors
func mapBlobError(err error, operation string) error {
	switch {
	case errors.Is(err, blob.ErrUnsupportedType):
		return fmt.Errorf("%w: %v", ErrUnsupportedFile, err)
	case errors.Is(err, blob.ErrTooLarge):
		return fmt.Errorf("%w: %v", ErrFileTooLarge, err)
	case errors.Is(err, blob.ErrEmpty):
		return fmt.Errorf("%w: empty file", ErrValidation)
	case errors.Is(err, blob.ErrNotFound), errors.Is(err, blob.ErrInvalidKey):
		return fmt.Errorf("%w: %s (%v)", ErrNotFound, operation, err)
	}
	log.Printf("Unexpected file store error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// sameEmail compares e-mails the way the site stores them.
func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// parseDate parses an optional YYYY-MM-DD form value.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, value)
	}
	return &t, nil
}
