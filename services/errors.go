package services

import (
	"errors"
	"fmt"

	"record-api/models"
)

// storageErr wraps a gateway failure. Not-found passes through untouched so
// callers can still match it.
func storageErr(op string, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
}
