package service

import (
	"errors"
	"fmt"

	"github.com/hance08/caja/internal/store"
	"github.com/hance08/caja/internal/validation"
)

// ValidationError is malformed or out-of-range input.
type ValidationError = validation.Error

var ErrValidation = validation.ErrValidation

// ErrNotFound covers resources that are absent or belong to someone else.
// The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("not found")

var (
	ErrBoxNotFound         = fmt.Errorf("box %w", ErrNotFound)
	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)
	ErrTemplateNotFound    = fmt.Errorf("template %w", ErrNotFound)
)

// ErrStorage marks a persistence failure that aborted an atomic unit.
var ErrStorage = errors.New("storage failure")

func storageErr(err error) error {
	if err == nil || isDomainErr(err) || errors.Is(err, ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// notFoundOr maps a missing record to nf and anything else to a storage failure.
func notFoundOr(err error, nf error) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return nf
	}
	return storageErr(err)
}

func isDomainErr(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
