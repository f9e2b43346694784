package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrAuthentication      = errors.New("invalid or missing credentials")
	ErrSessionExpired      = errors.New("session expired")
	ErrAuthorization       = errors.New("missing required capability")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("request already reviewed")
	ErrInsufficientBalance = errors.New("insufficient balance to approve this withdrawal")
	ErrStorage             = errors.New("storage failure")
)

// ErrTotalOverflow is returned when accepting an amount would push a ledger total past int64.
var ErrTotalOverflow = fmt.Errorf("%w: ledger total would exceed the supported maximum", ErrValidation)
