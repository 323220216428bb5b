package billing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinels for errors.Is; the typed errors below unwrap to them.
var (
	ErrValidation             = errors.New("validation error")
	ErrConfiguration          = errors.New("configuration error")
	ErrOwnershipMismatch      = errors.New("ownership mismatch")
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrPayoutNotFound         = errors.New("payout not found")
)

// ValidationError carries every violation found in the input, not only the first one.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ConfigurationError reports missing or invalid reference configuration.
type ConfigurationError struct {
	Reason string
}

func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// OwnershipMismatchError means the active owners of a contract do not add up to 100%.
// No payout is produced when it is returned.
type OwnershipMismatchError struct {
	ContractID string
	Total      decimal.Decimal
}

func (e *OwnershipMismatchError) Error() string {
	return fmt.Sprintf("ownership percentages for contract %q sum to %s, expected 100.00", e.ContractID, e.Total.StringFixed(2))
}

func (e *OwnershipMismatchError) Unwrap() error { return ErrOwnershipMismatch }

// InvalidTransitionError reports an action that is not permitted in the current state.
type InvalidTransitionError struct {
	From   string
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("action %s is not allowed in status %s", e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// ConcurrentModificationError is returned to the request that lost a write race.
// The caller should re-read state and retry.
type ConcurrentModificationError struct {
	Resource string
	ID       string
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s %s was modified concurrently", e.Resource, e.ID)
}

func (e *ConcurrentModificationError) Unwrap() error { return ErrConcurrentModification }

// WarningCode identifies an advisory condition that did not block a computation.
type WarningCode string

const WarningMissingCorrectionIndex WarningCode = "INDICE_CORRECAO_AUSENTE"

// Warning is a non-fatal advisory returned alongside a computed result.
type Warning struct {
	Code    WarningCode `json:"codigo"`
	Message string      `json:"mensagem"`
}

// violations accumulates validation messages.
type violations []string

func (v *violations) add(format string, args ...any) {
	*v = append(*v, fmt.Sprintf(format, args...))
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return NewValidationError(v...)
}
