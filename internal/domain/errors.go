package domain

import "errors"

type Kind string

const (
	KindUnauthorized        Kind = "unauthorized"
	KindForbidden           Kind = "forbidden"
	KindInvalidInput        Kind = "invalid_input"
	KindNotFound            Kind = "not_found"
	KindStateConflict       Kind = "state_conflict"
	KindInsufficientBalance Kind = "insufficient_balance"
	KindTransient           Kind = "transient_store_failure"
	KindInternal            Kind = "internal"
)

// Error is a caller-facing failure with a stable machine-readable code.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Retryable reports whether the caller may repeat the request verbatim.
func (e *Error) Retryable() bool {
	return e.Kind == KindTransient
}

func newError(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

var (
	ErrUnauthorized = newError(KindUnauthorized, "unauthorized", "unauthorized")
	ErrForbidden    = newError(KindForbidden, "forbidden", "forbidden")

	ErrInvalidStake         = newError(KindInvalidInput, "invalid_stake", "amount must be greater than zero")
	ErrInvalidNumberFormat  = newError(KindInvalidInput, "invalid_number_format", "invalid number format for selected game type")
	ErrInvalidShape         = newError(KindInvalidInput, "invalid_shape", "panna must be exactly 3 digits")
	ErrInvalidGameType      = newError(KindInvalidInput, "invalid_game_type", "unknown game type")
	ErrMissingWinningNumber = newError(KindInvalidInput, "missing_winning_number", "winning number is required")
	ErrInvalidWinningNumber = newError(KindInvalidInput, "invalid_winning_number", "winning number must be 1 to 3 digits")
	ErrInvalidTimeOfDay     = newError(KindInvalidInput, "invalid_time_of_day", "time of day must be HH:MM or HH:MM:SS")
	ErrInvalidWindow        = newError(KindInvalidInput, "invalid_window", "open time must be before close time")
	ErrInvalidAction        = newError(KindInvalidInput, "invalid_action", "invalid action")
	ErrInvalidRequest       = newError(KindInvalidInput, "invalid_request", "invalid request body")

	ErrMarketNotFound  = newError(KindNotFound, "market_not_found", "market not found")
	ErrAccountNotFound = newError(KindNotFound, "account_not_found", "account not found")

	ErrMarketClosed       = newError(KindStateConflict, "market_closed", "market is closed for betting")
	ErrMarketOutsideHours = newError(KindStateConflict, "market_outside_hours", "market is outside its operating hours")
	ErrAlreadyDeclared    = newError(KindStateConflict, "already_declared", "result already declared for this market")

	ErrInsufficientBalance = newError(KindInsufficientBalance, "insufficient_balance", "insufficient wallet balance")

	ErrTransientStore = newError(KindTransient, "store_unavailable", "service temporarily unavailable, please retry")
)

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
