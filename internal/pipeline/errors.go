package pipeline

import (
	"context"
	"errors"

	"github.com/bobmcallan/meme-scanner/internal/analysis"
	"github.com/bobmcallan/meme-scanner/internal/market"
)

// Kind is the single category every lookup failure is mapped to.
type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindTransportFailure  Kind = "transport_failure"
	KindPermissionDenied  Kind = "permission_denied"
	KindResourceNotFound  Kind = "resource_not_found"
	KindMalformedResponse Kind = "malformed_response"
)

// Stage names where a lookup failed.
const (
	StageMarket   = "market"
	StageAnalysis = "analysis"
)

// Error is a classified lookup failure.
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return e.Stage + ": " + string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Classify maps any error from the market or analysis stage to a Kind.
// Unrecognised errors count as transport failures.
func Classify(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	switch {
	case errors.Is(err, market.ErrNotFound):
		return KindNotFound
	case errors.Is(err, analysis.ErrPermissionDenied):
		return KindPermissionDenied
	case errors.Is(err, analysis.ErrResourceNotFound):
		return KindResourceNotFound
	case errors.Is(err, analysis.ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, market.ErrUnavailable),
		errors.Is(err, analysis.ErrProviderFailure),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return KindTransportFailure
	}
	return KindTransportFailure
}

// MessageKey returns the catalog key of the user-facing message for k.
// A malformed response reads like a transport failure to the user.
func MessageKey(k Kind) string {
	switch k {
	case KindNotFound:
		return "error.not_found"
	case KindPermissionDenied, KindResourceNotFound:
		return "error.config"
	}
	return "error.retry"
}

// UserCorrectable reports whether re-entering the address can fix k.
func UserCorrectable(k Kind) bool {
	return k == KindNotFound
}
