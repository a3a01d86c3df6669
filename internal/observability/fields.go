package observability

import "go.uber.org/zap"

// Field aliases so call sites outside the HTTP layer don't import zap
// directly.
//
//nolint:gochecknoglobals // Function aliases, not mutable state
var (
	String   = zap.String
	Int      = zap.Int
	Bool     = zap.Bool
	Float64  = zap.Float64
	Duration = zap.Duration
	Error    = zap.Error
)
