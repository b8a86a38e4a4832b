package logutil

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger attached to ctx if there is an enabled one,
// otherwise fallback.
func FromContext(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	if ctx != nil {
		if ctxLog := zerolog.Ctx(ctx); ctxLog != nil && ctxLog.GetLevel() != zerolog.Disabled {
			return ctxLog
		}
	}
	return fallback
}
