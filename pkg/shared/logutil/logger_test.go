package logutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFromContext(t *testing.T) {
	fallback := zerolog.Nop()
	if got := FromContext(context.Background(), &fallback); got != &fallback {
		t.Fatalf("expected fallback without a context logger")
	}

	var buf bytes.Buffer
	ctxLog := zerolog.New(&buf).With().Str("request_id", "abc").Logger()
	ctx := ctxLog.WithContext(context.Background())
	FromContext(ctx, &fallback).Info().Msg("hello")
	if !strings.Contains(buf.String(), `"request_id":"abc"`) {
		t.Fatalf("expected context logger to be used, got %q", buf.String())
	}
}
