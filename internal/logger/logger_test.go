package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	ctx := WithContext(context.Background(), log)
	got := FromContext(ctx)

	got.Info().Str("key", "value").Msg("hello")
	require.Contains(t, buf.String(), `"key":"value"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestFromContext_Fallback(t *testing.T) {
	// A bare context still yields a usable logger.
	log := FromContext(context.Background())
	assert.NotNil(t, log.Info())
}
