package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForContext_AddsRunID(t *testing.T) {
	var buf bytes.Buffer
	SetupTestLogger(&buf)

	ctx, runID := WithRunID(context.Background())
	assert.NotEmpty(t, runID)
	assert.Equal(t, runID, GetRunID(ctx))

	ForContext(ctx).Info("relatório gerado")

	assert.Contains(t, buf.String(), "run_id="+runID)
	assert.Contains(t, buf.String(), "relatório gerado")
}

func TestForContext_WithoutRunID(t *testing.T) {
	var buf bytes.Buffer
	SetupTestLogger(&buf)

	ForContext(context.Background()).WithField("file", "downloads.txt").Warn("aviso")

	assert.NotContains(t, buf.String(), "run_id")
	assert.Contains(t, buf.String(), "file=downloads.txt")
	assert.Empty(t, GetRunID(context.Background()))
}
