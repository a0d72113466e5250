package observability

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID(t *testing.T) {
	id := GenerateCorrelationID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, GenerateCorrelationID())

	ctx := WithCorrelationID(context.Background(), id)
	assert.Equal(t, id, ExtractCorrelationID(ctx))

	assert.Empty(t, ExtractCorrelationID(context.Background()), "no id means empty, not a panic")
}

func TestTrackQuery(t *testing.T) {
	// Must be safe to call and complete; the histogram carries the sample.
	done := TrackQuery("create", "users")
	assert.NotPanics(t, func() { done() })
}
