package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenUsageRemaining(t *testing.T) {
	assert.Equal(t, int64(30000), TokenUsage{Quota: 50000, Used: 20000}.Remaining())
	assert.Equal(t, int64(0), TokenUsage{Quota: 10000, Used: 25000}.Remaining())
}

func TestNotFound(t *testing.T) {
	assert.ErrorIs(t, notFound(pgx.ErrNoRows), ErrNotFound)
	assert.NoError(t, notFound(nil))
}

func TestGetRunRejectsMalformedID(t *testing.T) {
	// no pool needed: the id is rejected before any query
	_, err := GetRun(context.Background(), 1, "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}
