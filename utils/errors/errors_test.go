package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppContextError_Error(t *testing.T) {
	cause := stderrors.New("connection refused")

	located := New(CodeDatabase, "query failed", "driver", "suprss_db", "GetFeedByID", cause, nil)
	assert.Equal(t, "[driver:suprss_db:GetFeedByID] DATABASE_ERROR: query failed (caused by: connection refused)", located.Error())

	bare := &AppContextError{Code: CodeNotFound, Message: "feed not found"}
	assert.Equal(t, "NOT_FOUND: feed not found", bare.Error())
}

func TestAppContextError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := New(CodeUnknown, "wrapped", "usecase", "feed", "CreateFeed", cause, nil)

	require.ErrorIs(t, err, cause)
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{CodeNotFound, http.StatusNotFound},
		{CodeForbidden, http.StatusForbidden},
		{CodeInvalidState, http.StatusBadRequest},
		{CodeValidation, http.StatusBadRequest},
		{CodeFetchError, http.StatusBadGateway},
		{CodeParseError, http.StatusUnprocessableEntity},
		{CodeDatabase, http.StatusInternalServerError},
		{CodeUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := &AppContextError{Code: tt.code}
			assert.Equal(t, tt.want, err.HTTPStatusCode())
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, (&AppContextError{Code: CodeFetchError}).IsRetryable())
	assert.True(t, (&AppContextError{Code: CodeParseError}).IsRetryable())
	assert.True(t, (&AppContextError{Code: CodeDatabase}).IsRetryable())
	assert.False(t, (&AppContextError{Code: CodeForbidden}).IsRetryable())
	assert.False(t, (&AppContextError{Code: CodeValidation}).IsRetryable())
}

func TestEnrichWithContext(t *testing.T) {
	cause := stderrors.New("parse failure")
	inner := NewParseError("bad feed xml", "gateway", "fetch_feed", "FetchFeedItems", cause,
		map[string]any{"feed_url": "https://example.com/rss"})

	enriched := EnrichWithContext(inner, "usecase", "ingest", "Ingest",
		map[string]any{"feed_id": int64(5)})

	assert.Equal(t, CodeParseError, enriched.Code)
	assert.Equal(t, "bad feed xml", enriched.Message)
	assert.Equal(t, "usecase", enriched.Layer)
	assert.Equal(t, "ingest", enriched.Component)
	assert.Equal(t, "Ingest", enriched.Operation)
	assert.Equal(t, "https://example.com/rss", enriched.Context["feed_url"])
	assert.Equal(t, int64(5), enriched.Context["feed_id"])
	require.ErrorIs(t, enriched, cause)

	// Enrichment copies the context instead of sharing it.
	enriched.Context["feed_id"] = int64(6)
	_, leaked := inner.Context["feed_id"]
	assert.False(t, leaked)
}

func TestToHTTPResponse(t *testing.T) {
	err := NewValidationError("url is required", "rest", "feed_handlers", "RestHandleCreateFeed",
		map[string]any{"field": "url"})

	resp := err.ToHTTPResponse()

	assert.Equal(t, "error", resp.Error)
	assert.Equal(t, CodeValidation, resp.Code)
	assert.Equal(t, "url is required", resp.Message)
	assert.Equal(t, "url", resp.Context["field"])
}
