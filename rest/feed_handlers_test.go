package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"suprss/di"
	"suprss/domain"
	"suprss/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	logger.InitLogger("error", "text")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/feeds", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ctx := domain.SetUserContext(c.Request().Context(), &domain.UserContext{UserID: 10})
	c.SetRequest(c.Request().WithContext(ctx))
	return c, rec
}

func TestRestHandleCreateFeed_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"collectionId": `},
		{"missing collection", `{"url": "https://example.com/rss"}`},
		{"empty url", `{"collectionId": 3, "url": ""}`},
		{"bad scheme", `{"collectionId": 3, "url": "ftp://example.com/rss"}`},
		{"localhost target", `{"collectionId": 3, "url": "http://localhost/rss"}`},
		{"metadata target", `{"collectionId": 3, "url": "http://169.254.169.254/latest"}`},
	}

	// Validation rejects before any usecase runs, so an empty container is safe.
	handler := RestHandleCreateFeed(&di.ApplicationComponents{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := postJSON(t, tt.body)

			require.NoError(t, handler(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRestHandleCreateFeed_RequiresAuthenticatedUser(t *testing.T) {
	logger.InitLogger("error", "text")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/feeds", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RestHandleCreateFeed(&di.ApplicationComponents{})(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestCreateInput_MapsAllFields(t *testing.T) {
	desc := "releases"
	cat := "dev"

	input := createInput(CreateFeedRequest{
		CollectionID: 3,
		Title:        "Go Blog",
		URL:          "https://go.dev/blog/feed.atom",
		Description:  &desc,
		Category:     &cat,
		UpdateFreq:   "hourly",
		Status:       "ACTIVE",
	})

	assert.Equal(t, int64(3), input.CollectionID)
	assert.Equal(t, "Go Blog", input.Title)
	assert.Equal(t, "https://go.dev/blog/feed.atom", input.URL)
	assert.Equal(t, &desc, input.Description)
	assert.Equal(t, &cat, input.Category)
	assert.Equal(t, domain.UpdateFreqHourly, input.UpdateFreq)
	assert.Equal(t, domain.FeedStatusActive, input.Status)
}
