package ingest_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"suprss/domain"
	"suprss/mocks"
	"suprss/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUsecase(t *testing.T) (*IngestUsecase, *mocks.MockFeedPort, *mocks.MockArticlePort, *mocks.MockFetchFeedPort) {
	t.Helper()
	logger.InitLogger("error", "text")

	ctrl := gomock.NewController(t)
	feedPort := mocks.NewMockFeedPort(ctrl)
	articlePort := mocks.NewMockArticlePort(ctrl)
	fetchPort := mocks.NewMockFetchFeedPort(ctrl)

	u := NewIngestUsecase(feedPort, articlePort, fetchPort)
	u.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	return u, feedPort, articlePort, fetchPort
}

func activeFeed() *domain.Feed {
	return &domain.Feed{
		ID:           42,
		CollectionID: 7,
		Title:        "Example",
		URL:          "https://example.com/rss",
		Status:       domain.FeedStatusActive,
	}
}

func TestIngest_CountsOnlyInsertedRows(t *testing.T) {
	u, feedPort, articlePort, fetchPort := newTestUsecase(t)

	items := []*domain.FeedItem{
		{Title: "fresh", Link: "https://example.com/a"},
		{Title: "already seen", Link: "https://example.com/b"},
		{Title: "fresh too", Link: "https://example.com/c"},
	}

	feedPort.EXPECT().GetFeedByID(gomock.Any(), int64(42)).Return(activeFeed(), nil)
	fetchPort.EXPECT().FetchFeedItems(gomock.Any(), "https://example.com/rss").Return(items, nil)
	gomock.InOrder(
		articlePort.EXPECT().InsertIfNew(gomock.Any(), gomock.Any()).Return(true, nil),
		articlePort.EXPECT().InsertIfNew(gomock.Any(), gomock.Any()).Return(false, nil),
		articlePort.EXPECT().InsertIfNew(gomock.Any(), gomock.Any()).Return(true, nil),
	)
	feedPort.EXPECT().MarkFetched(gomock.Any(), int64(42), gomock.Any()).Return(nil)

	result, err := u.Ingest(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 2, result.Created)
}

func TestIngest_SecondRunCreatesNothing(t *testing.T) {
	u, feedPort, articlePort, fetchPort := newTestUsecase(t)

	items := []*domain.FeedItem{
		{Title: "one", Link: "https://example.com/a"},
		{Title: "two", Link: "https://example.com/b"},
	}

	feedPort.EXPECT().GetFeedByID(gomock.Any(), int64(42)).Return(activeFeed(), nil).Times(2)
	fetchPort.EXPECT().FetchFeedItems(gomock.Any(), gomock.Any()).Return(items, nil).Times(2)
	gomock.InOrder(
		articlePort.EXPECT().InsertIfNew(gomock.Any(), gomock.Any()).Return(true, nil).Times(2),
		articlePort.EXPECT().InsertIfNew(gomock.Any(), gomock.Any()).Return(false, nil).Times(2),
	)
	feedPort.EXPECT().MarkFetched(gomock.Any(), int64(42), gomock.Any()).Return(nil).Times(2)

	first, err := u.Ingest(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)

	second, err := u.Ingest(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Processed)
	assert.Equal(t, 0, second.Created)
}

func TestIngest_SkipsUnaddressableItems(t *testing.T) {
	u, feedPort, articlePort, fetchPort := newTestUsecase(t)

	items := []*domain.FeedItem{
		{Title: "no link no id"},
		{Title: "has guid only", GUID: "urn:item:1"},
	}

	feedPort.EXPECT().GetFeedByID(gomock.Any(), int64(42)).Return(activeFeed(), nil)
	fetchPort.EXPECT().FetchFeedItems(gomock.Any(), gomock.Any()).Return(items, nil)
	// Only the addressable item reaches the store; the guid doubles as url.
	articlePort.EXPECT().InsertIfNew(gomock.Any(), gomock.Cond(func(a *domain.Article) bool {
		return a.URL == "urn:item:1" && a.GUID != nil && *a.GUID == "urn:item:1"
	})).Return(true, nil)
	feedPort.EXPECT().MarkFetched(gomock.Any(), int64(42), gomock.Any()).Return(nil)

	result, err := u.Ingest(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Created)
}

func TestIngest_InactiveFeedRejectedBeforeAnyWork(t *testing.T) {
	u, feedPort, _, _ := newTestUsecase(t)

	inactive := activeFeed()
	inactive.Status = domain.FeedStatusInactive

	feedPort.EXPECT().GetFeedByID(gomock.Any(), int64(42)).Return(inactive, nil)

	result, err := u.Ingest(context.Background(), 42)

	require.ErrorIs(t, err, domain.ErrFeedInactive)
	assert.Nil(t, result)
}

func TestIngest_FetchErrorPropagates(t *testing.T) {
	u, feedPort, _, fetchPort := newTestUsecase(t)

	fetchErr := errors.New("connection refused")
	feedPort.EXPECT().GetFeedByID(gomock.Any(), int64(42)).Return(activeFeed(), nil)
	fetchPort.EXPECT().FetchFeedItems(gomock.Any(), gomock.Any()).Return(nil, fetchErr)

	result, err := u.Ingest(context.Background(), 42)

	require.ErrorIs(t, err, fetchErr)
	assert.Nil(t, result)
}

func TestIngest_OneBadInsertDoesNotSinkTheRun(t *testing.T) {
	u, feedPort, articlePort, fetchPort := newTestUsecase(t)

	items := []*domain.FeedItem{
		{Title: "bad", Link: "https://example.com/bad"},
		{Title: "good", Link: "https://example.com/good"},
	}

	feedPort.EXPECT().GetFeedByID(gomock.Any(), int64(42)).Return(activeFeed(), nil)
	fetchPort.EXPECT().FetchFeedItems(gomock.Any(), gomock.Any()).Return(items, nil)
	gomock.InOrder(
		articlePort.EXPECT().InsertIfNew(gomock.Any(), gomock.Any()).Return(false, errors.New("value too long")),
		articlePort.EXPECT().InsertIfNew(gomock.Any(), gomock.Any()).Return(true, nil),
	)
	feedPort.EXPECT().MarkFetched(gomock.Any(), int64(42), gomock.Any()).Return(nil)

	result, err := u.Ingest(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Created)
}

func TestIngest_MarksFetchedEvenWhenNothingNew(t *testing.T) {
	u, feedPort, articlePort, fetchPort := newTestUsecase(t)

	fetchedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	feedPort.EXPECT().GetFeedByID(gomock.Any(), int64(42)).Return(activeFeed(), nil)
	fetchPort.EXPECT().FetchFeedItems(gomock.Any(), gomock.Any()).Return([]*domain.FeedItem{
		{Title: "dup", Link: "https://example.com/dup"},
	}, nil)
	articlePort.EXPECT().InsertIfNew(gomock.Any(), gomock.Any()).Return(false, nil)
	feedPort.EXPECT().MarkFetched(gomock.Any(), int64(42), fetchedAt).Return(nil)

	result, err := u.Ingest(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
}

func TestIngest_FeedNotFound(t *testing.T) {
	u, feedPort, _, _ := newTestUsecase(t)

	feedPort.EXPECT().GetFeedByID(gomock.Any(), int64(99)).Return(nil, domain.ErrFeedNotFound)

	_, err := u.Ingest(context.Background(), 99)

	require.ErrorIs(t, err, domain.ErrFeedNotFound)
}

func TestNormalizeItem(t *testing.T) {
	published := time.Date(2024, 11, 5, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		item *domain.FeedItem
		want func(t *testing.T, got *domain.Article)
	}{
		{
			name: "full item",
			item: &domain.FeedItem{
				Title:           "Hello",
				Link:            "https://example.com/hello",
				GUID:            "urn:hello",
				PublishedParsed: &published,
				Authors:         []string{"Ada", "Grace"},
				Summary:         "<p>short &amp; sweet</p>",
			},
			want: func(t *testing.T, got *domain.Article) {
				assert.Equal(t, "https://example.com/hello", got.URL)
				assert.Equal(t, "urn:hello", *got.GUID)
				assert.Equal(t, "Ada", *got.Author)
				assert.Equal(t, published, *got.PublishedAt)
				assert.Equal(t, "short & sweet", *got.Summary)
			},
		},
		{
			name: "untitled gets placeholder",
			item: &domain.FeedItem{Link: "https://example.com/x"},
			want: func(t *testing.T, got *domain.Article) {
				assert.Equal(t, "(untitled)", got.Title)
			},
		},
		{
			name: "raw date string parsed",
			item: &domain.FeedItem{Link: "https://example.com/y", Published: "2024-11-05T08:30:00Z"},
			want: func(t *testing.T, got *domain.Article) {
				require.NotNil(t, got.PublishedAt)
				assert.Equal(t, published, got.PublishedAt.UTC())
			},
		},
		{
			name: "unparseable date stays nil",
			item: &domain.FeedItem{Link: "https://example.com/z", Published: "next Tuesday-ish"},
			want: func(t *testing.T, got *domain.Article) {
				assert.Nil(t, got.PublishedAt)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeItem(42, tt.item)
			require.NotNil(t, got)
			assert.Equal(t, int64(42), got.FeedID)
			tt.want(t, got)
		})
	}
}

func TestNormalizeItem_NoLinkNoGUID(t *testing.T) {
	assert.Nil(t, normalizeItem(42, &domain.FeedItem{Title: "orphan"}))
}
