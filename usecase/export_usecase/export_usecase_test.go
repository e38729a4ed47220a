package export_usecase

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"suprss/domain"
	"suprss/mocks"
	"suprss/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUsecase(t *testing.T) (*ExportUsecase, *mocks.MockFeedPort, *mocks.MockMembershipPort, *mocks.MockScheduler) {
	t.Helper()
	logger.InitLogger("error", "text")

	ctrl := gomock.NewController(t)
	feedPort := mocks.NewMockFeedPort(ctrl)
	membershipPort := mocks.NewMockMembershipPort(ctrl)
	scheduler := mocks.NewMockScheduler(ctrl)

	u := NewExportUsecase(feedPort, membershipPort, scheduler)
	u.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	return u, feedPort, membershipPort, scheduler
}

func str(s string) *string { return &s }

func exportFixture(feedPort *mocks.MockFeedPort, membershipPort *mocks.MockMembershipPort) {
	membershipPort.EXPECT().ListOwnedCollections(gomock.Any(), int64(10)).Return([]*domain.Collection{
		{ID: 1, OwnerID: 10, Name: "Tech", Description: str("tech news"), IsShared: true},
		{ID: 2, OwnerID: 10, Name: "Empty"},
	}, nil)
	feedPort.EXPECT().ListFeedsByCollection(gomock.Any(), int64(1)).Return([]*domain.Feed{
		{ID: 5, CollectionID: 1, Title: "Example", URL: "https://example.com/rss", Category: str("dev"), UpdateFreq: domain.UpdateFreqHourly, Status: domain.FeedStatusActive},
	}, nil)
	feedPort.EXPECT().ListFeedsByCollection(gomock.Any(), int64(2)).Return(nil, nil)
}

func TestExport_JSONEnvelope(t *testing.T) {
	u, feedPort, membershipPort, _ := newTestUsecase(t)
	exportFixture(feedPort, membershipPort)

	file, err := u.Export(context.Background(), 10, "json")
	require.NoError(t, err)

	assert.Equal(t, "suprss-collections.json", file.Filename)

	var payload CollectionsExport
	require.NoError(t, json.Unmarshal(file.Data, &payload))
	assert.Equal(t, "1.0", payload.Version)
	assert.Equal(t, "2025-03-01T12:00:00Z", payload.ExportedAt)
	require.Len(t, payload.Collections, 2)
	assert.Equal(t, "Tech", payload.Collections[0].Name)
	assert.True(t, payload.Collections[0].IsShared)
	require.Len(t, payload.Collections[0].Feeds, 1)
	assert.Equal(t, "hourly", payload.Collections[0].Feeds[0].UpdateFreq)
}

func TestExport_OPMLRoundTrip(t *testing.T) {
	u, feedPort, membershipPort, _ := newTestUsecase(t)
	exportFixture(feedPort, membershipPort)

	file, err := u.Export(context.Background(), 10, "opml")
	require.NoError(t, err)

	assert.Equal(t, "suprss-collections.opml", file.Filename)
	assert.Contains(t, string(file.Data), `xmlUrl="https://example.com/rss"`)
	assert.Contains(t, string(file.Data), `suprss:updateFreq="hourly"`)

	parsed, err := parseOPML(file.Data)
	require.NoError(t, err)
	require.Len(t, parsed.Collections, 2)
	assert.Equal(t, "Tech", parsed.Collections[0].Name)
	assert.True(t, parsed.Collections[0].IsShared)
	require.Len(t, parsed.Collections[0].Feeds, 1)
	feed := parsed.Collections[0].Feeds[0]
	assert.Equal(t, "https://example.com/rss", feed.URL)
	assert.Equal(t, "hourly", feed.UpdateFreq)
	assert.Equal(t, "ACTIVE", feed.Status)
	assert.Equal(t, "dev", *feed.Category)
}

func TestExport_CSVRoundTrip(t *testing.T) {
	u, feedPort, membershipPort, _ := newTestUsecase(t)
	exportFixture(feedPort, membershipPort)

	file, err := u.Export(context.Background(), 10, "csv")
	require.NoError(t, err)

	assert.Equal(t, "suprss-collections.csv", file.Filename)
	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])

	parsed, err := parseCSV(file.Data)
	require.NoError(t, err)
	require.Len(t, parsed.Collections, 2)
	assert.Equal(t, "Tech", parsed.Collections[0].Name)
	require.Len(t, parsed.Collections[0].Feeds, 1)
	assert.Equal(t, "Example", parsed.Collections[0].Feeds[0].Title)
	assert.Empty(t, parsed.Collections[1].Feeds, "feedless collection row carries no feed")
}

func TestExport_UnsupportedFormat(t *testing.T) {
	u, feedPort, membershipPort, _ := newTestUsecase(t)
	exportFixture(feedPort, membershipPort)

	_, err := u.Export(context.Background(), 10, "yaml")
	require.Error(t, err)
}

func TestImport_JSONCreatesAndSchedules(t *testing.T) {
	u, feedPort, membershipPort, scheduler := newTestUsecase(t)

	payload := `{
		"version": "1.0",
		"collections": [
			{
				"name": "Imported",
				"isShared": false,
				"feeds": [
					{"title": "A", "url": "https://a.example/rss", "updateFreq": "daily", "status": "ACTIVE"},
					{"title": "No URL means skipped", "url": ""}
				]
			}
		]
	}`

	membershipPort.EXPECT().CreateCollection(gomock.Any(), int64(10), "Imported", nil, false).
		Return(&domain.Collection{ID: 9, OwnerID: 10, Name: "Imported"}, nil)
	feedPort.EXPECT().CreateFeed(gomock.Any(), gomock.Cond(func(f *domain.Feed) bool {
		return f.CollectionID == 9 && f.URL == "https://a.example/rss" && f.Status == domain.FeedStatusActive
	})).Return(&domain.Feed{ID: 31, CollectionID: 9}, nil)
	scheduler.EXPECT().ScheduleFeed(gomock.Any(), int64(31)).Return(nil)

	summary, err := u.Import(context.Background(), 10, "backup.json", []byte(payload))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, []int64{9}, summary.CreatedCollections)
}

func TestImport_OPMLFlatOutlineBecomesCollection(t *testing.T) {
	u, feedPort, membershipPort, scheduler := newTestUsecase(t)

	opml := `<?xml version="1.0" encoding="UTF-8"?>
<opml version="2.0">
  <head><title>subscriptions</title></head>
  <body>
    <outline text="Solo Feed" type="rss" xmlUrl="https://solo.example/rss"/>
  </body>
</opml>`

	membershipPort.EXPECT().CreateCollection(gomock.Any(), int64(10), "Solo Feed", nil, false).
		Return(&domain.Collection{ID: 4}, nil)
	feedPort.EXPECT().CreateFeed(gomock.Any(), gomock.Any()).Return(&domain.Feed{ID: 8, CollectionID: 4}, nil)
	scheduler.EXPECT().ScheduleFeed(gomock.Any(), int64(8)).Return(nil)

	summary, err := u.Import(context.Background(), 10, "subs.opml", []byte(opml))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
}

func TestImport_CSVGroupsRowsByCollection(t *testing.T) {
	u, feedPort, membershipPort, scheduler := newTestUsecase(t)

	csvData := strings.Join([]string{
		strings.Join(csvHeader, ","),
		"News,,false,Feed A,https://a.example/rss,,,hourly,ACTIVE",
		"News,,false,Feed B,https://b.example/rss,,,daily,ACTIVE",
	}, "\n")

	membershipPort.EXPECT().CreateCollection(gomock.Any(), int64(10), "News", nil, false).
		Return(&domain.Collection{ID: 6}, nil)
	feedPort.EXPECT().CreateFeed(gomock.Any(), gomock.Any()).Return(&domain.Feed{ID: 1, CollectionID: 6}, nil)
	feedPort.EXPECT().CreateFeed(gomock.Any(), gomock.Any()).Return(&domain.Feed{ID: 2, CollectionID: 6}, nil)
	scheduler.EXPECT().ScheduleFeed(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	summary, err := u.Import(context.Background(), 10, "backup.csv", []byte(csvData))

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, []int64{6}, summary.CreatedCollections)
}

func TestImport_UnsupportedExtension(t *testing.T) {
	u, _, _, _ := newTestUsecase(t)

	_, err := u.Import(context.Background(), 10, "backup.yaml", []byte("{}"))
	require.Error(t, err)
}

func TestImport_MalformedJSON(t *testing.T) {
	u, _, _, _ := newTestUsecase(t)

	_, err := u.Import(context.Background(), 10, "backup.json", []byte("{not json"))
	require.Error(t, err)
}
