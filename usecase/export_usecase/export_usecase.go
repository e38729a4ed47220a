// Package export_usecase moves collection definitions in and out of the
// system as JSON, OPML or CSV. Only collections the caller owns are
// exported; imports always create fresh collections owned by the caller.
package export_usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"suprss/domain"
	"suprss/port/feed_port"
	"suprss/port/membership_port"
	"suprss/port/scheduler_port"
	apperrors "suprss/utils/errors"
	"suprss/utils/logger"
	"suprss/validation"

	"golang.org/x/sync/errgroup"
)

const (
	exportVersion     = "1.0"
	exportConcurrency = 4
)

type ExportedFeed struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	UpdateFreq  string  `json:"updateFreq,omitempty"`
	Status      string  `json:"status"`
}

type ExportedCollection struct {
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	IsShared    bool           `json:"isShared"`
	Feeds       []ExportedFeed `json:"feeds"`
}

// CollectionsExport is the versioned interchange envelope shared by all
// three formats.
type CollectionsExport struct {
	Version     string               `json:"version"`
	ExportedAt  string               `json:"exportedAt"`
	Collections []ExportedCollection `json:"collections"`
}

// ExportFile is a ready-to-download rendition of an export.
type ExportFile struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ImportSummary reports what an import created.
type ImportSummary struct {
	Imported           int     `json:"imported"`
	CreatedCollections []int64 `json:"createdCollections"`
}

type ExportUsecase struct {
	feedGateway       feed_port.FeedPort
	membershipGateway membership_port.MembershipPort
	scheduler         scheduler_port.Scheduler
	now               func() time.Time
}

func NewExportUsecase(
	feedGateway feed_port.FeedPort,
	membershipGateway membership_port.MembershipPort,
	scheduler scheduler_port.Scheduler,
) *ExportUsecase {
	return &ExportUsecase{
		feedGateway:       feedGateway,
		membershipGateway: membershipGateway,
		scheduler:         scheduler,
		now:               time.Now,
	}
}

// Export renders the caller's owned collections in the requested format.
func (u *ExportUsecase) Export(ctx context.Context, userID int64, format string) (*ExportFile, error) {
	payload, err := u.buildPayload(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "", "json":
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Data:        data,
			Filename:    "suprss-collections.json",
			ContentType: "application/json; charset=utf-8",
		}, nil

	case "opml":
		data, err := renderOPML(payload)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Data:        data,
			Filename:    "suprss-collections.opml",
			ContentType: "text/x-opml; charset=utf-8",
		}, nil

	case "csv":
		data, err := renderCSV(payload)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Data:        data,
			Filename:    "suprss-collections.csv",
			ContentType: "text/csv; charset=utf-8",
		}, nil

	default:
		return nil, apperrors.NewValidationError("unsupported export format",
			"usecase", "ExportUsecase", "Export",
			map[string]any{"format": format})
	}
}

// Import detects the format from the filename, parses the payload and
// creates collections and feeds owned by the caller. Every created feed is
// scheduled, as any other created feed would be.
func (u *ExportUsecase) Import(ctx context.Context, userID int64, filename string, data []byte) (*ImportSummary, error) {
	payload, err := parsePayload(filename, data)
	if err != nil {
		return nil, err
	}

	summary := &ImportSummary{CreatedCollections: []int64{}}

	for _, col := range payload.Collections {
		name := col.Name
		if name == "" {
			name = "Untitled collection"
		}

		created, err := u.membershipGateway.CreateCollection(ctx, userID, name, col.Description, col.IsShared)
		if err != nil {
			return nil, err
		}
		summary.CreatedCollections = append(summary.CreatedCollections, created.ID)

		for _, f := range col.Feeds {
			if err := validation.ValidateFeedURL(f.URL); err != nil {
				logger.SafeWarn("skipping imported feed with unacceptable url",
					"url", f.URL, "error", err)
				continue
			}

			title := f.Title
			if title == "" {
				title = f.URL
			}

			status := domain.FeedStatusActive
			if f.Status == string(domain.FeedStatusInactive) {
				status = domain.FeedStatusInactive
			}

			feed, err := u.feedGateway.CreateFeed(ctx, &domain.Feed{
				CollectionID: created.ID,
				Title:        title,
				URL:          f.URL,
				Description:  f.Description,
				Category:     f.Category,
				UpdateFreq:   domain.UpdateFrequency(f.UpdateFreq),
				Status:       status,
			})
			if err != nil {
				return nil, err
			}
			summary.Imported++

			if err := u.scheduler.ScheduleFeed(ctx, feed.ID); err != nil {
				logger.SafeWarn("scheduling imported feed failed", "feed_id", feed.ID, "error", err)
			}
		}
	}

	return summary, nil
}

func (u *ExportUsecase) buildPayload(ctx context.Context, userID int64) (*CollectionsExport, error) {
	collections, err := u.membershipGateway.ListOwnedCollections(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload := &CollectionsExport{
		Version:     exportVersion,
		ExportedAt:  u.now().UTC().Format(time.RFC3339),
		Collections: make([]ExportedCollection, len(collections)),
	}

	// Feed listings per collection are independent queries; run a few in
	// flight at once. Indexed writes keep the export order stable.
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(exportConcurrency)

	for i, col := range collections {
		group.Go(func() error {
			feeds, err := u.feedGateway.ListFeedsByCollection(groupCtx, col.ID)
			if err != nil {
				return err
			}

			exported := ExportedCollection{
				Name:        col.Name,
				Description: col.Description,
				IsShared:    col.IsShared,
				Feeds:       make([]ExportedFeed, 0, len(feeds)),
			}
			for _, feed := range feeds {
				exported.Feeds = append(exported.Feeds, ExportedFeed{
					Title:       feed.Title,
					URL:         feed.URL,
					Description: feed.Description,
					Category:    feed.Category,
					UpdateFreq:  string(feed.UpdateFreq),
					Status:      string(feed.Status),
				})
			}

			payload.Collections[i] = exported
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return payload, nil
}

func parsePayload(filename string, data []byte) (*CollectionsExport, error) {
	lower := strings.ToLower(filename)

	switch {
	case strings.HasSuffix(lower, ".json"):
		var payload CollectionsExport
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, apperrors.NewValidationError("invalid JSON payload",
				"usecase", "ExportUsecase", "Import",
				map[string]any{"filename": filename, "cause": err.Error()})
		}
		return &payload, nil

	case strings.HasSuffix(lower, ".opml"), strings.HasSuffix(lower, ".xml"):
		return parseOPML(data)

	case strings.HasSuffix(lower, ".csv"):
		return parseCSV(data)

	default:
		return nil, apperrors.NewValidationError("unsupported file type",
			"usecase", "ExportUsecase", "Import",
			map[string]any{"filename": filename})
	}
}
