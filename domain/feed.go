package domain

import "time"

// FeedStatus controls whether a feed may be refreshed at all.
type FeedStatus string

const (
	FeedStatusActive   FeedStatus = "ACTIVE"
	FeedStatusInactive FeedStatus = "INACTIVE"
)

// UpdateFrequency is the subscription's polling cadence. The empty value is
// treated as daily when a trigger is derived from it.
type UpdateFrequency string

const (
	UpdateFreqHourly   UpdateFrequency = "hourly"
	UpdateFreqSixHours UpdateFrequency = "6h"
	UpdateFreqDaily    UpdateFrequency = "daily"
)

type Feed struct {
	ID            int64           `json:"id"`
	CollectionID  int64           `json:"collectionId"`
	Title         string          `json:"title"`
	URL           string          `json:"url"`
	Description   *string         `json:"description,omitempty"`
	Category      *string         `json:"category,omitempty"`
	UpdateFreq    UpdateFrequency `json:"updateFreq,omitempty"`
	Status        FeedStatus      `json:"status"`
	LastFetchedAt *time.Time      `json:"lastFetchedAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// FeedPatch carries a partial update. Nil fields are left untouched; the
// UpdateFreq pointer doubles as the "frequency changed" signal that forces a
// reschedule.
type FeedPatch struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	UpdateFreq  *UpdateFrequency `json:"updateFreq,omitempty"`
	Status      *FeedStatus      `json:"status,omitempty"`
}

// FeedItem is one candidate entry as yielded by the feed parser, before
// normalization. Optional fields stay zero-valued when the document omits
// them; the parser never fails on a missing field.
type FeedItem struct {
	Title           string
	Link            string
	GUID            string
	Published       string
	PublishedParsed *time.Time
	Authors         []string
	Summary         string
	Content         string
}

// IngestResult reports one run of the ingestion pipeline. Processed counts
// every item the parser yielded, Created only the rows actually inserted.
type IngestResult struct {
	Processed int `json:"processed"`
	Created   int `json:"created"`
}

// RefreshSummary is what an interactive refresh returns to the caller.
type RefreshSummary struct {
	Added                int   `json:"added"`
	TotalArticlesForFeed int64 `json:"totalArticlesForFeed"`
}
