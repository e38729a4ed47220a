package domain

import "time"

// Article is an immutable row created by the ingestion pipeline. Content is
// never reconciled with upstream edits; dedup happens on (feed, url) and
// (feed, guid).
type Article struct {
	ID          int64      `json:"id"`
	FeedID      int64      `json:"feedId"`
	URL         string     `json:"url"`
	GUID        *string    `json:"guid,omitempty"`
	Title       string     `json:"title"`
	Author      *string    `json:"author,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Summary     *string    `json:"summary,omitempty"`
	ContentText *string    `json:"contentText,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ArticleStatus is the per-user read/favorite state. Absence of a row means
// both flags are false.
type ArticleStatus struct {
	UserID     int64 `json:"userId"`
	ArticleID  int64 `json:"articleId"`
	IsRead     bool  `json:"isRead"`
	IsFavorite bool  `json:"isFavorite"`
}

// ArticleListItem is an article joined with its feed summary and the
// requesting user's status flags, as returned by filtered listings.
type ArticleListItem struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Author      *string    `json:"author,omitempty"`
	Summary     *string    `json:"summary,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	FeedID      int64      `json:"feedId"`
	FeedTitle   string     `json:"feedTitle"`
	Category    *string    `json:"category,omitempty"`
	IsRead      bool       `json:"isRead"`
	IsFavorite  bool       `json:"isFavorite"`
}

// ArticleFilter narrows a collection-wide listing. Read/Favorite are
// tri-state: nil means "don't filter on this flag".
type ArticleFilter struct {
	CollectionID int64
	FeedID       *int64
	Category     *string
	Read         *bool
	Favorite     *bool
	Query        string
	Limit        int
	Cursor       *int64
}

// ArticlePage is one keyset-paginated result page. NextCursor is nil when
// the page was not full.
type ArticlePage struct {
	Items      []ArticleListItem `json:"items"`
	NextCursor *int64            `json:"nextCursor"`
}
