package rest

import "suprss/domain"

type CreateFeedRequest struct {
	CollectionID int64   `json:"collectionId"`
	Title        string  `json:"title"`
	URL          string  `json:"url"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	UpdateFreq   string  `json:"updateFreq,omitempty"`
	Status       string  `json:"status,omitempty"`
}

type UpdateFeedRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	UpdateFreq  *string `json:"updateFreq,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type RefreshResponse struct {
	Message              string `json:"message"`
	Added                int    `json:"added"`
	TotalArticlesForFeed int64  `json:"totalArticlesForFeed"`
}

type StatusFlagRequest struct {
	Value bool `json:"value"`
}

type RescheduleAllResponse struct {
	Scheduled int `json:"scheduled"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (r UpdateFeedRequest) toPatch() domain.FeedPatch {
	patch := domain.FeedPatch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
	}
	if r.UpdateFreq != nil {
		freq := domain.UpdateFrequency(*r.UpdateFreq)
		patch.UpdateFreq = &freq
	}
	if r.Status != nil {
		status := domain.FeedStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}
