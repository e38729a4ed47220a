package refresher_port

import (
	"context"

	"suprss/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=refresher_port.go -destination=../../mocks/mock_refresher_port.go -package=mocks

// Refresher is the capability the scheduler fires into: one idempotent
// fetch-parse-upsert run for a feed. Authorization is not this boundary's
// concern; the actor was resolved at schedule time.
type Refresher interface {
	Ingest(ctx context.Context, feedID int64) (*domain.IngestResult, error)
}
