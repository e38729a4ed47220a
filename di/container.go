package di

import (
	"suprss/config"
	"suprss/driver/fetch_feed_driver"
	"suprss/driver/suprss_db"
	"suprss/gateway/article_gateway"
	"suprss/gateway/article_status_gateway"
	"suprss/gateway/feed_gateway"
	"suprss/gateway/fetch_feed_gateway"
	"suprss/gateway/membership_gateway"
	"suprss/job"
	"suprss/port/trigger_registry_port"
	"suprss/usecase/article_usecase"
	"suprss/usecase/export_usecase"
	"suprss/usecase/feed_usecase"
	"suprss/usecase/ingest_usecase"
	"suprss/usecase/refresh_usecase"
	"suprss/utils/rate_limiter"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	FeedUsecase    *feed_usecase.FeedUsecase
	ArticleUsecase *article_usecase.ArticleUsecase
	RefreshUsecase *refresh_usecase.RefreshUsecase
	ExportUsecase  *export_usecase.ExportUsecase
	Scheduler      *job.RefreshScheduler
	Repository     *suprss_db.Repository
}

// NewApplicationComponents wires the dependency graph. The scheduler and the
// interactive refresh path both fire into the same ingestion pipeline, and
// the feed CRUD surface reaches the scheduler only through its port.
func NewApplicationComponents(pool *pgxpool.Pool, registry trigger_registry_port.TriggerRegistry, cfg *config.Config) *ApplicationComponents {
	repository := suprss_db.NewRepository(pool)

	feedGateway := feed_gateway.NewFeedGateway(repository)
	articleGateway := article_gateway.NewArticleGateway(repository)
	articleStatusGateway := article_status_gateway.NewArticleStatusGateway(repository)
	membershipGateway := membership_gateway.NewMembershipGateway(repository)

	hostRateLimiter := rate_limiter.NewHostRateLimiter(cfg.Fetch.HostInterval)
	fetchDriver := fetch_feed_driver.NewFetchFeedDriver(cfg, hostRateLimiter)
	fetchGateway := fetch_feed_gateway.NewFetchFeedGateway(fetchDriver)

	ingestUsecase := ingest_usecase.NewIngestUsecase(feedGateway, articleGateway, fetchGateway)

	scheduler := job.NewRefreshScheduler(feedGateway, membershipGateway, ingestUsecase, registry, cfg.Scheduler)

	feedUsecase := feed_usecase.NewFeedUsecase(feedGateway, membershipGateway, scheduler)
	articleUsecase := article_usecase.NewArticleUsecase(articleGateway, articleStatusGateway, feedGateway, membershipGateway)
	refreshUsecase := refresh_usecase.NewRefreshUsecase(feedGateway, articleGateway, membershipGateway, ingestUsecase)
	exportUsecase := export_usecase.NewExportUsecase(feedGateway, membershipGateway, scheduler)

	return &ApplicationComponents{
		FeedUsecase:    feedUsecase,
		ArticleUsecase: articleUsecase,
		RefreshUsecase: refreshUsecase,
		ExportUsecase:  exportUsecase,
		Scheduler:      scheduler,
		Repository:     repository,
	}
}
