package rest

import (
	"net/http"
	"strconv"

	"suprss/di"
	"suprss/domain"
	"suprss/usecase/feed_usecase"
	"suprss/validation"

	"github.com/labstack/echo/v4"
)

func RestHandleCreateFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		var req CreateFeedRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid request format", "body", "malformed JSON")
		}
		if req.CollectionID <= 0 {
			return handleValidationError(c, "collectionId is required", "collectionId", req.CollectionID)
		}
		if err := validation.ValidateFeedURL(req.URL); err != nil {
			return handleValidationError(c, err.Error(), "url", req.URL)
		}

		feed, err := container.FeedUsecase.CreateFeed(c.Request().Context(), user.UserID, createInput(req))
		if err != nil {
			return handleError(c, err, "create_feed")
		}

		return c.JSON(http.StatusCreated, feed)
	}
}

func RestHandleListCollectionFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		collectionID, err := pathID(c, "collectionId")
		if err != nil {
			return handleValidationError(c, "Invalid collection ID", "collectionId", c.Param("collectionId"))
		}

		feeds, err := container.FeedUsecase.ListFeeds(c.Request().Context(), user.UserID, collectionID)
		if err != nil {
			return handleError(c, err, "list_collection_feeds")
		}

		return c.JSON(http.StatusOK, feeds)
	}
}

func RestHandleUpdateFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		feedID, err := pathID(c, "id")
		if err != nil {
			return handleValidationError(c, "Invalid feed ID", "id", c.Param("id"))
		}

		var req UpdateFeedRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid request format", "body", "malformed JSON")
		}

		feed, err := container.FeedUsecase.UpdateFeed(c.Request().Context(), user.UserID, feedID, req.toPatch())
		if err != nil {
			return handleError(c, err, "update_feed")
		}

		return c.JSON(http.StatusOK, feed)
	}
}

func RestHandleDeleteFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		feedID, err := pathID(c, "id")
		if err != nil {
			return handleValidationError(c, "Invalid feed ID", "id", c.Param("id"))
		}

		if err := container.FeedUsecase.RemoveFeed(c.Request().Context(), user.UserID, feedID); err != nil {
			return handleError(c, err, "delete_feed")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "feed deleted"})
	}
}

func RestHandleRefreshFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		feedID, err := pathID(c, "id")
		if err != nil {
			return handleValidationError(c, "Invalid feed ID", "id", c.Param("id"))
		}

		summary, err := container.RefreshUsecase.ManualRefresh(c.Request().Context(), user.UserID, feedID)
		if err != nil {
			return handleError(c, err, "refresh_feed")
		}

		return c.JSON(http.StatusOK, RefreshResponse{
			Message:              "feed refreshed",
			Added:                summary.Added,
			TotalArticlesForFeed: summary.TotalArticlesForFeed,
		})
	}
}

func RestHandleScheduleFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		feedID, err := pathID(c, "id")
		if err != nil {
			return handleValidationError(c, "Invalid feed ID", "id", c.Param("id"))
		}

		if err := container.FeedUsecase.ScheduleFeed(c.Request().Context(), user.UserID, feedID); err != nil {
			return handleError(c, err, "schedule_feed")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "feed scheduled"})
	}
}

func RestHandleUnscheduleFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		feedID, err := pathID(c, "id")
		if err != nil {
			return handleValidationError(c, "Invalid feed ID", "id", c.Param("id"))
		}

		if err := container.FeedUsecase.UnscheduleFeed(c.Request().Context(), user.UserID, feedID); err != nil {
			return handleError(c, err, "unschedule_feed")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "feed unscheduled"})
	}
}

func RestHandleRescheduleAll(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := currentUser(c); err != nil {
			return err
		}

		scheduled, err := container.FeedUsecase.RescheduleAll(c.Request().Context())
		if err != nil {
			return handleError(c, err, "reschedule_all")
		}

		return c.JSON(http.StatusOK, RescheduleAllResponse{Scheduled: scheduled})
	}
}

func createInput(req CreateFeedRequest) feed_usecase.CreateFeedInput {
	return feed_usecase.CreateFeedInput{
		CollectionID: req.CollectionID,
		Title:        req.Title,
		URL:          req.URL,
		Description:  req.Description,
		Category:     req.Category,
		UpdateFreq:   domain.UpdateFrequency(req.UpdateFreq),
		Status:       domain.FeedStatus(req.Status),
	}
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
