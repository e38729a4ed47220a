package rest

import (
	"net/http"
	"strconv"
	"strings"

	"suprss/di"
	"suprss/domain"

	"github.com/labstack/echo/v4"
)

func RestHandleListFeedArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		feedID, err := pathID(c, "id")
		if err != nil {
			return handleValidationError(c, "Invalid feed ID", "id", c.Param("id"))
		}

		articles, err := container.ArticleUsecase.ListFeedArticles(c.Request().Context(), user.UserID, feedID)
		if err != nil {
			return handleError(c, err, "list_feed_articles")
		}

		return c.JSON(http.StatusOK, articles)
	}
}

func RestHandleListArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		filter, err := parseArticleFilter(c)
		if err != nil {
			return err
		}

		page, err := container.ArticleUsecase.ListFiltered(c.Request().Context(), user.UserID, filter)
		if err != nil {
			return handleError(c, err, "list_articles")
		}

		return c.JSON(http.StatusOK, page)
	}
}

func RestHandleMarkRead(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		articleID, err := pathID(c, "id")
		if err != nil {
			return handleValidationError(c, "Invalid article ID", "id", c.Param("id"))
		}

		req := StatusFlagRequest{Value: true}
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid request format", "body", "malformed JSON")
		}

		status, err := container.ArticleUsecase.MarkRead(c.Request().Context(), user.UserID, articleID, req.Value)
		if err != nil {
			return handleError(c, err, "mark_read")
		}

		return c.JSON(http.StatusOK, status)
	}
}

func RestHandleMarkFavorite(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		articleID, err := pathID(c, "id")
		if err != nil {
			return handleValidationError(c, "Invalid article ID", "id", c.Param("id"))
		}

		req := StatusFlagRequest{Value: true}
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid request format", "body", "malformed JSON")
		}

		status, err := container.ArticleUsecase.MarkFavorite(c.Request().Context(), user.UserID, articleID, req.Value)
		if err != nil {
			return handleError(c, err, "mark_favorite")
		}

		return c.JSON(http.StatusOK, status)
	}
}

// parseArticleFilter maps query parameters onto the filtered listing input.
// Unknown read/favorite values are rejected rather than silently ignored.
func parseArticleFilter(c echo.Context) (domain.ArticleFilter, error) {
	var filter domain.ArticleFilter

	collectionID, err := strconv.ParseInt(c.QueryParam("collectionId"), 10, 64)
	if err != nil || collectionID <= 0 {
		return filter, handleValidationError(c, "collectionId is required", "collectionId", c.QueryParam("collectionId"))
	}
	filter.CollectionID = collectionID

	if raw := c.QueryParam("feedId"); raw != "" {
		feedID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || feedID <= 0 {
			return filter, handleValidationError(c, "Invalid feed ID", "feedId", raw)
		}
		filter.FeedID = &feedID
	}

	if raw := c.QueryParam("category"); raw != "" {
		filter.Category = &raw
	}

	if raw := c.QueryParam("read"); raw != "" {
		read, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, handleValidationError(c, "Invalid read flag", "read", raw)
		}
		filter.Read = &read
	}

	if raw := c.QueryParam("favorite"); raw != "" {
		favorite, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, handleValidationError(c, "Invalid favorite flag", "favorite", raw)
		}
		filter.Favorite = &favorite
	}

	filter.Query = strings.TrimSpace(c.QueryParam("q"))

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, handleValidationError(c, "Invalid limit", "limit", raw)
		}
		filter.Limit = limit
	}

	if raw := c.QueryParam("cursor"); raw != "" {
		cursor, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, handleValidationError(c, "Invalid cursor", "cursor", raw)
		}
		filter.Cursor = &cursor
	}

	return filter, nil
}
