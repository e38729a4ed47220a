package rest

import (
	"fmt"
	"io"
	"net/http"

	"suprss/di"

	"github.com/labstack/echo/v4"
)

const maxImportSize = 10 << 20 // 10 MiB

func RestHandleExportCollections(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		format := c.QueryParam("format")

		file, err := container.ExportUsecase.Export(c.Request().Context(), user.UserID, format)
		if err != nil {
			return handleError(c, err, "export_collections")
		}

		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename=%q`, file.Filename))
		return c.Blob(http.StatusOK, file.ContentType, file.Data)
	}
}

func RestHandleImportCollections(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return err
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return handleValidationError(c, "file upload is required", "file", nil)
		}
		if fileHeader.Size > maxImportSize {
			return handleValidationError(c, "file too large", "file", fileHeader.Size)
		}

		src, err := fileHeader.Open()
		if err != nil {
			return handleError(c, err, "import_collections")
		}
		defer src.Close()

		data, err := io.ReadAll(io.LimitReader(src, maxImportSize))
		if err != nil {
			return handleError(c, err, "import_collections")
		}

		summary, err := container.ExportUsecase.Import(c.Request().Context(), user.UserID, fileHeader.Filename, data)
		if err != nil {
			return handleError(c, err, "import_collections")
		}

		return c.JSON(http.StatusOK, summary)
	}
}
