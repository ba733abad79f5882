package controller

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ImportAdmissions loads the admissions CSV, either as the "file" part
// of a multipart form or as the raw request body.
func (c *Controller) ImportAdmissions(ctx echo.Context) error {
	var src io.ReadCloser

	if file, err := ctx.FormFile("file"); err == nil {
		opened, err := file.Open()
		if err != nil {
			return err
		}
		src = opened
	} else {
		src = ctx.Request().Body
	}
	defer func() { _ = src.Close() }()

	result, err := c.ingest.ImportCSV(ctx.Request().Context(), src)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}
