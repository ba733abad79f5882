package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetHospitalSummary(ctx echo.Context) error {
	rows, err := c.reports.HospitalSummary(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetConditionAnalysis(ctx echo.Context) error {
	rows, err := c.reports.ConditionAnalysis(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetDoctorPerformance(ctx echo.Context) error {
	rows, err := c.reports.DoctorPerformance(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}
