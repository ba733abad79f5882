package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetCancerAdmissions(ctx echo.Context) error {
	rows, err := c.reports.CancerAdmissions(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetSeniorMalePatients(ctx echo.Context) error {
	rows, err := c.reports.SeniorMalePatients(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetPatientCountByGender(ctx echo.Context) error {
	rows, err := c.reports.PatientCountByGender(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetAvgBillingByHospital(ctx echo.Context) error {
	rows, err := c.reports.AvgBillingByHospital(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetTotalBillingByInsurer(ctx echo.Context) error {
	rows, err := c.reports.TotalBillingByInsurer(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetPatientCountByBloodType(ctx echo.Context) error {
	rows, err := c.reports.PatientCountByBloodType(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetAdmissionCountByType(ctx echo.Context) error {
	rows, err := c.reports.AdmissionCountByType(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetBusyHospitals(ctx echo.Context) error {
	rows, err := c.reports.BusyHospitals(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetAvgAgeByCondition(ctx echo.Context) error {
	rows, err := c.reports.AvgAgeByCondition(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetAgeBucketDistribution(ctx echo.Context) error {
	rows, err := c.reports.AgeBucketDistribution(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetBillingStdDevByHospital(ctx echo.Context) error {
	rows, err := c.reports.BillingStdDevByHospital(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetMonthlyAdmissions(ctx echo.Context) error {
	rows, err := c.reports.MonthlyAdmissions(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetAvgStayByHospital(ctx echo.Context) error {
	rows, err := c.reports.AvgStayByHospital(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetTestResultDistribution(ctx echo.Context) error {
	rows, err := c.reports.TestResultDistribution(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetAdmissionsWithDoctor(ctx echo.Context) error {
	rows, err := c.reports.AdmissionsWithDoctor(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetAdmissionsWithDoctorLeft(ctx echo.Context) error {
	rows, err := c.reports.AdmissionsWithDoctorLeft(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetDoctorsWithAdmissionsRight(ctx echo.Context) error {
	rows, err := c.reports.DoctorsWithAdmissionsRight(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetAboveAverageBilling(ctx echo.Context) error {
	rows, err := c.reports.AboveAverageBilling(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetTopBillingPerCondition(ctx echo.Context) error {
	rows, err := c.reports.TopBillingPerCondition(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}

func (c *Controller) GetBillingVsHospitalAverage(ctx echo.Context) error {
	rows, err := c.reports.BillingVsHospitalAverage(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}
