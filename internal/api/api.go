package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"medstat/internal/api/controller"
	"medstat/internal/config"
	"medstat/internal/pkg/logger"
	"medstat/internal/pkg/store"
	"medstat/internal/service/ingest"
	"medstat/internal/service/report"
)

type APIService struct {
	router        *echo.Echo
	reportService *report.Service
	ingestService *ingest.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store, cfg *config.Config) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.OFF)
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.RequestID())
	svc.router.Use(requestIDToContext)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type"},
	}))

	svc.reportService = report.NewReportService(st)
	svc.ingestService = ingest.NewIngestService(st, cfg.ImportChunkSize, cfg.ImportWorkers)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.reportService, svc.ingestService)

	admissions := api.Group("/admissions")
	admissions.POST("/import", cntrl.ImportAdmissions)

	reports := api.Group("/reports")
	reports.GET("/cancer-admissions", cntrl.GetCancerAdmissions)
	reports.GET("/senior-male-patients", cntrl.GetSeniorMalePatients)
	reports.GET("/patients-by-gender", cntrl.GetPatientCountByGender)
	reports.GET("/avg-billing-by-hospital", cntrl.GetAvgBillingByHospital)
	reports.GET("/billing-by-insurer", cntrl.GetTotalBillingByInsurer)
	reports.GET("/patients-by-blood-type", cntrl.GetPatientCountByBloodType)
	reports.GET("/admissions-by-type", cntrl.GetAdmissionCountByType)
	reports.GET("/busy-hospitals", cntrl.GetBusyHospitals)
	reports.GET("/avg-age-by-condition", cntrl.GetAvgAgeByCondition)
	reports.GET("/age-buckets", cntrl.GetAgeBucketDistribution)
	reports.GET("/billing-stddev-by-hospital", cntrl.GetBillingStdDevByHospital)
	reports.GET("/monthly-admissions", cntrl.GetMonthlyAdmissions)
	reports.GET("/avg-stay-by-hospital", cntrl.GetAvgStayByHospital)
	reports.GET("/test-results", cntrl.GetTestResultDistribution)
	reports.GET("/admissions-with-doctor", cntrl.GetAdmissionsWithDoctor)
	reports.GET("/admissions-with-doctor-left", cntrl.GetAdmissionsWithDoctorLeft)
	reports.GET("/doctors-with-admissions", cntrl.GetDoctorsWithAdmissionsRight)
	reports.GET("/above-average-billing", cntrl.GetAboveAverageBilling)
	reports.GET("/top-billing-per-condition", cntrl.GetTopBillingPerCondition)
	reports.GET("/billing-vs-hospital-average", cntrl.GetBillingVsHospitalAverage)

	views := api.Group("/views")
	views.GET("/hospital-summary", cntrl.GetHospitalSummary)
	views.GET("/condition-analysis", cntrl.GetConditionAnalysis)
	views.GET("/doctor-performance", cntrl.GetDoctorPerformance)

	return svc, nil
}
