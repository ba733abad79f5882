package controller

import (
	"medstat/internal/service/ingest"
	"medstat/internal/service/report"
)

type Controller struct {
	reports *report.Service
	ingest  *ingest.Service
}

func NewController(reports *report.Service, ingest *ingest.Service) *Controller {
	return &Controller{reports: reports, ingest: ingest}
}
