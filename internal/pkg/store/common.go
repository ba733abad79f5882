package store

import (
	"errors"

	"medstat/internal/pkg/constants"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/dbscan"
	"github.com/jackc/pgx/v5"
)

const (
	tableAdmissions = "admissions"
	tableDoctors    = "doctors"

	viewHospitalSummary   = "hospital_summary"
	viewConditionAnalysis = "condition_analysis"
	viewDoctorPerformance = "doctor_performance"
)

var mapping = map[error]error{
	pgx.ErrNoRows:      constants.ErrDBNotFound,
	dbscan.ErrNotFound: constants.ErrDBNotFound,
}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns the squirrel builder all queries start from.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
