package store

import (
	"context"

	"medstat/internal/domain"
)

// View readers. The views are plain CREATE OR REPLACE VIEW projections
// over admissions (doctor_performance also joins doctors); they hold no
// storage of their own and always reflect the base table.

func (s *store) HospitalSummary(ctx context.Context) ([]*domain.HospitalSummary, error) {
	query := builder().Select("hospital", "patients", "avg_billing", "total_revenue", "avg_age").
		From(viewHospitalSummary).
		OrderBy("total_revenue desc")

	var selected []*domain.HospitalSummary
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ConditionAnalysis(ctx context.Context) ([]*domain.ConditionAnalysis, error) {
	query := builder().Select("medical_condition", "patients", "avg_cost", "min_cost", "max_cost").
		From(viewConditionAnalysis).
		OrderBy("patients desc")

	var selected []*domain.ConditionAnalysis
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) DoctorPerformance(ctx context.Context) ([]*domain.DoctorPerformance, error) {
	query := builder().Select("doctor", "specialty", "patients_treated", "avg_billing", "total_billing").
		From(viewDoctorPerformance).
		OrderBy("total_billing desc")

	var selected []*domain.DoctorPerformance
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
