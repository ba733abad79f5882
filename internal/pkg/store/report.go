package store

import (
	"context"

	"medstat/internal/domain"
)

// Grouped aggregation reports. Each one groups admissions by a single
// column (or a derived bucket) and computes count/avg/sum/min/max or
// sample stddev per group. All of them return an empty slice on an
// empty table.

// busyHospitalThreshold is the HAVING cutoff: a hospital must have
// strictly more patients than this to appear in BusyHospitals.
const busyHospitalThreshold = 5

func (s *store) PatientCountByGender(ctx context.Context) ([]*domain.GenderCount, error) {
	query := builder().Select("gender", "count(*) as patients").
		From(tableAdmissions).
		GroupBy("gender").
		OrderBy("patients desc")

	var selected []*domain.GenderCount
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) AvgBillingByHospital(ctx context.Context) ([]*domain.HospitalAvgBilling, error) {
	query := builder().Select("hospital", "avg(billing_amount) as avg_billing").
		From(tableAdmissions).
		GroupBy("hospital").
		OrderBy("avg_billing desc")

	var selected []*domain.HospitalAvgBilling
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) TotalBillingByInsurer(ctx context.Context) ([]*domain.InsurerBilling, error) {
	query := builder().Select("insurance_provider", "sum(billing_amount) as total_billing").
		From(tableAdmissions).
		GroupBy("insurance_provider").
		OrderBy("total_billing desc")

	var selected []*domain.InsurerBilling
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) PatientCountByBloodType(ctx context.Context) ([]*domain.BloodTypeCount, error) {
	query := builder().Select("blood_type", "count(*) as patients").
		From(tableAdmissions).
		GroupBy("blood_type").
		OrderBy("blood_type asc")

	var selected []*domain.BloodTypeCount
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) AdmissionCountByType(ctx context.Context) ([]*domain.AdmissionTypeCount, error) {
	query := builder().Select("admission_type", "count(*) as admissions").
		From(tableAdmissions).
		GroupBy("admission_type").
		OrderBy("admissions desc")

	var selected []*domain.AdmissionTypeCount
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// BusyHospitals keeps only hospitals whose patient count exceeds the
// threshold, busiest first.
func (s *store) BusyHospitals(ctx context.Context) ([]*domain.HospitalPatientCount, error) {
	query := builder().Select("hospital", "count(*) as patients").
		From(tableAdmissions).
		GroupBy("hospital").
		Having("count(*) > ?", busyHospitalThreshold).
		OrderBy("patients desc")

	var selected []*domain.HospitalPatientCount
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) AvgAgeByCondition(ctx context.Context) ([]*domain.ConditionAvgAge, error) {
	query := builder().Select("medical_condition", "avg(age)::float8 as avg_age").
		From(tableAdmissions).
		GroupBy("medical_condition").
		OrderBy("avg_age desc")

	var selected []*domain.ConditionAvgAge
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// ageBucketExpr buckets age at the fixed 18/65 thresholds.
const ageBucketExpr = `case when age < 18 then 'child' when age < 65 then 'adult' else 'senior' end`

func (s *store) AgeBucketDistribution(ctx context.Context) ([]*domain.AgeBucketCount, error) {
	query := builder().Select(ageBucketExpr+" as age_bucket", "count(*) as patients").
		From(tableAdmissions).
		GroupBy(ageBucketExpr).
		OrderBy("min(age) asc")

	var selected []*domain.AgeBucketCount
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// BillingStdDevByHospital reports sample standard deviation; it is NULL
// for single-admission hospitals, which scans as a nil pointer.
func (s *store) BillingStdDevByHospital(ctx context.Context) ([]*domain.HospitalBillingStdDev, error) {
	query := builder().Select(
		"hospital",
		"count(*) as patients",
		"stddev_samp(billing_amount)::float8 as billing_stddev",
	).
		From(tableAdmissions).
		GroupBy("hospital").
		OrderBy("hospital asc")

	var selected []*domain.HospitalBillingStdDev
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) MonthlyAdmissions(ctx context.Context) ([]*domain.MonthlyAdmissionCount, error) {
	query := builder().Select(
		"date_trunc('month', date_of_admission) as month",
		"count(*) as admissions",
	).
		From(tableAdmissions).
		GroupBy("month").
		OrderBy("month asc")

	var selected []*domain.MonthlyAdmissionCount
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// AvgStayByHospital averages discharge_date - date_of_admission in days.
// Admissions without a discharge date drop out of the average; a
// hospital with none at all gets a NULL.
func (s *store) AvgStayByHospital(ctx context.Context) ([]*domain.HospitalStay, error) {
	query := builder().Select(
		"hospital",
		"avg(discharge_date - date_of_admission)::float8 as avg_stay_days",
	).
		From(tableAdmissions).
		GroupBy("hospital").
		OrderBy("avg_stay_days desc nulls last")

	var selected []*domain.HospitalStay
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) TestResultDistribution(ctx context.Context) ([]*domain.TestResultCount, error) {
	query := builder().Select("test_results", "count(*) as patients").
		From(tableAdmissions).
		GroupBy("test_results").
		OrderBy("patients desc")

	var selected []*domain.TestResultCount
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
