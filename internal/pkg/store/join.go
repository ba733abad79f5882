package store

import (
	"context"

	"medstat/internal/domain"

	sq "github.com/Masterminds/squirrel"
)

// Join and subquery reports. The admission->doctor link is value
// equality on the name with nothing enforcing it, so the three join
// flavors genuinely differ: inner drops unmatched admissions, left
// keeps them, right keeps idle doctors.

func (s *store) AdmissionsWithDoctor(ctx context.Context) ([]*domain.AdmissionWithDoctor, error) {
	query := builder().Select(
		"a.name as patient_name",
		"a.age",
		"a.medical_condition",
		"a.hospital",
		"a.billing_amount",
		"d.name as doctor",
		"d.specialty",
		"d.years_experience",
	).
		From(tableAdmissions + " a").
		Join(tableDoctors + " d on d.name = a.doctor").
		OrderBy("d.name asc", "a.billing_amount desc")

	var selected []*domain.AdmissionWithDoctor
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) AdmissionsWithDoctorLeft(ctx context.Context) ([]*domain.AdmissionDoctorLeft, error) {
	query := builder().Select(
		"a.name as patient_name",
		"a.medical_condition",
		"a.hospital",
		"a.billing_amount",
		"a.doctor",
		"d.specialty",
		"d.years_experience",
	).
		From(tableAdmissions + " a").
		LeftJoin(tableDoctors + " d on d.name = a.doctor").
		OrderBy("a.doctor asc", "a.billing_amount desc")

	var selected []*domain.AdmissionDoctorLeft
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) DoctorsWithAdmissionsRight(ctx context.Context) ([]*domain.DoctorAdmissionRight, error) {
	query := builder().Select(
		"d.name as doctor",
		"d.specialty",
		"a.name as patient_name",
		"a.medical_condition",
		"a.billing_amount",
	).
		From(tableAdmissions + " a").
		RightJoin(tableDoctors + " d on d.name = a.doctor").
		OrderBy("d.name asc")

	var selected []*domain.DoctorAdmissionRight
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// AboveAverageBilling filters against the global average computed once
// in an uncorrelated subquery, so the threshold is not affected by the
// filter itself.
func (s *store) AboveAverageBilling(ctx context.Context) ([]*domain.Admission, error) {
	query := builder().Select(admissionsColumns...).
		From(tableAdmissions).
		Where(sq.Expr("billing_amount > (select avg(billing_amount) from admissions)")).
		OrderBy("billing_amount desc")

	var selected []*domain.Admission
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// TopBillingPerCondition returns the most expensive admission within
// each medical condition via a correlated subquery. Ties all qualify.
func (s *store) TopBillingPerCondition(ctx context.Context) ([]*domain.Admission, error) {
	cols := make([]string, 0, len(admissionsColumns))
	for _, c := range admissionsColumns {
		cols = append(cols, "a."+c)
	}

	query := builder().Select(cols...).
		From(tableAdmissions + " a").
		Where(sq.Expr(`a.billing_amount = (
	select max(b.billing_amount)
	from admissions b
	where b.medical_condition = a.medical_condition
)`)).
		OrderBy("a.medical_condition asc", "a.billing_amount desc")

	var selected []*domain.Admission
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// BillingVsHospitalAverage joins admissions with doctors and the
// hospital_summary view, keeps only bills above the global average and
// orders by how far each bill sits above its own hospital's average.
func (s *store) BillingVsHospitalAverage(ctx context.Context) ([]*domain.BillingDelta, error) {
	query := builder().Select(
		"a.name as patient_name",
		"a.hospital",
		"d.name as doctor",
		"d.specialty",
		"a.billing_amount",
		"hs.avg_billing as hospital_avg_billing",
		"a.billing_amount - hs.avg_billing as billing_delta",
	).
		From(tableAdmissions + " a").
		Join(tableDoctors + " d on d.name = a.doctor").
		Join(viewHospitalSummary + " hs on hs.hospital = a.hospital").
		Where(sq.Expr("a.billing_amount > (select avg(billing_amount) from admissions)")).
		OrderBy("billing_delta desc")

	var selected []*domain.BillingDelta
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
