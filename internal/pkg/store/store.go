package store

import (
	"context"

	"medstat/internal/domain"
	"medstat/internal/domain/dto"
	"medstat/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the full query surface: schema bootstrap, the one-time bulk
// write path, and the read-only report catalog. Reports never mutate
// anything and are safe to run in any order.
type Store interface {
	Bootstrap(ctx context.Context) error
	SeedDoctors(ctx context.Context) error
	CopyAdmissions(ctx context.Context, records []*dto.AdmissionRecord) (int64, error)

	AdmissionsByCondition(ctx context.Context, condition string) ([]*domain.Admission, error)
	SeniorMalePatients(ctx context.Context) ([]*domain.Admission, error)
	PatientCountByGender(ctx context.Context) ([]*domain.GenderCount, error)
	AvgBillingByHospital(ctx context.Context) ([]*domain.HospitalAvgBilling, error)
	TotalBillingByInsurer(ctx context.Context) ([]*domain.InsurerBilling, error)
	PatientCountByBloodType(ctx context.Context) ([]*domain.BloodTypeCount, error)
	AdmissionCountByType(ctx context.Context) ([]*domain.AdmissionTypeCount, error)
	BusyHospitals(ctx context.Context) ([]*domain.HospitalPatientCount, error)
	AvgAgeByCondition(ctx context.Context) ([]*domain.ConditionAvgAge, error)
	AgeBucketDistribution(ctx context.Context) ([]*domain.AgeBucketCount, error)
	BillingStdDevByHospital(ctx context.Context) ([]*domain.HospitalBillingStdDev, error)
	MonthlyAdmissions(ctx context.Context) ([]*domain.MonthlyAdmissionCount, error)
	AvgStayByHospital(ctx context.Context) ([]*domain.HospitalStay, error)
	TestResultDistribution(ctx context.Context) ([]*domain.TestResultCount, error)

	AdmissionsWithDoctor(ctx context.Context) ([]*domain.AdmissionWithDoctor, error)
	AdmissionsWithDoctorLeft(ctx context.Context) ([]*domain.AdmissionDoctorLeft, error)
	DoctorsWithAdmissionsRight(ctx context.Context) ([]*domain.DoctorAdmissionRight, error)
	AboveAverageBilling(ctx context.Context) ([]*domain.Admission, error)
	TopBillingPerCondition(ctx context.Context) ([]*domain.Admission, error)
	BillingVsHospitalAverage(ctx context.Context) ([]*domain.BillingDelta, error)

	HospitalSummary(ctx context.Context) ([]*domain.HospitalSummary, error)
	ConditionAnalysis(ctx context.Context) ([]*domain.ConditionAnalysis, error)
	DoctorPerformance(ctx context.Context) ([]*domain.DoctorPerformance, error)
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
