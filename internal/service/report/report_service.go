package report

import (
	"context"

	"medstat/internal/domain"
	"medstat/internal/pkg/store"
)

// conditionCancer is the fixed filter of the condition report; the
// query surface deliberately takes no parameters.
const conditionCancer = "Cancer"

// Service exposes the report catalog. Every method is a pure read; the
// store owns the SQL.
type Service struct {
	store store.Store
}

func NewReportService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) CancerAdmissions(ctx context.Context) ([]*domain.Admission, error) {
	return s.store.AdmissionsByCondition(ctx, conditionCancer)
}

func (s *Service) SeniorMalePatients(ctx context.Context) ([]*domain.Admission, error) {
	return s.store.SeniorMalePatients(ctx)
}

func (s *Service) PatientCountByGender(ctx context.Context) ([]*domain.GenderCount, error) {
	return s.store.PatientCountByGender(ctx)
}

func (s *Service) AvgBillingByHospital(ctx context.Context) ([]*domain.HospitalAvgBilling, error) {
	return s.store.AvgBillingByHospital(ctx)
}

func (s *Service) TotalBillingByInsurer(ctx context.Context) ([]*domain.InsurerBilling, error) {
	return s.store.TotalBillingByInsurer(ctx)
}

func (s *Service) PatientCountByBloodType(ctx context.Context) ([]*domain.BloodTypeCount, error) {
	return s.store.PatientCountByBloodType(ctx)
}

func (s *Service) AdmissionCountByType(ctx context.Context) ([]*domain.AdmissionTypeCount, error) {
	return s.store.AdmissionCountByType(ctx)
}

func (s *Service) BusyHospitals(ctx context.Context) ([]*domain.HospitalPatientCount, error) {
	return s.store.BusyHospitals(ctx)
}

func (s *Service) AvgAgeByCondition(ctx context.Context) ([]*domain.ConditionAvgAge, error) {
	return s.store.AvgAgeByCondition(ctx)
}

func (s *Service) AgeBucketDistribution(ctx context.Context) ([]*domain.AgeBucketCount, error) {
	return s.store.AgeBucketDistribution(ctx)
}

func (s *Service) BillingStdDevByHospital(ctx context.Context) ([]*domain.HospitalBillingStdDev, error) {
	return s.store.BillingStdDevByHospital(ctx)
}

func (s *Service) MonthlyAdmissions(ctx context.Context) ([]*domain.MonthlyAdmissionCount, error) {
	return s.store.MonthlyAdmissions(ctx)
}

func (s *Service) AvgStayByHospital(ctx context.Context) ([]*domain.HospitalStay, error) {
	return s.store.AvgStayByHospital(ctx)
}

func (s *Service) TestResultDistribution(ctx context.Context) ([]*domain.TestResultCount, error) {
	return s.store.TestResultDistribution(ctx)
}

func (s *Service) AdmissionsWithDoctor(ctx context.Context) ([]*domain.AdmissionWithDoctor, error) {
	return s.store.AdmissionsWithDoctor(ctx)
}

func (s *Service) AdmissionsWithDoctorLeft(ctx context.Context) ([]*domain.AdmissionDoctorLeft, error) {
	return s.store.AdmissionsWithDoctorLeft(ctx)
}

func (s *Service) DoctorsWithAdmissionsRight(ctx context.Context) ([]*domain.DoctorAdmissionRight, error) {
	return s.store.DoctorsWithAdmissionsRight(ctx)
}

func (s *Service) AboveAverageBilling(ctx context.Context) ([]*domain.Admission, error) {
	return s.store.AboveAverageBilling(ctx)
}

func (s *Service) TopBillingPerCondition(ctx context.Context) ([]*domain.Admission, error) {
	return s.store.TopBillingPerCondition(ctx)
}

func (s *Service) BillingVsHospitalAverage(ctx context.Context) ([]*domain.BillingDelta, error) {
	return s.store.BillingVsHospitalAverage(ctx)
}

func (s *Service) HospitalSummary(ctx context.Context) ([]*domain.HospitalSummary, error) {
	return s.store.HospitalSummary(ctx)
}

func (s *Service) ConditionAnalysis(ctx context.Context) ([]*domain.ConditionAnalysis, error) {
	return s.store.ConditionAnalysis(ctx)
}

func (s *Service) DoctorPerformance(ctx context.Context) ([]*domain.DoctorPerformance, error) {
	return s.store.DoctorPerformance(ctx)
}
