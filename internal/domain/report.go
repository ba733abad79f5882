package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report row types, one per catalog entry. Aggregates that can be NULL
// on the wire (stddev of a single row, avg stay with no discharges) are
// pointers or NullDecimal.

type GenderCount struct {
	Gender   string `db:"gender" json:"gender"`
	Patients int64  `db:"patients" json:"patients"`
}

type HospitalAvgBilling struct {
	Hospital   string          `db:"hospital" json:"hospital"`
	AvgBilling decimal.Decimal `db:"avg_billing" json:"avg_billing"`
}

type InsurerBilling struct {
	InsuranceProvider string          `db:"insurance_provider" json:"insurance_provider"`
	TotalBilling      decimal.Decimal `db:"total_billing" json:"total_billing"`
}

type BloodTypeCount struct {
	BloodType string `db:"blood_type" json:"blood_type"`
	Patients  int64  `db:"patients" json:"patients"`
}

type AdmissionTypeCount struct {
	AdmissionType string `db:"admission_type" json:"admission_type"`
	Admissions    int64  `db:"admissions" json:"admissions"`
}

type HospitalPatientCount struct {
	Hospital string `db:"hospital" json:"hospital"`
	Patients int64  `db:"patients" json:"patients"`
}

type ConditionAvgAge struct {
	MedicalCondition string  `db:"medical_condition" json:"medical_condition"`
	AvgAge           float64 `db:"avg_age" json:"avg_age"`
}

type AgeBucketCount struct {
	AgeBucket string `db:"age_bucket" json:"age_bucket"`
	Patients  int64  `db:"patients" json:"patients"`
}

type HospitalBillingStdDev struct {
	Hospital      string   `db:"hospital" json:"hospital"`
	Patients      int64    `db:"patients" json:"patients"`
	BillingStdDev *float64 `db:"billing_stddev" json:"billing_stddev"`
}

type MonthlyAdmissionCount struct {
	Month      time.Time `db:"month" json:"month"`
	Admissions int64     `db:"admissions" json:"admissions"`
}

type HospitalStay struct {
	Hospital    string   `db:"hospital" json:"hospital"`
	AvgStayDays *float64 `db:"avg_stay_days" json:"avg_stay_days"`
}

type TestResultCount struct {
	TestResults string `db:"test_results" json:"test_results"`
	Patients    int64  `db:"patients" json:"patients"`
}

// AdmissionWithDoctor is the inner-join row: admissions without a
// matching doctor are dropped.
type AdmissionWithDoctor struct {
	PatientName      string          `db:"patient_name" json:"patient_name"`
	Age              int             `db:"age" json:"age"`
	MedicalCondition string          `db:"medical_condition" json:"medical_condition"`
	Hospital         string          `db:"hospital" json:"hospital"`
	BillingAmount    decimal.Decimal `db:"billing_amount" json:"billing_amount"`
	Doctor           string          `db:"doctor" json:"doctor"`
	Specialty        string          `db:"specialty" json:"specialty"`
	YearsExperience  int             `db:"years_experience" json:"years_experience"`
}

// AdmissionDoctorLeft preserves every admission; doctor columns are nil
// when the name has no match.
type AdmissionDoctorLeft struct {
	PatientName      string          `db:"patient_name" json:"patient_name"`
	MedicalCondition string          `db:"medical_condition" json:"medical_condition"`
	Hospital         string          `db:"hospital" json:"hospital"`
	BillingAmount    decimal.Decimal `db:"billing_amount" json:"billing_amount"`
	Doctor           string          `db:"doctor" json:"doctor"`
	Specialty        *string         `db:"specialty" json:"specialty"`
	YearsExperience  *int            `db:"years_experience" json:"years_experience"`
}

// DoctorAdmissionRight preserves every doctor; admission columns are
// null for doctors who treated nobody in the dataset.
type DoctorAdmissionRight struct {
	Doctor           string              `db:"doctor" json:"doctor"`
	Specialty        string              `db:"specialty" json:"specialty"`
	PatientName      *string             `db:"patient_name" json:"patient_name"`
	MedicalCondition *string             `db:"medical_condition" json:"medical_condition"`
	BillingAmount    decimal.NullDecimal `db:"billing_amount" json:"billing_amount"`
}

// BillingDelta is the composite report row: admission joined with its
// doctor and the hospital_summary view, ordered by how far the bill
// sits above the hospital's own average.
type BillingDelta struct {
	PatientName        string          `db:"patient_name" json:"patient_name"`
	Hospital           string          `db:"hospital" json:"hospital"`
	Doctor             string          `db:"doctor" json:"doctor"`
	Specialty          string          `db:"specialty" json:"specialty"`
	BillingAmount      decimal.Decimal `db:"billing_amount" json:"billing_amount"`
	HospitalAvgBilling decimal.Decimal `db:"hospital_avg_billing" json:"hospital_avg_billing"`
	BillingDelta       decimal.Decimal `db:"billing_delta" json:"billing_delta"`
}

// View rows.

type HospitalSummary struct {
	Hospital     string          `db:"hospital" json:"hospital"`
	Patients     int64           `db:"patients" json:"patients"`
	AvgBilling   decimal.Decimal `db:"avg_billing" json:"avg_billing"`
	TotalRevenue decimal.Decimal `db:"total_revenue" json:"total_revenue"`
	AvgAge       float64         `db:"avg_age" json:"avg_age"`
}

type ConditionAnalysis struct {
	MedicalCondition string          `db:"medical_condition" json:"medical_condition"`
	Patients         int64           `db:"patients" json:"patients"`
	AvgCost          decimal.Decimal `db:"avg_cost" json:"avg_cost"`
	MinCost          decimal.Decimal `db:"min_cost" json:"min_cost"`
	MaxCost          decimal.Decimal `db:"max_cost" json:"max_cost"`
}

type DoctorPerformance struct {
	Doctor          string          `db:"doctor" json:"doctor"`
	Specialty       string          `db:"specialty" json:"specialty"`
	PatientsTreated int64           `db:"patients_treated" json:"patients_treated"`
	AvgBilling      decimal.Decimal `db:"avg_billing" json:"avg_billing"`
	TotalBilling    decimal.Decimal `db:"total_billing" json:"total_billing"`
}
