package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Admission is one recorded hospital visit. Rows are bulk-imported once
// and never updated; every report reads from this table.
type Admission struct {
	ID                int64           `db:"id" json:"id"`
	Name              string          `db:"name" json:"name"`
	Age               int             `db:"age" json:"age"`
	Gender            string          `db:"gender" json:"gender"`
	BloodType         string          `db:"blood_type" json:"blood_type"`
	MedicalCondition  string          `db:"medical_condition" json:"medical_condition"`
	DateOfAdmission   time.Time       `db:"date_of_admission" json:"date_of_admission"`
	Doctor            string          `db:"doctor" json:"doctor"`
	Hospital          string          `db:"hospital" json:"hospital"`
	InsuranceProvider string          `db:"insurance_provider" json:"insurance_provider"`
	BillingAmount     decimal.Decimal `db:"billing_amount" json:"billing_amount"`
	RoomNumber        int             `db:"room_number" json:"room_number"`
	AdmissionType     string          `db:"admission_type" json:"admission_type"`
	DischargeDate     *time.Time      `db:"discharge_date" json:"discharge_date,omitempty"`
	Medication        string          `db:"medication" json:"medication"`
	TestResults       string          `db:"test_results" json:"test_results"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
