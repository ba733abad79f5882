package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdmissionRecord is one parsed row of the import file. Column order in
// the file is fixed: name, age, gender, blood type, medical condition,
// date of admission, doctor, hospital, insurance provider, billing
// amount, room number, admission type, discharge date, medication,
// test results. The header row is skipped.
type AdmissionRecord struct {
	Name              string
	Age               int
	Gender            string
	BloodType         string
	MedicalCondition  string
	DateOfAdmission   time.Time
	Doctor            string
	Hospital          string
	InsuranceProvider string
	BillingAmount     decimal.Decimal
	RoomNumber        int
	AdmissionType     string
	DischargeDate     *time.Time
	Medication        string
	TestResults       string
}

// DischargeBeforeAdmission reports the application-level invariant the
// schema itself does not enforce. Violating rows are still loaded.
func (r *AdmissionRecord) DischargeBeforeAdmission() bool {
	return r.DischargeDate != nil && r.DischargeDate.Before(r.DateOfAdmission)
}
