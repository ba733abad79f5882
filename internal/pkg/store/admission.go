package store

import (
	"context"
	"fmt"

	"medstat/internal/domain"
	"medstat/internal/domain/dto"
	"medstat/internal/pkg/logger"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var (
	admissionsColumns = []string{
		"id", "name", "age", "gender", "blood_type", "medical_condition",
		"date_of_admission", "doctor", "hospital", "insurance_provider",
		"billing_amount", "room_number", "admission_type", "discharge_date",
		"medication", "test_results",
	}
	doctorsColumns = []string{"name", "specialty", "years_experience"}

	// id is bigserial, the engine assigns it.
	copyColumns = admissionsColumns[1:]
)

// CopyAdmissions bulk-loads one chunk of parsed import rows through the
// wire-protocol copy path.
func (s *store) CopyAdmissions(ctx context.Context, records []*dto.AdmissionRecord) (int64, error) {
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{
			r.Name, r.Age, r.Gender, r.BloodType, r.MedicalCondition,
			r.DateOfAdmission, r.Doctor, r.Hospital, r.InsuranceProvider,
			r.BillingAmount, r.RoomNumber, r.AdmissionType, r.DischargeDate,
			r.Medication, r.TestResults,
		})
	}

	copied, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{tableAdmissions},
		copyColumns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		logger.Errorf(ctx, "copy admissions: %s", err.Error())
		return 0, fmt.Errorf("copy admissions: %w", err)
	}

	return copied, nil
}

// AdmissionsByCondition lists every admission with the exact condition,
// most expensive first.
func (s *store) AdmissionsByCondition(ctx context.Context, condition string) ([]*domain.Admission, error) {
	query := builder().Select(admissionsColumns...).
		From(tableAdmissions).
		Where(sq.Eq{"medical_condition": condition}).
		OrderBy("billing_amount desc")

	var selected []*domain.Admission
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// SeniorMalePatients lists male patients older than 50, youngest first.
func (s *store) SeniorMalePatients(ctx context.Context) ([]*domain.Admission, error) {
	query := builder().Select(admissionsColumns...).
		From(tableAdmissions).
		Where(sq.And{
			sq.Gt{"age": 50},
			sq.Eq{"gender": "Male"},
		}).
		OrderBy("age asc")

	var selected []*domain.Admission
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
