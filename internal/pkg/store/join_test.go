package store

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmissionsWithDoctor_InnerJoin(t *testing.T) {
	mock, st := setupMockStore(t)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{
		"patient_name", "age", "medical_condition", "hospital",
		"billing_amount", "doctor", "specialty", "years_experience",
	}).AddRow(
		"Bobby Jackson", 30, "Cancer", "Sons and Miller",
		"18856.28", "Dr. Michael Chen", "Oncology", 12,
	)

	mock.ExpectQuery(`JOIN doctors d on d\.name = a\.doctor`).
		WillReturnRows(rows)

	got, err := st.AdmissionsWithDoctor(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. Michael Chen", got[0].Doctor)
	assert.Equal(t, "Oncology", got[0].Specialty)
	assert.True(t, decimal.RequireFromString("18856.28").Equal(got[0].BillingAmount))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdmissionsWithDoctorLeft_PreservesUnmatched(t *testing.T) {
	mock, st := setupMockStore(t)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{
		"patient_name", "medical_condition", "hospital",
		"billing_amount", "doctor", "specialty", "years_experience",
	}).AddRow(
		"Leslie Terry", "Obesity", "Kim Inc",
		"33643.33", "Dr. Nobody", nil, nil,
	)

	mock.ExpectQuery(`LEFT JOIN doctors d on d\.name = a\.doctor`).
		WillReturnRows(rows)

	got, err := st.AdmissionsWithDoctorLeft(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. Nobody", got[0].Doctor)
	assert.Nil(t, got[0].Specialty)
	assert.Nil(t, got[0].YearsExperience)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorsWithAdmissionsRight_PreservesIdleDoctors(t *testing.T) {
	mock, st := setupMockStore(t)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{
		"doctor", "specialty", "patient_name", "medical_condition", "billing_amount",
	}).AddRow(
		"Dr. Emily Davis", "Neurology", nil, nil, nil,
	)

	mock.ExpectQuery(`RIGHT JOIN doctors d on d\.name = a\.doctor`).
		WillReturnRows(rows)

	got, err := st.DoctorsWithAdmissionsRight(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dr. Emily Davis", got[0].Doctor)
	assert.Nil(t, got[0].PatientName)
	assert.False(t, got[0].BillingAmount.Valid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBillingVsHospitalAverage_Composite(t *testing.T) {
	mock, st := setupMockStore(t)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{
		"patient_name", "hospital", "doctor", "specialty",
		"billing_amount", "hospital_avg_billing", "billing_delta",
	}).AddRow(
		"Danny Smith", "Cook PLC", "Dr. Sarah Johnson", "Cardiology",
		"27955.10", "18000.00", "9955.10",
	)

	mock.ExpectQuery(`JOIN hospital_summary hs on hs\.hospital = a\.hospital`).
		WillReturnRows(rows)

	got, err := st.BillingVsHospitalAverage(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, decimal.RequireFromString("9955.10").Equal(got[0].BillingDelta))
	require.NoError(t, mock.ExpectationsWereMet())
}
