package ingest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"medstat/internal/domain/dto"
	"medstat/internal/pkg/constants"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = `Name,Age,Gender,Blood Type,Medical Condition,Date of Admission,Doctor,Hospital,Insurance Provider,Billing Amount,Room Number,Admission Type,Discharge Date,Medication,Test Results`

type fakeWriter struct {
	mu      sync.Mutex
	records []*dto.AdmissionRecord
	chunks  int
}

func (f *fakeWriter) CopyAdmissions(_ context.Context, records []*dto.AdmissionRecord) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.records = append(f.records, records...)
	f.chunks++
	return int64(len(records)), nil
}

func TestImportCSV(t *testing.T) {
	data := csvHeader + "\n" +
		`Bobby Jackson,30,Male,B-,Cancer,2024-01-31,Dr. Michael Chen,"Sons and Miller",Blue Cross,18856.28,328,Urgent,2024-02-02,Paracetamol,Normal` + "\n" +
		`Leslie Terry,62,Male,A+,Obesity,2019-08-20,Dr. Lisa Anderson,Kim Inc,Medicare,33643.33,265,Emergency,,Ibuprofen,Inconclusive` + "\n"

	fake := &fakeWriter{}
	svc := NewIngestService(fake, 100, 2)

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(data))

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Imported)
	assert.Equal(t, int64(0), result.Skipped)
	assert.Equal(t, int64(0), result.DischargeViolations)

	require.Len(t, fake.records, 2)

	byName := map[string]*dto.AdmissionRecord{}
	for _, r := range fake.records {
		byName[r.Name] = r
	}

	bobby := byName["Bobby Jackson"]
	require.NotNil(t, bobby)
	assert.Equal(t, 30, bobby.Age)
	assert.Equal(t, "Sons and Miller", bobby.Hospital)
	assert.True(t, decimal.RequireFromString("18856.28").Equal(bobby.BillingAmount))
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), bobby.DateOfAdmission)
	require.NotNil(t, bobby.DischargeDate)
	assert.Equal(t, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), *bobby.DischargeDate)

	leslie := byName["Leslie Terry"]
	require.NotNil(t, leslie)
	assert.Nil(t, leslie.DischargeDate)
}

func TestImportCSV_SkipsUnparsableRows(t *testing.T) {
	data := csvHeader + "\n" +
		`Bad Age,not-a-number,Male,O+,Asthma,2023-05-01,Dr. Emily Davis,Clinic,Aetna,100.00,12,Elective,,None,Normal` + "\n" +
		`Bad Billing,44,Female,O-,Asthma,2023-05-01,Dr. Emily Davis,Clinic,Aetna,lots,12,Elective,,None,Normal` + "\n" +
		`Negative Billing,44,Female,O-,Asthma,2023-05-01,Dr. Emily Davis,Clinic,Aetna,-5.00,12,Elective,,None,Normal` + "\n" +
		`Fine Row,44,Female,O-,Asthma,2023-05-01,Dr. Emily Davis,Clinic,Aetna,250.00,12,Elective,,None,Normal` + "\n"

	fake := &fakeWriter{}
	svc := NewIngestService(fake, 100, 2)

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(data))

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Imported)
	assert.Equal(t, int64(3), result.Skipped)
	require.Len(t, fake.records, 1)
	assert.Equal(t, "Fine Row", fake.records[0].Name)
}

func TestImportCSV_CountsDischargeViolationsButLoads(t *testing.T) {
	data := csvHeader + "\n" +
		`Early Exit,50,Female,AB+,Diabetes,2023-06-10,Dr. Sarah Johnson,Clinic,Cigna,900.00,5,Urgent,2023-06-01,Insulin,Abnormal` + "\n"

	fake := &fakeWriter{}
	svc := NewIngestService(fake, 100, 2)

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(data))

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Imported)
	assert.Equal(t, int64(1), result.DischargeViolations)
	require.Len(t, fake.records, 1)
}

func TestImportCSV_ChunksConcurrently(t *testing.T) {
	var b strings.Builder
	b.WriteString(csvHeader + "\n")
	for i := 0; i < 5; i++ {
		b.WriteString(`Patient,33,Female,O+,Flu,2023-01-01,Dr. Emily Davis,Clinic,Aetna,100.00,1,Elective,,None,Normal` + "\n")
	}

	fake := &fakeWriter{}
	svc := NewIngestService(fake, 2, 3)

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(b.String()))

	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Imported)
	assert.Equal(t, 3, fake.chunks)
	assert.Len(t, fake.records, 5)
}

func TestImportCSV_EmptyFile(t *testing.T) {
	fake := &fakeWriter{}
	svc := NewIngestService(fake, 100, 2)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader(""))

	assert.ErrorIs(t, err, constants.ErrEmptyImport)
}

func TestImportCSV_HeaderOnly(t *testing.T) {
	fake := &fakeWriter{}
	svc := NewIngestService(fake, 100, 2)

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(csvHeader+"\n"))

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Imported)
	assert.Empty(t, fake.records)
}
