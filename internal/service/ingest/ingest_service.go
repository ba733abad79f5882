package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"medstat/internal/domain/dto"
	"medstat/internal/pkg/constants"
	"medstat/internal/pkg/logger"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	dateLayout   = "2006-01-02"
	recordFields = 15
)

// AdmissionWriter is the slice of the store the importer needs.
type AdmissionWriter interface {
	CopyAdmissions(ctx context.Context, records []*dto.AdmissionRecord) (int64, error)
}

type Service struct {
	store     AdmissionWriter
	chunkSize int
	workers   int
}

func NewIngestService(store AdmissionWriter, chunkSize, workers int) *Service {
	return &Service{store: store, chunkSize: chunkSize, workers: workers}
}

type Result struct {
	Imported            int64 `json:"imported"`
	Skipped             int64 `json:"skipped"`
	DischargeViolations int64 `json:"discharge_violations"`
}

// ImportCSV streams the admissions file into the store. The first line
// is a header and is discarded; rows that fail to parse are counted and
// skipped, rows whose discharge date precedes the admission date are
// counted but still loaded. Chunks go through the copy path
// concurrently, each retried on transient failure.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = recordFields
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, constants.ErrEmptyImport
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var result Result
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.workers)

	flush := func(chunk []*dto.AdmissionRecord) {
		eg.Go(func() error {
			attempt := func() error {
				_, err := s.store.CopyAdmissions(egCtx, chunk)
				return err
			}

			err := backoff.Retry(attempt, backoff.WithContext(
				backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), egCtx))
			if err != nil {
				return fmt.Errorf("copy chunk of %d: %w", len(chunk), err)
			}

			atomic.AddInt64(&result.Imported, int64(len(chunk)))
			return nil
		})
	}

	chunk := make([]*dto.AdmissionRecord, 0, s.chunkSize)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			logger.Warnf(ctx, "import: line %d: %s", line, err.Error())
			result.Skipped++
			continue
		}

		record, err := parseRecord(row)
		if err != nil {
			logger.Warnf(ctx, "import: line %d: %s", line, err.Error())
			result.Skipped++
			continue
		}

		if record.DischargeBeforeAdmission() {
			logger.Warnf(ctx, "import: line %d: discharge %s before admission %s",
				line, record.DischargeDate.Format(dateLayout), record.DateOfAdmission.Format(dateLayout))
			atomic.AddInt64(&result.DischargeViolations, 1)
		}

		chunk = append(chunk, record)
		if len(chunk) == s.chunkSize {
			flush(chunk)
			chunk = make([]*dto.AdmissionRecord, 0, s.chunkSize)
		}
	}

	if len(chunk) > 0 {
		flush(chunk)
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logger.Infof(ctx, "import: %d rows loaded, %d skipped, %d discharge violations",
		result.Imported, result.Skipped, result.DischargeViolations)

	return &result, nil
}

func parseRecord(row []string) (*dto.AdmissionRecord, error) {
	age, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return nil, fmt.Errorf("bad age %q: %w", row[1], err)
	}
	if age < 0 {
		return nil, fmt.Errorf("negative age %d", age)
	}

	admitted, err := time.Parse(dateLayout, strings.TrimSpace(row[5]))
	if err != nil {
		return nil, fmt.Errorf("bad admission date %q: %w", row[5], err)
	}

	billing, err := decimal.NewFromString(strings.TrimSpace(row[9]))
	if err != nil {
		return nil, fmt.Errorf("bad billing amount %q: %w", row[9], err)
	}
	if billing.IsNegative() {
		return nil, fmt.Errorf("negative billing amount %s", billing)
	}

	room, err := strconv.Atoi(strings.TrimSpace(row[10]))
	if err != nil {
		return nil, fmt.Errorf("bad room number %q: %w", row[10], err)
	}

	var discharged *time.Time
	if raw := strings.TrimSpace(row[12]); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("bad discharge date %q: %w", row[12], err)
		}
		discharged = &d
	}

	return &dto.AdmissionRecord{
		Name:              row[0],
		Age:               age,
		Gender:            row[2],
		BloodType:         row[3],
		MedicalCondition:  row[4],
		DateOfAdmission:   admitted,
		Doctor:            row[6],
		Hospital:          row[7],
		InsuranceProvider: row[8],
		BillingAmount:     billing,
		RoomNumber:        room,
		AdmissionType:     row[11],
		DischargeDate:     discharged,
		Medication:        row[13],
		TestResults:       row[14],
	}, nil
}
