package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyjia/invoice-validation/internal/domain/entity"
	"github.com/garyjia/invoice-validation/internal/invoice"
	"github.com/garyjia/invoice-validation/internal/validation"
)

type stubResultStore struct {
	created   []*entity.ValidationRun
	createErr error
}

func (s *stubResultStore) Create(_ context.Context, run *entity.ValidationRun) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, run)
	return nil
}

func (s *stubResultStore) GetByID(_ context.Context, id string) (*entity.ValidationRun, error) {
	for _, run := range s.created {
		if run.ID == id {
			return run, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubResultStore) List(_ context.Context, limit, offset int) ([]*entity.ValidationRun, error) {
	return s.created, nil
}

type stubExporter struct {
	exported []string
	err      error
}

func (s *stubExporter) Export(run *entity.ValidationRun, outputPath string) error {
	if s.err != nil {
		return s.err
	}
	s.exported = append(s.exported, outputPath)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}

func newTestService(store *stubResultStore) ValidationService {
	return newTestServiceWithExporter(store, &stubExporter{})
}

func newTestServiceWithExporter(store *stubResultStore, exporter *stubExporter) ValidationService {
	dates := validation.NewDateValidatorWithClock(func() time.Time {
		return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	})
	return NewValidationService(validation.NewInvoiceValidator(dates), store, exporter, "reports", noopLogger{})
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestValidateInvoiceRecordsRun(t *testing.T) {
	store := &stubResultStore{}
	svc := newTestService(store)

	raw := invoice.Raw{
		InvoiceNumber: strPtr("INV-001"),
		InvoiceDate:   strPtr("2024-01-15"),
		VendorName:    strPtr("ABC Company"),
		CustomerName:  strPtr("XYZ Corp"),
		LineItems: []invoice.RawLineItem{
			{Description: strPtr("Laptop"), Quantity: floatPtr(2), UnitPrice: floatPtr(1000)},
		},
		Subtotal:  floatPtr(2000),
		TaxRate:   floatPtr(10),
		TaxAmount: floatPtr(200),
		Total:     floatPtr(2200),
	}

	run, err := svc.ValidateInvoice(context.Background(), raw)
	require.NoError(t, err)

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "INV-001", run.InvoiceNumber)
	assert.True(t, run.Report.IsValid)
	assert.False(t, run.CreatedAt.IsZero())

	require.Len(t, store.created, 1)
	assert.Same(t, run, store.created[0])
}

func TestValidateInvoiceInvalidPayloadStillSucceeds(t *testing.T) {
	store := &stubResultStore{}
	svc := newTestService(store)

	// An empty payload is a precondition-satisfying record after
	// normalization; the findings carry the verdict.
	run, err := svc.ValidateInvoice(context.Background(), invoice.Raw{})
	require.NoError(t, err)

	assert.False(t, run.Report.IsValid)
	assert.Greater(t, run.Report.ErrorCount, 0)
}

func TestValidateInvoiceStoreFailure(t *testing.T) {
	store := &stubResultStore{createErr: errors.New("disk full")}
	svc := newTestService(store)

	_, err := svc.ValidateInvoice(context.Background(), invoice.Raw{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store validation run")
}

func TestGetResult(t *testing.T) {
	store := &stubResultStore{}
	svc := newTestService(store)

	run, err := svc.ValidateInvoice(context.Background(), invoice.Raw{})
	require.NoError(t, err)

	got, err := svc.GetResult(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)

	_, err = svc.GetResult(context.Background(), "missing")
	assert.Error(t, err)
}

func TestExportResult(t *testing.T) {
	store := &stubResultStore{}
	exporter := &stubExporter{}
	svc := newTestServiceWithExporter(store, exporter)

	run, err := svc.ValidateInvoice(context.Background(), invoice.Raw{})
	require.NoError(t, err)

	path, err := svc.ExportResult(context.Background(), run.ID)
	require.NoError(t, err)

	assert.Contains(t, path, run.ID)
	assert.Contains(t, path, ".xlsx")
	require.Len(t, exporter.exported, 1)
	assert.Equal(t, path, exporter.exported[0])
}

func TestExportResultMissingRun(t *testing.T) {
	svc := newTestService(&stubResultStore{})

	_, err := svc.ExportResult(context.Background(), "missing")
	assert.Error(t, err)
}
