// Package service orchestrates the validation use cases: normalize the raw
// payload, run the engine, record the run.
package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/garyjia/invoice-validation/internal/application/port"
	"github.com/garyjia/invoice-validation/internal/domain/entity"
	"github.com/garyjia/invoice-validation/internal/invoice"
	"github.com/garyjia/invoice-validation/internal/validation"
)

// Logger interface for logging operations
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// ValidationService manages invoice validation runs.
type ValidationService interface {
	ValidateInvoice(ctx context.Context, raw invoice.Raw) (*entity.ValidationRun, error)
	GetResult(ctx context.Context, id string) (*entity.ValidationRun, error)
	ListResults(ctx context.Context, limit, offset int) ([]*entity.ValidationRun, error)
	ExportResult(ctx context.Context, id string) (string, error)
}

type validationServiceImpl struct {
	validator *validation.InvoiceValidator
	results   port.ResultStore
	exporter  port.ReportExporter
	outputDir string
	logger    Logger
}

// NewValidationService creates a new ValidationService.
func NewValidationService(
	validator *validation.InvoiceValidator,
	results port.ResultStore,
	exporter port.ReportExporter,
	outputDir string,
	logger Logger,
) ValidationService {
	return &validationServiceImpl{
		validator: validator,
		results:   results,
		exporter:  exporter,
		outputDir: outputDir,
		logger:    logger,
	}
}

// ValidateInvoice normalizes the payload, runs all validation passes and
// records the outcome. A business-invalid invoice is a successful run; the
// verdict lives in the report.
func (s *validationServiceImpl) ValidateInvoice(ctx context.Context, raw invoice.Raw) (*entity.ValidationRun, error) {
	inv := invoice.Normalize(raw)
	report := s.validator.Validate(inv)

	run := &entity.ValidationRun{
		ID:            uuid.NewString(),
		InvoiceNumber: inv.InvoiceNumber,
		Report:        report,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.results.Create(ctx, run); err != nil {
		s.logger.Error("Failed to store validation run", "error", err, "run_id", run.ID)
		return nil, fmt.Errorf("store validation run: %w", err)
	}

	s.logger.Info("Invoice validated",
		"run_id", run.ID,
		"invoice_number", run.InvoiceNumber,
		"is_valid", report.IsValid,
		"error_count", report.ErrorCount)

	return run, nil
}

// GetResult returns one recorded validation run.
func (s *validationServiceImpl) GetResult(ctx context.Context, id string) (*entity.ValidationRun, error) {
	run, err := s.results.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get validation run: %w", err)
	}
	return run, nil
}

// ListResults returns recorded validation runs, newest first.
func (s *validationServiceImpl) ListResults(ctx context.Context, limit, offset int) ([]*entity.ValidationRun, error) {
	runs, err := s.results.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list validation runs: %w", err)
	}
	return runs, nil
}

// ExportResult writes one recorded run to an Excel workbook in the
// configured output directory and returns the file path.
func (s *validationServiceImpl) ExportResult(ctx context.Context, id string) (string, error) {
	run, err := s.results.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get validation run: %w", err)
	}

	outputPath := filepath.Join(s.outputDir, fmt.Sprintf("validation-%s.xlsx", run.ID))
	if err := s.exporter.Export(run, outputPath); err != nil {
		s.logger.Error("Failed to export validation run", "error", err, "run_id", run.ID)
		return "", fmt.Errorf("export validation run: %w", err)
	}

	s.logger.Info("Validation run exported", "run_id", run.ID, "output_path", outputPath)
	return outputPath, nil
}
