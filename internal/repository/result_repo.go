// Package repository persists validation run history. Only verdicts and
// findings are stored; invoice payloads never touch the database.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/garyjia/invoice-validation/internal/domain/entity"
)

// ValidationResultRepository handles validation run database operations.
type ValidationResultRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewValidationResultRepository creates a new validation result repository.
func NewValidationResultRepository(db *sql.DB, logger *zap.Logger) *ValidationResultRepository {
	return &ValidationResultRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores one validation run.
func (r *ValidationResultRepository) Create(ctx context.Context, run *entity.ValidationRun) error {
	findings, err := json.Marshal(run.Report.Errors)
	if err != nil {
		return fmt.Errorf("failed to marshal findings: %w", err)
	}

	query := `
		INSERT INTO validation_results (id, invoice_number, is_valid, error_count, findings, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		run.ID,
		run.InvoiceNumber,
		run.Report.IsValid,
		run.Report.ErrorCount,
		string(findings),
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert validation result: %w", err)
	}

	r.logger.Debug("Validation result stored",
		zap.String("run_id", run.ID),
		zap.Bool("is_valid", run.Report.IsValid),
		zap.Int("error_count", run.Report.ErrorCount))

	return nil
}

// GetByID returns one validation run, or sql.ErrNoRows when absent.
func (r *ValidationResultRepository) GetByID(ctx context.Context, id string) (*entity.ValidationRun, error) {
	query := `
		SELECT id, invoice_number, is_valid, error_count, findings, created_at
		FROM validation_results
		WHERE id = ?
	`

	return r.scanRun(r.db.QueryRowContext(ctx, query, id))
}

// List returns validation runs in reverse chronological order.
func (r *ValidationResultRepository) List(ctx context.Context, limit, offset int) ([]*entity.ValidationRun, error) {
	query := `
		SELECT id, invoice_number, is_valid, error_count, findings, created_at
		FROM validation_results
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query validation results: %w", err)
	}
	defer rows.Close()

	var runs []*entity.ValidationRun
	for rows.Next() {
		run, err := r.scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *ValidationResultRepository) scanRun(row rowScanner) (*entity.ValidationRun, error) {
	var run entity.ValidationRun
	var report entity.ValidationReport
	var findings string

	err := row.Scan(
		&run.ID,
		&run.InvoiceNumber,
		&report.IsValid,
		&report.ErrorCount,
		&findings,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(findings), &report.Errors); err != nil {
		return nil, fmt.Errorf("failed to unmarshal findings: %w", err)
	}

	run.Report = &report
	return &run, nil
}
