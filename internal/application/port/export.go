package port

import "github.com/garyjia/invoice-validation/internal/domain/entity"

// ReportExporter writes a validation run to a file for offline review.
type ReportExporter interface {
	Export(run *entity.ValidationRun, outputPath string) error
}
