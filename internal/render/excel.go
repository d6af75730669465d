package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/garyjia/invoice-validation/internal/domain/entity"
)

const reportSheet = "Validation Report"

// ReportExporter writes validation runs to Excel workbooks for accountants
// who review findings outside the API.
type ReportExporter struct {
	logger *zap.Logger
}

// NewReportExporter creates a report exporter.
func NewReportExporter(logger *zap.Logger) *ReportExporter {
	return &ReportExporter{logger: logger}
}

// Export writes one validation run to an .xlsx file at outputPath.
func (re *ReportExporter) Export(run *entity.ValidationRun, outputPath string) error {
	re.logger.Info("Exporting validation report",
		zap.String("run_id", run.ID),
		zap.String("output_path", outputPath))

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	verdict := "PASSED"
	if !run.Report.IsValid {
		verdict = "FAILED"
	}

	// Summary block
	re.setCell(f, "A1", "Run ID")
	re.setCell(f, "B1", run.ID)
	re.setCell(f, "A2", "Invoice Number")
	re.setCell(f, "B2", run.InvoiceNumber)
	re.setCell(f, "A3", "Validated At")
	re.setCell(f, "B3", run.CreatedAt.Format("2006-01-02 15:04:05"))
	re.setCell(f, "A4", "Verdict")
	re.setCell(f, "B4", verdict)
	re.setCell(f, "A5", "Finding Count")
	re.setCell(f, "B5", run.Report.ErrorCount)

	// Findings table
	re.setCell(f, "A7", "#")
	re.setCell(f, "B7", "Field")
	re.setCell(f, "C7", "Severity")
	re.setCell(f, "D7", "Message")

	for i, finding := range run.Report.Errors {
		row := 8 + i
		re.setCell(f, fmt.Sprintf("A%d", row), i+1)
		re.setCell(f, fmt.Sprintf("B%d", row), finding.Field)
		re.setCell(f, fmt.Sprintf("C%d", row), string(finding.Severity))
		re.setCell(f, fmt.Sprintf("D%d", row), finding.Message)
	}

	if err := f.SetColWidth(reportSheet, "B", "B", 36); err != nil {
		re.logger.Warn("Failed to set column width", zap.Error(err))
	}
	if err := f.SetColWidth(reportSheet, "D", "D", 64); err != nil {
		re.logger.Warn("Failed to set column width", zap.Error(err))
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	re.logger.Info("Validation report exported",
		zap.String("run_id", run.ID),
		zap.Int("finding_count", run.Report.ErrorCount))

	return nil
}

// setCell writes a value, logging failures instead of aborting the export.
func (re *ReportExporter) setCell(f *excelize.File, cell string, value interface{}) {
	if err := f.SetCellValue(reportSheet, cell, value); err != nil {
		re.logger.Warn("Failed to set cell",
			zap.String("cell", cell),
			zap.Error(err))
	}
}
