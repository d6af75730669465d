package entity

import "time"

// Severity classifies how blocking a validation finding is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError represents one detected issue on an invoice.
// Field is a stable identifier addressing the offending field in the
// request payload, e.g. "vendorName" or "lineItems[2].quantity".
type ValidationError struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// ValidationReport is the complete output of one validation run.
// IsValid is true only when no findings of either severity were produced.
type ValidationReport struct {
	IsValid    bool              `json:"isValid"`
	Errors     []ValidationError `json:"errors"`
	ErrorCount int               `json:"errorCount"`
}

// ValidationRun records one executed validation together with its verdict.
// Runs are what the service persists; invoice payloads themselves are not
// stored.
type ValidationRun struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoiceNumber"`
	Report        *ValidationReport `json:"report"`
	CreatedAt     time.Time         `json:"createdAt"`
}
