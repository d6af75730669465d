package validation

import (
	"fmt"
	"strings"

	"github.com/garyjia/invoice-validation/internal/domain/entity"
)

// InvoiceValidator runs all validation passes over a candidate invoice and
// aggregates the findings into one report.
type InvoiceValidator struct {
	dates *DateValidator
}

// NewInvoiceValidator creates an invoice validator.
func NewInvoiceValidator(dates *DateValidator) *InvoiceValidator {
	return &InvoiceValidator{dates: dates}
}

// Validate runs the four rule passes in fixed order: required fields, date,
// line items, calculations. Every pass always runs; findings accumulate and
// nothing is fatal. The report is valid only when no finding of either
// severity was produced.
func (v *InvoiceValidator) Validate(inv *entity.Invoice) *entity.ValidationReport {
	errors := []entity.ValidationError{}

	errors = append(errors, v.validateRequiredFields(inv)...)
	errors = append(errors, v.validateDate(inv)...)
	errors = append(errors, v.validateLineItems(inv)...)
	errors = append(errors, v.validateCalculations(inv)...)

	return &entity.ValidationReport{
		IsValid:    len(errors) == 0,
		Errors:     errors,
		ErrorCount: len(errors),
	}
}

// validateRequiredFields checks that the mandatory text fields are present
// and non-blank after trimming.
func (v *InvoiceValidator) validateRequiredFields(inv *entity.Invoice) []entity.ValidationError {
	var errors []entity.ValidationError

	required := []struct {
		name  string
		value string
	}{
		{"invoiceNumber", inv.InvoiceNumber},
		{"invoiceDate", inv.InvoiceDate},
		{"vendorName", inv.VendorName},
		{"customerName", inv.CustomerName},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			errors = append(errors, entity.ValidationError{
				Field:    field.name,
				Message:  fmt.Sprintf("%s is required", field.name),
				Severity: entity.SeverityError,
			})
		}
	}

	return errors
}

// validateDate applies the invoice date business rule.
func (v *InvoiceValidator) validateDate(inv *entity.Invoice) []entity.ValidationError {
	var errors []entity.ValidationError

	result := v.dates.ValidateInvoiceDate(inv.InvoiceDate)
	if !result.IsValid {
		errors = append(errors, entity.ValidationError{
			Field:    "invoiceDate",
			Message:  result.Message,
			Severity: entity.SeverityError,
		})
	}

	return errors
}

// validateLineItems checks that at least one line item exists and that each
// item has a description, a positive quantity and a non-negative price.
// The three per-item checks are independent.
func (v *InvoiceValidator) validateLineItems(inv *entity.Invoice) []entity.ValidationError {
	var errors []entity.ValidationError

	if len(inv.LineItems) == 0 {
		errors = append(errors, entity.ValidationError{
			Field:    "lineItems",
			Message:  "Invoice must have at least one line item",
			Severity: entity.SeverityError,
		})
		return errors
	}

	for i, item := range inv.LineItems {
		if strings.TrimSpace(item.Description) == "" {
			errors = append(errors, entity.ValidationError{
				Field:    fmt.Sprintf("lineItems[%d].description", i),
				Message:  fmt.Sprintf("Line item %d missing description", i+1),
				Severity: entity.SeverityError,
			})
		}

		if item.Quantity <= 0 {
			errors = append(errors, entity.ValidationError{
				Field:    fmt.Sprintf("lineItems[%d].quantity", i),
				Message:  fmt.Sprintf("Line item %d must have quantity greater than 0", i+1),
				Severity: entity.SeverityError,
			})
		}

		if item.UnitPrice < 0 {
			errors = append(errors, entity.ValidationError{
				Field:    fmt.Sprintf("lineItems[%d].unitPrice", i),
				Message:  fmt.Sprintf("Line item %d cannot have negative price", i+1),
				Severity: entity.SeverityError,
			})
		}
	}

	return errors
}

// validateCalculations checks the caller-supplied subtotal, tax amount and
// total against values derived from the line items. The expected subtotal is
// the raw unrounded sum, not the rounded CalculateInvoiceTotals output; the
// comparison tolerance absorbs the difference. Tax mismatches are advisory
// warnings, subtotal and total mismatches are errors.
func (v *InvoiceValidator) validateCalculations(inv *entity.Invoice) []entity.ValidationError {
	var errors []entity.ValidationError

	expectedSubtotal := CalculateSubtotal(inv.LineItems)

	if !NumbersEqual(inv.Subtotal, expectedSubtotal, DefaultTolerance) {
		errors = append(errors, entity.ValidationError{
			Field:    "subtotal",
			Message:  fmt.Sprintf("Subtotal mismatch. Expected: %.2f, Got: %.2f", expectedSubtotal, inv.Subtotal),
			Severity: entity.SeverityError,
		})
	}

	expectedTax := CalculateTax(expectedSubtotal, inv.TaxRate)
	if !NumbersEqual(inv.TaxAmount, expectedTax, DefaultTolerance) {
		errors = append(errors, entity.ValidationError{
			Field:    "taxAmount",
			Message:  fmt.Sprintf("Tax calculation incorrect. Expected: %.2f, Got: %.2f", expectedTax, inv.TaxAmount),
			Severity: entity.SeverityWarning,
		})
	}

	expectedTotal := CalculateTotal(expectedSubtotal, expectedTax)
	if !NumbersEqual(inv.Total, expectedTotal, DefaultTolerance) {
		errors = append(errors, entity.ValidationError{
			Field:    "total",
			Message:  fmt.Sprintf("Total mismatch. Expected: %.2f, Got: %.2f", expectedTotal, inv.Total),
			Severity: entity.SeverityError,
		})
	}

	return errors
}
