package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyjia/invoice-validation/internal/domain/entity"
)

func newTestValidator() *InvoiceValidator {
	return NewInvoiceValidator(newTestDateValidator())
}

// validInvoice returns an invoice that passes every rule under the fixed
// 2024-06-15 test clock.
func validInvoice() *entity.Invoice {
	return &entity.Invoice{
		InvoiceNumber: "INV-001",
		InvoiceDate:   "2024-01-15",
		VendorName:    "ABC Company",
		CustomerName:  "XYZ Corp",
		LineItems: []entity.LineItem{
			{Description: "Laptop", Quantity: 2, UnitPrice: 1000, LineTotal: 2000},
		},
		Subtotal:  2000,
		TaxRate:   10,
		TaxAmount: 200,
		Total:     2200,
		Currency:  "AUD",
	}
}

func TestValidateValidInvoice(t *testing.T) {
	report := newTestValidator().Validate(validInvoice())

	assert.True(t, report.IsValid)
	assert.Empty(t, report.Errors)
	assert.Zero(t, report.ErrorCount)
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(*entity.Invoice)
		expectedFields []string
	}{
		{
			name:           "missing invoice number",
			mutate:         func(inv *entity.Invoice) { inv.InvoiceNumber = "" },
			expectedFields: []string{"invoiceNumber"},
		},
		{
			name:           "whitespace vendor name",
			mutate:         func(inv *entity.Invoice) { inv.VendorName = "   " },
			expectedFields: []string{"vendorName"},
		},
		{
			name: "all required fields missing",
			mutate: func(inv *entity.Invoice) {
				inv.InvoiceNumber = ""
				inv.InvoiceDate = ""
				inv.VendorName = ""
				inv.CustomerName = ""
			},
			expectedFields: []string{"invoiceNumber", "invoiceDate", "vendorName", "customerName"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := validInvoice()
			tt.mutate(inv)

			report := newTestValidator().Validate(inv)

			require.False(t, report.IsValid)
			for _, field := range tt.expectedFields {
				finding := findByField(report.Errors, field)
				require.NotNilf(t, finding, "expected finding for %s", field)
				assert.Equal(t, entity.SeverityError, finding.Severity)
				assert.Contains(t, finding.Message, "is required")
			}
		})
	}
}

func TestValidateDateRules(t *testing.T) {
	t.Run("invalid date string", func(t *testing.T) {
		inv := validInvoice()
		inv.InvoiceDate = "not-a-date"

		report := newTestValidator().Validate(inv)

		finding := findByField(report.Errors, "invoiceDate")
		require.NotNil(t, finding)
		assert.Contains(t, finding.Message, "not a valid date")
	})

	t.Run("future date", func(t *testing.T) {
		inv := validInvoice()
		inv.InvoiceDate = "2030-12-31"

		report := newTestValidator().Validate(inv)

		finding := findByField(report.Errors, "invoiceDate")
		require.NotNil(t, finding)
		assert.Contains(t, finding.Message, "cannot be in the future")
	})

	t.Run("today is accepted", func(t *testing.T) {
		inv := validInvoice()
		inv.InvoiceDate = "2024-06-15"

		report := newTestValidator().Validate(inv)

		assert.Nil(t, findByField(report.Errors, "invoiceDate"))
	})
}

func TestValidateLineItems(t *testing.T) {
	t.Run("no line items", func(t *testing.T) {
		inv := validInvoice()
		inv.LineItems = nil
		inv.Subtotal = 0
		inv.TaxAmount = 0
		inv.Total = 0

		report := newTestValidator().Validate(inv)

		require.False(t, report.IsValid)
		require.Equal(t, 1, report.ErrorCount, "calculations still run against a zero subtotal")
		assert.Equal(t, "lineItems", report.Errors[0].Field)
		assert.Contains(t, report.Errors[0].Message, "at least one line item")
	})

	t.Run("item with every defect", func(t *testing.T) {
		inv := validInvoice()
		inv.LineItems = []entity.LineItem{
			{Description: "  ", Quantity: -5, UnitPrice: -10},
		}
		inv.Subtotal = 50
		inv.TaxAmount = 5
		inv.Total = 55

		report := newTestValidator().Validate(inv)

		desc := findByField(report.Errors, "lineItems[0].description")
		require.NotNil(t, desc)
		assert.Contains(t, desc.Message, "Line item 1 missing description")

		qty := findByField(report.Errors, "lineItems[0].quantity")
		require.NotNil(t, qty)
		assert.Contains(t, qty.Message, "greater than 0")

		price := findByField(report.Errors, "lineItems[0].unitPrice")
		require.NotNil(t, price)
		assert.Contains(t, price.Message, "negative")
	})

	t.Run("defect on second item uses its index", func(t *testing.T) {
		inv := validInvoice()
		inv.LineItems = append(inv.LineItems, entity.LineItem{Description: "Mouse", Quantity: 0, UnitPrice: 25})

		report := newTestValidator().Validate(inv)

		finding := findByField(report.Errors, "lineItems[1].quantity")
		require.NotNil(t, finding)
		assert.Contains(t, finding.Message, "Line item 2")
	})

	t.Run("zero unit price is allowed", func(t *testing.T) {
		inv := validInvoice()
		inv.LineItems = []entity.LineItem{
			{Description: "Sample", Quantity: 1, UnitPrice: 0},
		}
		inv.Subtotal = 0
		inv.TaxAmount = 0
		inv.Total = 0

		report := newTestValidator().Validate(inv)

		assert.True(t, report.IsValid)
	})
}

func TestValidateCalculations(t *testing.T) {
	t.Run("subtotal mismatch", func(t *testing.T) {
		inv := validInvoice()
		inv.Subtotal = 1990

		report := newTestValidator().Validate(inv)

		finding := findByField(report.Errors, "subtotal")
		require.NotNil(t, finding)
		assert.Equal(t, entity.SeverityError, finding.Severity)
		assert.Contains(t, finding.Message, "Expected: 2000.00")
		assert.Contains(t, finding.Message, "Got: 1990.00")
	})

	t.Run("tax mismatch is a warning", func(t *testing.T) {
		inv := validInvoice()
		inv.TaxAmount = 150
		inv.Total = 2150

		report := newTestValidator().Validate(inv)

		finding := findByField(report.Errors, "taxAmount")
		require.NotNil(t, finding)
		assert.Equal(t, entity.SeverityWarning, finding.Severity)
		assert.Contains(t, finding.Message, "Tax calculation incorrect")

		// A warning alone still fails the report and the expected total is
		// derived from the expected tax, not the supplied one.
		assert.False(t, report.IsValid)
		assert.NotNil(t, findByField(report.Errors, "total"))
	})

	t.Run("mismatch within tolerance passes", func(t *testing.T) {
		inv := validInvoice()
		inv.Subtotal = 2000.009

		report := newTestValidator().Validate(inv)

		assert.Nil(t, findByField(report.Errors, "subtotal"))
	})

	t.Run("consistent multi-item arithmetic", func(t *testing.T) {
		inv := validInvoice()
		inv.LineItems = []entity.LineItem{
			{Description: "Laptop", Quantity: 2, UnitPrice: 1000},
			{Description: "Mouse", Quantity: 5, UnitPrice: 25},
		}
		inv.Subtotal = 2125
		inv.TaxRate = 10
		inv.TaxAmount = 212.50
		inv.Total = 2337.50

		report := newTestValidator().Validate(inv)

		assert.True(t, report.IsValid)
		assert.Zero(t, report.ErrorCount)
	})
}

// A document broken in several independent ways produces one finding per
// defect, in pass order.
func TestValidateAccumulatesAcrossPasses(t *testing.T) {
	inv := &entity.Invoice{
		InvoiceNumber: "",
		InvoiceDate:   "2024-01-15",
		VendorName:    "ABC Company",
		CustomerName:  "",
		LineItems: []entity.LineItem{
			{Description: "Laptop", Quantity: 2, UnitPrice: 1000},
			{Description: "", Quantity: -1, UnitPrice: 25},
		},
		Subtotal:  2125, // actual raw sum is 2000 - 25 = 1975
		TaxRate:   10,
		TaxAmount: 212.50,
		Total:     2337.50,
	}

	report := newTestValidator().Validate(inv)

	require.False(t, report.IsValid)
	require.GreaterOrEqual(t, report.ErrorCount, 6)
	assert.Len(t, report.Errors, report.ErrorCount)

	for _, field := range []string{
		"invoiceNumber",
		"customerName",
		"lineItems[1].description",
		"lineItems[1].quantity",
		"subtotal",
		"taxAmount",
		"total",
	} {
		assert.NotNilf(t, findByField(report.Errors, field), "missing finding for %s", field)
	}

	tax := findByField(report.Errors, "taxAmount")
	require.NotNil(t, tax)
	assert.Equal(t, entity.SeverityWarning, tax.Severity)

	// Findings appear in fixed pass order: required fields, date, line
	// items, calculations.
	assert.Equal(t, "invoiceNumber", report.Errors[0].Field)
	assert.Equal(t, "customerName", report.Errors[1].Field)
	assert.Equal(t, "lineItems[1].description", report.Errors[2].Field)
	assert.Equal(t, "lineItems[1].quantity", report.Errors[3].Field)
	assert.Equal(t, "subtotal", report.Errors[4].Field)
}

func findByField(errors []entity.ValidationError, field string) *entity.ValidationError {
	for i := range errors {
		if errors[i].Field == field {
			return &errors[i]
		}
	}
	return nil
}
