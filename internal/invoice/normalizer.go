// Package invoice converts raw, partially-populated invoice payloads into
// fully-populated domain records. Defaulting of absent fields happens here,
// at the system boundary, so the validation engine downstream can treat a
// blank field as a genuine required-field failure rather than a silently
// defaulted value.
package invoice

import (
	"github.com/garyjia/invoice-validation/internal/domain/entity"
)

// DefaultCurrency is applied when a payload carries no currency code.
const DefaultCurrency = "AUD"

// RawLineItem is one line item as submitted by a caller. Pointer fields
// distinguish absent values from explicit zeros.
type RawLineItem struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice"`
	LineTotal   *float64 `json:"lineTotal"`
}

// Raw is an invoice as submitted by a caller, before normalization.
type Raw struct {
	InvoiceNumber *string       `json:"invoiceNumber"`
	InvoiceDate   *string       `json:"invoiceDate"`
	VendorName    *string       `json:"vendorName"`
	CustomerName  *string       `json:"customerName"`
	LineItems     []RawLineItem `json:"lineItems"`
	Subtotal      *float64      `json:"subtotal"`
	TaxRate       *float64      `json:"taxRate"`
	TaxAmount     *float64      `json:"taxAmount"`
	Total         *float64      `json:"total"`
	Currency      *string       `json:"currency"`
	PaymentTerms  *string       `json:"paymentTerms"`
}

// Normalize maps a raw payload to a domain invoice. Absent text fields
// become empty strings, absent numeric fields become 0, and an absent
// currency becomes DefaultCurrency. The result is never nil.
func Normalize(raw Raw) *entity.Invoice {
	inv := &entity.Invoice{
		InvoiceNumber: stringOrEmpty(raw.InvoiceNumber),
		InvoiceDate:   stringOrEmpty(raw.InvoiceDate),
		VendorName:    stringOrEmpty(raw.VendorName),
		CustomerName:  stringOrEmpty(raw.CustomerName),
		Subtotal:      floatOrZero(raw.Subtotal),
		TaxRate:       floatOrZero(raw.TaxRate),
		TaxAmount:     floatOrZero(raw.TaxAmount),
		Total:         floatOrZero(raw.Total),
		Currency:      DefaultCurrency,
		PaymentTerms:  stringOrEmpty(raw.PaymentTerms),
	}

	if raw.Currency != nil && *raw.Currency != "" {
		inv.Currency = *raw.Currency
	}

	if len(raw.LineItems) > 0 {
		inv.LineItems = make([]entity.LineItem, 0, len(raw.LineItems))
		for _, item := range raw.LineItems {
			inv.LineItems = append(inv.LineItems, entity.LineItem{
				Description: stringOrEmpty(item.Description),
				Quantity:    floatOrZero(item.Quantity),
				UnitPrice:   floatOrZero(item.UnitPrice),
				LineTotal:   floatOrZero(item.LineTotal),
			})
		}
	}

	return inv
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
