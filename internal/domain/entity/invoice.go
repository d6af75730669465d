package entity

// LineItem represents a single billable entry on an invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	// LineTotal is supplied by the caller for display only. The validation
	// engine always recomputes quantity × unit price and never reads it.
	LineTotal float64 `json:"lineTotal"`
}

// CalculateTotal returns the line total derived from quantity and unit price.
func (li LineItem) CalculateTotal() float64 {
	return li.Quantity * li.UnitPrice
}

// Invoice represents one billing document submitted for validation.
// Records are built by the caller (see the invoice package for boundary
// normalization) and are treated as read-only by the validation engine.
type Invoice struct {
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"`
	VendorName    string `json:"vendorName"`
	CustomerName  string `json:"customerName"`

	LineItems []LineItem `json:"lineItems"`

	Subtotal  float64 `json:"subtotal"`
	TaxRate   float64 `json:"taxRate"`
	TaxAmount float64 `json:"taxAmount"`
	Total     float64 `json:"total"`

	// Advisory fields, never validated.
	Currency     string `json:"currency"`
	PaymentTerms string `json:"paymentTerms"`
}

// InvoiceTotals holds the amounts derived from line items and tax rate.
type InvoiceTotals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"taxAmount"`
	Total     float64 `json:"total"`
}
