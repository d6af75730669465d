// Package validation contains the invoice validation engine and its
// supporting arithmetic and calendar rule logic. Everything in this package
// is pure computation: no I/O, no shared state, safe for concurrent use.
package validation

import (
	"math"

	"github.com/garyjia/invoice-validation/internal/domain/entity"
)

// DefaultTolerance is the absolute difference below which two currency
// amounts are considered equal.
const DefaultTolerance = 0.01

// CalculateSubtotal returns the raw, unrounded sum of quantity × unit price
// over all line items, in input order. Nil or empty input yields 0.
func CalculateSubtotal(items []entity.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Quantity * item.UnitPrice
	}
	return sum
}

// CalculateTax returns the tax amount for a subtotal at the given rate.
// The rate is a percentage, e.g. 10 for 10%.
func CalculateTax(subtotal, taxRate float64) float64 {
	return subtotal * (taxRate / 100)
}

// CalculateTotal returns subtotal plus tax.
func CalculateTotal(subtotal, taxAmount float64) float64 {
	return subtotal + taxAmount
}

// CalculateInvoiceTotals derives all invoice amounts from line items and a
// tax rate. Each output is independently rounded to two decimals.
func CalculateInvoiceTotals(items []entity.LineItem, taxRate float64) entity.InvoiceTotals {
	subtotal := CalculateSubtotal(items)
	taxAmount := CalculateTax(subtotal, taxRate)
	total := CalculateTotal(subtotal, taxAmount)

	return entity.InvoiceTotals{
		Subtotal:  RoundToTwoDecimals(subtotal),
		TaxAmount: RoundToTwoDecimals(taxAmount),
		Total:     RoundToTwoDecimals(total),
	}
}

// RoundToTwoDecimals rounds a currency amount to two decimal places,
// half away from zero.
func RoundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// NumbersEqual reports whether two amounts are equal within an absolute
// tolerance.
func NumbersEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
