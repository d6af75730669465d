// Package render formats validation output for human consumption. It only
// consumes the engine's report; nothing here influences validation logic.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/garyjia/invoice-validation/internal/domain/entity"
	"github.com/garyjia/invoice-validation/internal/validation"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"AUD": "A$",
	"CAD": "C$",
}

// FormatCurrency renders an amount with its currency symbol. Unknown
// currency codes are used verbatim as the prefix.
func FormatCurrency(amount float64, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency
	}
	return symbol + FormatNumber(amount, 2)
}

// FormatNumber renders a number with thousands separators and a fixed
// number of decimal places.
func FormatNumber(value float64, decimals int) string {
	fixed := strconv.FormatFloat(value, 'f', decimals, 64)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart := fixed
	fracPart := ""
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart = fixed[:idx]
		fracPart = fixed[idx:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return sign + b.String() + fracPart
}

// FormatDate renders a date string as YYYY-MM-DD, or "Invalid Date" when it
// does not parse to a real calendar date.
func FormatDate(s string) string {
	date, ok := validation.ParseDate(s)
	if !ok {
		return "Invalid Date"
	}
	return date.Format("2006-01-02")
}

// FormatReport renders a validation report as a console-friendly block of
// text, one numbered entry per finding.
func FormatReport(report *entity.ValidationReport) string {
	if report.ErrorCount == 0 {
		return "✓ Validation passed - No errors found"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✗ Validation failed - %d error(s) found:\n\n", report.ErrorCount)

	for i, finding := range report.Errors {
		icon := "❌"
		if finding.Severity == entity.SeverityWarning {
			icon = "⚠️"
		}
		fmt.Fprintf(&b, "%d. %s [%s]\n", i+1, icon, finding.Field)
		fmt.Fprintf(&b, "   %s\n\n", finding.Message)
	}

	return b.String()
}
