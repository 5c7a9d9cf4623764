// Package billing holds the pure invoice math and the display
// formatting used by the renderer and the invoice service.
package billing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrTaxRateOutOfRange = errors.New("tax rate must be between 0 and 100")
	ErrNegativeDiscount  = errors.New("discount cannot be negative")
	ErrInvalidQuantity   = errors.New("item quantity must be a positive integer")
	ErrNegativeUnitPrice = errors.New("item unit price cannot be negative")
)

// LineInput is one billable row as submitted by the caller. Amounts
// are always derived from quantity × unit price, never trusted.
type LineInput struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Totals is the result of ComputeTotals. Total may be negative when
// the discount exceeds subtotal + tax; it is surfaced as-is.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// LineAmount returns quantity × unitPrice for a single row.
func LineAmount(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// ComputeTotals sums the line amounts in input order, applies the tax
// rate (a percentage) and subtracts the flat discount. No rounding is
// applied here; callers format to 2 places at presentation time only.
//
// Inputs outside their domain are rejected: tax rates outside [0,100],
// negative discounts, non-positive quantities and negative unit prices.
func ComputeTotals(items []LineInput, taxRatePercent, discount decimal.Decimal) (Totals, error) {
	if taxRatePercent.IsNegative() || taxRatePercent.GreaterThan(hundred) {
		return Totals{}, ErrTaxRateOutOfRange
	}
	if discount.IsNegative() {
		return Totals{}, ErrNegativeDiscount
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return Totals{}, ErrInvalidQuantity
		}
		if item.UnitPrice.IsNegative() {
			return Totals{}, ErrNegativeUnitPrice
		}
		subtotal = subtotal.Add(LineAmount(item.Quantity, item.UnitPrice))
	}

	// Shift(-2) divides by 100 exactly, avoiding division rounding.
	taxAmount := subtotal.Mul(taxRatePercent.Shift(-2))
	total := subtotal.Add(taxAmount).Sub(discount)

	return Totals{Subtotal: subtotal, TaxAmount: taxAmount, Total: total}, nil
}
