// Package billing computes order totals. It is pure: price resolution and
// persistence happen elsewhere, inside the order transaction.
package billing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate applies when the caller does not supply one.
var DefaultTaxRate = decimal.NewFromFloat(0.09)

var (
	ErrNegativeDiscount     = errors.New("discount amount cannot be negative")
	ErrDiscountExceedsTotal = errors.New("discount exceeds order total")
	ErrNegativeTaxRate      = errors.New("tax rate cannot be negative")
)

// Line is a resolved order line: the menu item exists and its current price
// has been snapshotted.
type Line struct {
	MenuItemID   uint
	Name         string
	Quantity     int
	UnitPrice    decimal.Decimal
	SpecialNotes string
}

// Subtotal is quantity times the snapshotted unit price.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Final    decimal.Decimal
}

// ComputeTotals sums resolved lines, applies the tax rate and discount, and
// rounds half-up to 2 decimals at each total, not per line multiplication.
// A discount larger than subtotal plus tax is rejected rather than clamped,
// so a final total can never go negative.
func ComputeTotals(lines []Line, taxRate, discount decimal.Decimal) (Totals, error) {
	if taxRate.IsNegative() {
		return Totals{}, ErrNegativeTaxRate
	}
	if discount.IsNegative() {
		return Totals{}, ErrNegativeDiscount
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Subtotal())
	}
	subtotal = subtotal.Round(2)

	tax := subtotal.Mul(taxRate).Round(2)
	discount = discount.Round(2)

	if discount.GreaterThan(subtotal.Add(tax)) {
		return Totals{}, ErrDiscountExceedsTotal
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Final:    subtotal.Add(tax).Sub(discount),
	}, nil
}
