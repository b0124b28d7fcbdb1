// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/automarket/internal/model"
)

// Currency is the display currency for prices and balances.
const Currency = money.USD

// FormatMoney renders a balance such as "$1,234.50".
func FormatMoney(d decimal.Decimal) string {
	cents := d.Shift(2).Round(0)
	if cents.Abs().GreaterThan(maxCents) {
		// Beyond go-money's int64 cents; group the digits ourselves.
		fixed := d.Abs().StringFixed(2)
		sign := ""
		if d.IsNegative() {
			sign = "-"
		}
		return sign + "$" + humanize.BigComma(d.Abs().Truncate(0).BigInt()) + fixed[len(fixed)-3:]
	}
	return money.New(cents.IntPart(), Currency).Display()
}

// maxCents is the largest amount go-money can hold, in cents.
var maxCents = decimal.NewFromInt(math.MaxInt64)

// FormatPrice renders a whole-unit price such as "$242,000".
func FormatPrice(price int64) string {
	if price > math.MaxInt64/100 || price < math.MinInt64/100 {
		return "$" + humanize.Comma(price)
	}
	m := money.New(price*100, Currency).Display()
	return strings.TrimSuffix(m, ".00")
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatRating renders a 0-10 rating with one decimal.
func FormatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

// FormatCarNumber renders the 1-based number users type to pick a car.
func FormatCarNumber(index int) string {
	return fmt.Sprintf("%d", index+1)
}

// ParseMoney parses user input such as "25000", "$25,000" or "1234.5".
func ParseMoney(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer("$", "", ",", "", "_", "").Replace(strings.TrimSpace(s))
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not an amount", s)
	}
	return d.Round(2), nil
}

// CarRow renders a car as table cells: number, year, make, model, price and,
// with detail, the ratings and drive type.
func CarRow(index int, c model.Car, detail bool) []string {
	row := []string{
		FormatCarNumber(index),
		fmt.Sprintf("%d", c.Year),
		c.Manufacturer,
		c.Model,
		FormatPrice(c.Price),
	}
	if detail {
		row = append(row,
			FormatRating(c.Speed),
			FormatRating(c.Handling),
			FormatRating(c.Acceleration),
			FormatRating(c.Braking),
			string(c.DriveType),
		)
	}
	return row
}

// CarHeaders returns the column headers matching CarRow.
func CarHeaders(detail bool) []string {
	h := []string{"#", "Year", "Make", "Model", "Price"}
	if detail {
		h = append(h, "Spd", "Hdl", "Acc", "Brk", "Drive")
	}
	return h
}
