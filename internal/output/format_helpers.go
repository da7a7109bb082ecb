package output

import (
	"strconv"

	"github.com/rpgo/living-cost-simulator/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a whole-Rupiah amount with Indonesian digit grouping.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.Rupiah.Format(amount) }

// FormatPercentage formats a decimal as a percentage with 1 decimal.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }

// FormatSigned prefixes non-negative amounts with "+" so balances read as deltas.
func FormatSigned(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return FormatCurrency(amount)
	}
	return "+" + FormatCurrency(amount)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
