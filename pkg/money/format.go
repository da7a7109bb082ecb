package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders whole-unit amounts with locale digit grouping and a
// currency symbol, e.g. "Rp 3.500.000" or "-Rp 3.900.000".
type Formatter struct {
	Tag    language.Tag
	Symbol string
}

// Rupiah formats Indonesian Rupiah the way id-ID renders IDR.
var Rupiah = Formatter{Tag: language.Indonesian, Symbol: "Rp"}

// Format rounds the amount to a whole unit and renders it.
func (f Formatter) Format(d decimal.Decimal) string {
	n := RoundUnit(d).IntPart()
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	p := message.NewPrinter(f.Tag)
	return sign + f.Symbol + " " + p.Sprintf("%d", n)
}

// Millions renders an amount as whole millions with the Indonesian "jt" suffix,
// as used for chart axes.
func Millions(d decimal.Decimal) string {
	return d.Div(decimal.NewFromInt(1_000_000)).StringFixed(0) + "jt"
}
