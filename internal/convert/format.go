package convert

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jask/jaskfx/internal/catalog"
)

// Fallback is shown for empty or non-numeric values.
const Fallback = "0.00"

const (
	minFraction = 2
	maxFraction = 4
)

// Formatter renders currency amounts for one locale.
type Formatter struct {
	printer    *message.Printer
	decimalSep string
}

// NewFormatter builds a formatter for a BCP 47 tag such as "en-US".
// Unparseable tags fall back to American English.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	return &Formatter{printer: p, decimalSep: decimalSeparator(p)}
}

// FormatCurrency renders value with the currency symbol and two to four
// fractional digits, e.g. "$1,234.50". Values that are not finite numbers
// render as Fallback.
func (f *Formatter) FormatCurrency(value, code string) string {
	v, err := ParseAmount(value)
	if err != nil {
		return Fallback
	}
	d := decimal.NewFromFloat(v).Round(maxFraction)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	text := d.StringFixed(maxFraction)
	whole, frac, _ := strings.Cut(text, ".")
	frac = trimFraction(frac)

	grouped := whole
	if d.LessThan(decimal.New(1, 18)) {
		grouped = f.printer.Sprintf("%v", d.IntPart())
	}

	return sign + prefix(code) + grouped + f.decimalSep + frac
}

// FormatRate renders a rate for the "1 USD = 0.9123 EUR" line.
func (f *Formatter) FormatRate(rate float64) string {
	return Fixed(rate, Digits)
}

func prefix(code string) string {
	if sym := catalog.Symbol(code); sym != "" {
		return sym
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	return code + " "
}

func trimFraction(frac string) string {
	for len(frac) > minFraction && strings.HasSuffix(frac, "0") {
		frac = frac[:len(frac)-1]
	}
	return frac
}

// decimalSeparator probes the printer, since x/text does not expose the
// locale's symbols directly.
func decimalSeparator(p *message.Printer) string {
	s := p.Sprintf("%.1f", 1.5)
	first, n := utf8.DecodeRuneInString(s)
	last, m := utf8.DecodeLastRuneInString(s)
	if first != '1' || last != '5' || len(s) <= n+m {
		return "."
	}
	return s[n : len(s)-m]
}
