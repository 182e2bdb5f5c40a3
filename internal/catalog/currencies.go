// Package catalog is the static list of currencies offered by the pickers.
package catalog

import "strings"

// Currency is one selectable currency. Symbol may be empty.
type Currency struct {
	Code   string
	Name   string
	Flag   string
	Symbol string
}

// Label renders "🇺🇸 USD - US Dollar".
func (c Currency) Label() string {
	return c.Flag + " " + c.Code + " - " + c.Name
}

var currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Flag: "🇺🇸", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Flag: "🇪🇺", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Flag: "🇬🇧", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Flag: "🇯🇵", Symbol: "¥"},
	{Code: "AUD", Name: "Australian Dollar", Flag: "🇦🇺", Symbol: "A$"},
	{Code: "CAD", Name: "Canadian Dollar", Flag: "🇨🇦", Symbol: "CA$"},
	{Code: "CHF", Name: "Swiss Franc", Flag: "🇨🇭"},
	{Code: "CNY", Name: "Chinese Yuan", Flag: "🇨🇳", Symbol: "CN¥"},
	{Code: "SEK", Name: "Swedish Krona", Flag: "🇸🇪"},
	{Code: "NZD", Name: "New Zealand Dollar", Flag: "🇳🇿", Symbol: "NZ$"},
	{Code: "MXN", Name: "Mexican Peso", Flag: "🇲🇽", Symbol: "MX$"},
	{Code: "SGD", Name: "Singapore Dollar", Flag: "🇸🇬"},
	{Code: "HKD", Name: "Hong Kong Dollar", Flag: "🇭🇰", Symbol: "HK$"},
	{Code: "NOK", Name: "Norwegian Krone", Flag: "🇳🇴"},
	{Code: "KRW", Name: "South Korean Won", Flag: "🇰🇷", Symbol: "₩"},
	{Code: "TRY", Name: "Turkish Lira", Flag: "🇹🇷"},
	{Code: "RUB", Name: "Russian Ruble", Flag: "🇷🇺"},
	{Code: "INR", Name: "Indian Rupee", Flag: "🇮🇳", Symbol: "₹"},
	{Code: "BRL", Name: "Brazilian Real", Flag: "🇧🇷", Symbol: "R$"},
	{Code: "ZAR", Name: "South African Rand", Flag: "🇿🇦"},
	{Code: "DKK", Name: "Danish Krone", Flag: "🇩🇰"},
	{Code: "PLN", Name: "Polish Zloty", Flag: "🇵🇱"},
	{Code: "TWD", Name: "Taiwan Dollar", Flag: "🇹🇼", Symbol: "NT$"},
	{Code: "THB", Name: "Thai Baht", Flag: "🇹🇭"},
	{Code: "IDR", Name: "Indonesian Rupiah", Flag: "🇮🇩"},
	{Code: "HUF", Name: "Hungarian Forint", Flag: "🇭🇺"},
	{Code: "CZK", Name: "Czech Koruna", Flag: "🇨🇿"},
	{Code: "ILS", Name: "Israeli New Shekel", Flag: "🇮🇱", Symbol: "₪"},
	{Code: "CLP", Name: "Chilean Peso", Flag: "🇨🇱"},
	{Code: "PHP", Name: "Philippine Peso", Flag: "🇵🇭", Symbol: "₱"},
	{Code: "AED", Name: "UAE Dirham", Flag: "🇦🇪"},
	{Code: "COP", Name: "Colombian Peso", Flag: "🇨🇴"},
	{Code: "SAR", Name: "Saudi Riyal", Flag: "🇸🇦"},
	{Code: "MYR", Name: "Malaysian Ringgit", Flag: "🇲🇾"},
	{Code: "RON", Name: "Romanian Leu", Flag: "🇷🇴"},
	{Code: "VND", Name: "Vietnamese Dong", Flag: "🇻🇳", Symbol: "₫"},
	{Code: "EGP", Name: "Egyptian Pound", Flag: "🇪🇬"},
	{Code: "NGN", Name: "Nigerian Naira", Flag: "🇳🇬"},
}

// All returns the catalog in declared order. The slice is a copy.
func All() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// Lookup returns the first entry whose code matches, ignoring case.
func Lookup(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// Symbol returns the display symbol for code, or "" when the catalog has none.
func Symbol(code string) string {
	c, _ := Lookup(code)
	return c.Symbol
}

// Flag returns the flag glyph for code, or "" when code is not listed.
func Flag(code string) string {
	c, _ := Lookup(code)
	return c.Flag
}
