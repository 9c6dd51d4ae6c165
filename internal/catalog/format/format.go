// Package format renders prices, counts and dates for catalog pages.
package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "USD"

// Formatter formats amounts given in minor units for a single currency.
type Formatter struct {
	currency string
	lang     language.Tag
	printer  *message.Printer
}

// New returns a Formatter for the ISO currency code. Unknown codes are
// rendered with the code as prefix. lang only affects dates: amounts always
// use the separators of the currency's home locale so grouping and decimal
// marks never mix.
func New(currency string, lang language.Tag) *Formatter {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Formatter{
		currency: currency,
		lang:     lang,
		printer:  message.NewPrinter(currencyLocale(currency)),
	}
}

// Currency returns the configured ISO code.
func (f *Formatter) Currency() string { return f.currency }

// Price formats an optional amount. A nil amount yields an empty string.
func (f *Formatter) Price(amount *int64) string {
	if amount == nil {
		return ""
	}
	return f.Amount(*amount)
}

// Amount formats minor units, e.g. Amount(123450) => "$1,234.50" for USD.
func (f *Formatter) Amount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	switch f.currency {
	case "JPY":
		return sign + "¥" + f.printer.Sprint(number.Decimal(minor))
	case "USD", "EUR", "GBP":
		value := f.printer.Sprint(number.Decimal(float64(minor)/100, number.Scale(2)))
		return sign + currencySymbol(f.currency) + value
	default:
		return fmt.Sprintf("%s%s %s", sign, f.currency, f.printer.Sprint(number.Decimal(minor)))
	}
}

// currencyLocale is the locale whose number separators a currency is shown with.
func currencyLocale(code string) language.Tag {
	switch code {
	case "JPY":
		return language.Japanese
	case "GBP":
		return language.BritishEnglish
	default:
		return language.AmericanEnglish
	}
}

func currencySymbol(code string) string {
	switch code {
	case "USD":
		return "$"
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	default:
		return code + " "
	}
}

// Pluralize prefixes word with count, adding an "s" when English plural
// rules select the plural form: Pluralize("Color", 1) => "1 Color".
func Pluralize(word string, count int) string {
	n := count
	if n < 0 {
		n = -n
	}
	if plural.Cardinal.MatchPlural(language.English, n, 0, 0, 0, 0) == plural.One {
		return fmt.Sprintf("%d %s", count, word)
	}
	return fmt.Sprintf("%d %ss", count, word)
}

// Date formats t in a locale-friendly short form.
func (f *Formatter) Date(t time.Time) string {
	base, _ := f.lang.Base()
	switch base.String() {
	case "ja":
		return t.Format("2006-01-02")
	default:
		return t.Format("Jan 2, 2006")
	}
}
