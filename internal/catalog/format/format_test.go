package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		currency string
		lang     language.Tag
		minor    int64
		want     string
	}{
		{name: "usd cents", currency: "USD", minor: 5000, want: "$50.00"},
		{name: "usd grouping", currency: "usd", minor: 123450, want: "$1,234.50"},
		{name: "usd negative", currency: "USD", minor: -199, want: "-$1.99"},
		{name: "jpy whole units", currency: "JPY", minor: 12345, want: "¥12,345"},
		{name: "eur", currency: "EUR", minor: 7505, want: "€75.05"},
		{name: "unknown code", currency: "CHF", minor: 900, want: "CHF 900"},
		{name: "empty defaults to usd", currency: "", minor: 100, want: "$1.00"},
		{name: "usd under german locale", currency: "USD", lang: language.German, minor: 123450, want: "$1,234.50"},
		{name: "usd under french locale", currency: "USD", lang: language.French, minor: 123450, want: "$1,234.50"},
		{name: "jpy under german locale", currency: "JPY", lang: language.German, minor: 1234567, want: "¥1,234,567"},
		{name: "eur large amount", currency: "EUR", minor: 100000001, want: "€1,000,000.01"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			lang := tc.lang
			if lang == language.Und {
				lang = language.English
			}
			f := New(tc.currency, lang)
			require.Equal(t, tc.want, f.Amount(tc.minor))
		})
	}
}

func TestPriceToleratesAbsentAmount(t *testing.T) {
	t.Parallel()

	f := New("USD", language.English)
	require.NotPanics(t, func() {
		require.Equal(t, "", f.Price(nil))
	})

	amount := int64(7500)
	require.Equal(t, "$75.00", f.Price(&amount))
}

func TestPluralize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1 Color", Pluralize("Color", 1))
	require.Equal(t, "3 Colors", Pluralize("Color", 3))
	require.Equal(t, "0 Colors", Pluralize("Color", 0))
	require.Equal(t, "-1 Color", Pluralize("Color", -1))
}

func TestDate(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "Mar 9, 2024", New("USD", language.English).Date(ts))
	require.Equal(t, "2024-03-09", New("JPY", language.Japanese).Date(ts))
}
