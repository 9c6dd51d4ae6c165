package card

import (
	"testing"

	"github.com/stretchr/testify/require"

	"finitefield.org/shoe-catalog/internal/catalog/theme"
)

func TestPresent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant Variant
		want    Presentation
	}{
		{
			variant: VariantOnSale,
			want: Presentation{
				PriceStruck:      true,
				SalePriceVisible: true,
				BadgeVisible:     true,
				BadgeText:        "Sale",
				BadgeColor:       theme.Colors.Primary,
			},
		},
		{
			variant: VariantNewRelease,
			want: Presentation{
				BadgeText:  "Just Released!",
				BadgeColor: theme.Colors.Secondary,
			},
		},
		{
			variant: VariantDefault,
			want: Presentation{
				BadgeVisible: true,
				BadgeText:    "Just Released!",
				BadgeColor:   theme.Colors.Secondary,
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.variant), func(t *testing.T) {
			t.Parallel()
			got := Present(tc.variant)
			require.Equal(t, tc.want, got)

			onSale := tc.variant == VariantOnSale
			require.Equal(t, onSale, got.PriceStruck, "strike-through iff on sale")
			require.Equal(t, onSale, got.SalePriceVisible, "sale price iff on sale")
			require.Equal(t, tc.variant != VariantNewRelease, got.BadgeVisible, "badge hidden only for new releases")
		})
	}
}

func TestPresentationCSSValues(t *testing.T) {
	t.Parallel()

	sale := Present(VariantOnSale)
	require.Equal(t, "line-through", sale.PriceTextDecoration())
	require.Equal(t, "visible", sale.SalePriceVisibility())
	require.Equal(t, "visible", sale.BadgeVisibility())

	fresh := Present(VariantNewRelease)
	require.Equal(t, "none", fresh.PriceTextDecoration())
	require.Equal(t, "hidden", fresh.SalePriceVisibility())
	require.Equal(t, "hidden", fresh.BadgeVisibility())
}
