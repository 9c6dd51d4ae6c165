package card

import "finitefield.org/shoe-catalog/internal/catalog/theme"

const (
	badgeTextSale        = "Sale"
	badgeTextJustRelease = "Just Released!"
)

// Presentation is the set of visual attributes a variant maps to.
type Presentation struct {
	PriceStruck      bool
	SalePriceVisible bool
	BadgeVisible     bool
	BadgeText        string
	BadgeColor       theme.Color
}

// Present maps a variant to its presentation attributes.
//
// The badge is hidden for new releases while the default variant shows the
// "Just Released!" label.
func Present(v Variant) Presentation {
	switch v {
	case VariantOnSale:
		return Presentation{
			PriceStruck:      true,
			SalePriceVisible: true,
			BadgeVisible:     true,
			BadgeText:        badgeTextSale,
			BadgeColor:       theme.Colors.Primary,
		}
	case VariantNewRelease:
		return Presentation{
			BadgeText:  badgeTextJustRelease,
			BadgeColor: theme.Colors.Secondary,
		}
	default:
		return Presentation{
			BadgeVisible: true,
			BadgeText:    badgeTextJustRelease,
			BadgeColor:   theme.Colors.Secondary,
		}
	}
}

// PriceTextDecoration returns the CSS text-decoration for the regular price.
func (p Presentation) PriceTextDecoration() string {
	if p.PriceStruck {
		return "line-through"
	}
	return "none"
}

// SalePriceVisibility returns the CSS visibility for the sale price.
func (p Presentation) SalePriceVisibility() string {
	return visibility(p.SalePriceVisible)
}

// BadgeVisibility returns the CSS visibility for the badge.
func (p Presentation) BadgeVisibility() string {
	return visibility(p.BadgeVisible)
}

func visibility(visible bool) string {
	if visible {
		return "visible"
	}
	return "hidden"
}
