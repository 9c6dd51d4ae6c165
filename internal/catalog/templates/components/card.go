// Package components holds the reusable storefront building blocks.
package components

import (
	"strconv"

	"finitefield.org/shoe-catalog/internal/catalog/card"
)

// ShoeCardProps is the fully formatted payload for a single card.
type ShoeCardProps struct {
	Slug         string
	Name         string
	ImageSrc     string
	Price        string
	SalePrice    string
	ColorLabel   string
	Variant      card.Variant
	Presentation card.Presentation
}

func priceStyle(p card.Presentation) string {
	return "text-decoration:" + p.PriceTextDecoration()
}

func salePriceStyle(p card.Presentation) string {
	return "visibility:" + p.SalePriceVisibility()
}

func flagStyle(p card.Presentation) string {
	return "visibility:" + p.BadgeVisibility() + ";background-color:" + string(p.BadgeColor)
}

func spacerStyle(size int) string {
	px := strconv.Itoa(size) + "px"
	return "display:block;min-width:" + px + ";min-height:" + px
}
