// Package shoes builds the storefront catalog pages.
package shoes

import (
	"time"

	"finitefield.org/shoe-catalog/internal/catalog/card"
	"finitefield.org/shoe-catalog/internal/catalog/format"
	catalogshoes "finitefield.org/shoe-catalog/internal/catalog/shoes"
	"finitefield.org/shoe-catalog/internal/catalog/templates/components"
)

// CardOptions carries the settings needed to turn listings into cards.
type CardOptions struct {
	Formatter        *format.Formatter
	NewReleaseWindow time.Duration
	Now              time.Time
}

// IndexPageData is the catalog grid payload.
type IndexPageData struct {
	Title       string
	Sort        catalogshoes.Sort
	SortOptions []SortOption
	Cards       []components.ShoeCardProps
}

// SortOption is a link in the sort selector.
type SortOption struct {
	Label  string
	Href   string
	Active bool
}

// DetailPageData is the listing detail payload.
type DetailPageData struct {
	Title           string
	Card            components.ShoeCardProps
	ReleasedOn      string
	DescriptionHTML string
	BackURL         string
}

// CardPayload resolves the variant of a listing and formats it for rendering.
func CardPayload(listing catalogshoes.Listing, opts CardOptions) components.ShoeCardProps {
	variant := card.Resolve(listing.SalePrice, listing.ReleaseDate, opts.Now, opts.NewReleaseWindow)
	return components.ShoeCardProps{
		Slug:         listing.Slug,
		Name:         listing.Name,
		ImageSrc:     listing.ImageSrc,
		Price:        opts.Formatter.Amount(listing.Price),
		SalePrice:    opts.Formatter.Price(listing.SalePrice),
		ColorLabel:   format.Pluralize("Color", listing.NumOfColors),
		Variant:      variant,
		Presentation: card.Present(variant),
	}
}

// BuildIndexPageData prepares the catalog grid.
func BuildIndexPageData(listings []catalogshoes.Listing, sort catalogshoes.Sort, opts CardOptions) IndexPageData {
	cards := make([]components.ShoeCardProps, 0, len(listings))
	for _, listing := range listings {
		cards = append(cards, CardPayload(listing, opts))
	}
	return IndexPageData{
		Title:       "Shoes",
		Sort:        sort,
		SortOptions: sortOptions(sort),
		Cards:       cards,
	}
}

// BuildDetailPageData prepares the detail page. descriptionHTML must already
// be sanitised.
func BuildDetailPageData(listing catalogshoes.Listing, descriptionHTML string, opts CardOptions) DetailPageData {
	return DetailPageData{
		Title:           listing.Name,
		Card:            CardPayload(listing, opts),
		ReleasedOn:      opts.Formatter.Date(listing.ReleaseDate),
		DescriptionHTML: descriptionHTML,
		BackURL:         "/",
	}
}

func sortOptions(active catalogshoes.Sort) []SortOption {
	return []SortOption{
		{Label: "Newest Releases", Href: "/?sort=" + string(catalogshoes.SortNewest), Active: active == catalogshoes.SortNewest},
		{Label: "Price", Href: "/?sort=" + string(catalogshoes.SortPrice), Active: active == catalogshoes.SortPrice},
	}
}
