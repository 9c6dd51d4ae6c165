// Package shoes provides the catalog listings rendered by the storefront.
package shoes

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrNotFound indicates no listing exists for the requested slug.
	ErrNotFound = errors.New("shoe listing not found")
	// ErrInvalidListing indicates a seed entry could not be turned into a listing.
	ErrInvalidListing = errors.New("invalid shoe listing")
)

// Service exposes read access to catalog listings.
type Service interface {
	// List returns all listings in the requested order.
	List(ctx context.Context, sort Sort) ([]Listing, error)
	// Get returns the listing identified by slug.
	Get(ctx context.Context, slug string) (Listing, error)
}

// Listing is a single shoe shown in the catalog.
type Listing struct {
	Slug        string
	Name        string
	ImageSrc    string
	Price       int64
	SalePrice   *int64
	ReleaseDate time.Time
	NumOfColors int
	Description string
}

// EffectivePrice returns the sale price when present, otherwise the price.
func (l Listing) EffectivePrice() int64 {
	if l.SalePrice != nil {
		return *l.SalePrice
	}
	return l.Price
}

// Sort selects the listing order.
type Sort string

const (
	// SortNewest orders by release date, most recent first.
	SortNewest Sort = "newest"
	// SortPrice orders by effective price, cheapest first.
	SortPrice Sort = "price"
)

// ParseSort maps a query value to a Sort, defaulting to SortNewest.
func ParseSort(raw string) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(raw))) {
	case SortPrice:
		return SortPrice
	default:
		return SortNewest
	}
}

// DetailPath returns the storefront path of a listing's detail page.
func DetailPath(slug string) string {
	return "/shoe/" + url.PathEscape(slug)
}
