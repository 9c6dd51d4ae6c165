// Package card derives how a shoe listing is presented in the catalog grid.
package card

import "time"

// Variant is the display state of a card.
type Variant string

const (
	// VariantNewRelease marks shoes released within the new-release window.
	VariantNewRelease Variant = "new-release"
	// VariantOnSale marks shoes with a sale price.
	VariantOnSale Variant = "on-sale"
	// VariantDefault is used for everything else.
	VariantDefault Variant = "default"
)

// DefaultNewReleaseWindow is how long a shoe counts as newly released.
const DefaultNewReleaseWindow = 30 * 24 * time.Hour

// IsNewRelease reports whether releaseDate lies within window of now.
// Release dates in the future are treated as new.
func IsNewRelease(releaseDate, now time.Time, window time.Duration) bool {
	if window <= 0 {
		window = DefaultNewReleaseWindow
	}
	return now.Sub(releaseDate) < window
}

// Resolve picks the variant for a listing. A sale price wins over a recent
// release date.
func Resolve(salePrice *int64, releaseDate, now time.Time, window time.Duration) Variant {
	switch {
	case salePrice != nil:
		return VariantOnSale
	case IsNewRelease(releaseDate, now, window):
		return VariantNewRelease
	default:
		return VariantDefault
	}
}
