package shoes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Shoes []seedListing `yaml:"shoes"`
}

type seedListing struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	ImageSrc    string `yaml:"image_src"`
	Price       int64  `yaml:"price"`
	SalePrice   *int64 `yaml:"sale_price"`
	ReleaseDate string `yaml:"release_date"`
	NumOfColors int    `yaml:"num_of_colors"`
	Description string `yaml:"description"`
}

var releaseDateLayouts = []string{time.RFC3339, "2006-01-02"}

// LoadFile reads a YAML seed catalog from path.
func LoadFile(path string) ([]Listing, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	listings, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", path, err)
	}
	return listings, nil
}

// Decode parses a YAML seed catalog. Slugs must be present, unique and usable
// as a single path segment without escaping.
func Decode(r io.Reader) ([]Listing, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file seedFile
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	seen := make(map[string]struct{}, len(file.Shoes))
	listings := make([]Listing, 0, len(file.Shoes))
	for i, entry := range file.Shoes {
		slug := strings.TrimSpace(entry.Slug)
		if slug == "" {
			return nil, fmt.Errorf("%w: entry %d has no slug", ErrInvalidListing, i)
		}
		if url.PathEscape(slug) != slug {
			return nil, fmt.Errorf("%w: slug %q is not a plain path segment", ErrInvalidListing, slug)
		}
		if _, dup := seen[slug]; dup {
			return nil, fmt.Errorf("%w: duplicate slug %q", ErrInvalidListing, slug)
		}
		seen[slug] = struct{}{}

		released, err := parseReleaseDate(entry.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidListing, slug, err)
		}

		listings = append(listings, Listing{
			Slug:        slug,
			Name:        entry.Name,
			ImageSrc:    entry.ImageSrc,
			Price:       entry.Price,
			SalePrice:   entry.SalePrice,
			ReleaseDate: released,
			NumOfColors: entry.NumOfColors,
			Description: entry.Description,
		})
	}
	return listings, nil
}

func parseReleaseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range releaseDateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable release_date %q", raw)
}
