// Package theme holds the design-system tokens shared by catalog components.
package theme

import (
	"strconv"
	"strings"
)

// Color is a CSS color value.
type Color string

// GrayScale lists the gray steps used by the catalog.
type GrayScale struct {
	G700 Color
	G900 Color
}

// Palette lists the catalog colors.
type Palette struct {
	White     Color
	Gray      GrayScale
	Primary   Color
	Secondary Color
}

// FontWeights lists the numeric font weights.
type FontWeights struct {
	Normal int
	Medium int
}

// Colors is the catalog palette.
var Colors = Palette{
	White: "hsl(0deg 0% 100%)",
	Gray: GrayScale{
		G700: "hsl(220deg 5% 40%)",
		G900: "hsl(220deg 3% 20%)",
	},
	Primary:   "hsl(340deg 65% 47%)",
	Secondary: "hsl(240deg 60% 63%)",
}

// Weights is the catalog font weight scale.
var Weights = FontWeights{
	Normal: 500,
	Medium: 600,
}

// RootCSS renders the tokens as custom properties on :root. The stylesheet
// only refers to these variables.
func RootCSS() string {
	vars := []struct {
		name  string
		value string
	}{
		{"--color-white", string(Colors.White)},
		{"--color-gray-700", string(Colors.Gray.G700)},
		{"--color-gray-900", string(Colors.Gray.G900)},
		{"--color-primary", string(Colors.Primary)},
		{"--color-secondary", string(Colors.Secondary)},
		{"--weight-normal", strconv.Itoa(Weights.Normal)},
		{"--weight-medium", strconv.Itoa(Weights.Medium)},
	}

	var b strings.Builder
	b.WriteString(":root{")
	for _, v := range vars {
		b.WriteString(v.name)
		b.WriteByte(':')
		b.WriteString(v.value)
		b.WriteByte(';')
	}
	b.WriteString("}")
	return b.String()
}
