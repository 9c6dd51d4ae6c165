// Package layout provides the storefront page shell.
package layout

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"finitefield.org/shoe-catalog/internal/catalog/theme"
)

const siteName = "Sole Catalog"

// StylesheetPath is the embedded stylesheet served by the HTTP server.
const StylesheetPath = "/public/static/catalog.css"

// PageTitle appends the site name to a page title.
func PageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return siteName
	}
	return title + " | " + siteName
}

// themeVariables writes the design tokens as a <style> block.
func themeVariables() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<style data-theme>`+theme.RootCSS()+`</style>`)
		return err
	})
}
