package powerform

import (
	"embed"
	"io/fs"

	"github.com/jamestiotio/maas/pkg/catalog"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed catalog/*.yaml
var embeddedCatalog embed.FS

// TemplatesFS exposes the embedded fieldset template bundle so callers can
// render power-parameter fragments out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// CatalogFS exposes the embedded power-type catalog.
func CatalogFS() fs.FS {
	sub, err := fs.Sub(embeddedCatalog, "catalog")
	if err != nil {
		// Should never happen, but fall back to the raw FS so the catalog
		// remains loadable.
		return embeddedCatalog
	}
	return sub
}

// DefaultCatalog loads the power types shipped with this package.
func DefaultCatalog() (*catalog.Catalog, error) {
	return catalog.LoadFS(CatalogFS())
}
