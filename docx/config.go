package docx

import (
	"github.com/rgonek/docx-latex-converter/omml"
)

// Config holds all document converter configuration options.
type Config struct {
	// ImagesDir is the directory embedded images are extracted into and the
	// path prefix used in \includegraphics references.
	ImagesDir string `json:"imagesDir,omitempty"`
	// Math configures the formula converter.
	Math omml.Config `json:"math,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.ImagesDir == "" {
		c.ImagesDir = "images"
	}
	return c
}
