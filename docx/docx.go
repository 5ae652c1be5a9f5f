// Package docx converts Word documents to LaTeX. It walks the document body
// (paragraphs, headings, lists, tables, images, hyperlinks), hands embedded
// math markup to the omml package, and assembles a complete LaTeX document.
package docx

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/rgonek/docx-latex-converter/internal/oxml"
	"github.com/rgonek/docx-latex-converter/omml"
)

// Converter converts .docx archives to LaTeX documents.
type Converter struct {
	config Config
	math   *omml.Converter
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	config = config.applyDefaults()
	math, err := omml.New(config.Math)
	if err != nil {
		return nil, err
	}
	return &Converter{config: config, math: math}, nil
}

// Result holds the output of a document conversion.
type Result struct {
	// LaTeX is the complete document, preamble included.
	LaTeX string
	// Images lists the file names extracted into the images directory.
	Images []string
	// Warnings aggregates the non-fatal issues from every converted formula.
	Warnings []omml.Warning
}

// ConvertFile converts the .docx file at path.
func (c *Converter) ConvertFile(path string) (*Result, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer zr.Close()

	return c.Convert(&zr.Reader)
}

// Convert converts an already-opened .docx archive.
func (c *Converter) Convert(zr *zip.Reader) (*Result, error) {
	data, err := readArchiveFile(zr, "word/document.xml")
	if err != nil {
		return nil, fmt.Errorf("not a Word document: %w", err)
	}

	root, err := oxml.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document body: %w", err)
	}

	rels, err := loadRelationships(zr)
	if err != nil {
		return nil, err
	}

	images, err := c.extractImages(zr)
	if err != nil {
		return nil, err
	}

	d := &document{config: c.config, math: c.math, rels: rels}
	content, err := d.convertBody(root.Find("body"))
	if err != nil {
		return nil, err
	}

	return &Result{
		LaTeX:    assembleDocument(content),
		Images:   images,
		Warnings: d.warnings,
	}, nil
}

// document carries per-conversion state: the relationship table for resolving
// image and hyperlink targets, and the accumulated formula warnings.
type document struct {
	config   Config
	math     *omml.Converter
	rels     map[string]string
	warnings []omml.Warning
}

func readArchiveFile(zr *zip.Reader, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	defer f.Close()

	return io.ReadAll(f)
}

// assembleDocument wraps the converted body in the fixed preamble.
func assembleDocument(content string) string {
	return documentPreamble + "\\begin{document}\n\n" + content + "\n\\end{document}\n"
}
