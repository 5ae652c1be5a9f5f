package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rgonek/docx-latex-converter/internal/oxml"
)

// File permissions for extracted assets.
const (
	dirPermissions  = 0o750
	filePermissions = 0o644
)

const mediaPrefix = "word/media/"

// relationships mirrors word/_rels/document.xml.rels, which maps relationship
// ids to image and hyperlink targets.
type relationships struct {
	XMLName xml.Name `xml:"Relationships"`
	Items   []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// loadRelationships reads the document relationship table. Documents without
// one (no images, no hyperlinks) yield an empty map.
func loadRelationships(zr *zip.Reader) (map[string]string, error) {
	data, err := readArchiveFile(zr, "word/_rels/document.xml.rels")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	var rels relationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships: %w", err)
	}

	table := make(map[string]string, len(rels.Items))
	for _, rel := range rels.Items {
		if rel.ID != "" && rel.Target != "" {
			table[rel.ID] = rel.Target
		}
	}
	return table, nil
}

// extractImages copies embedded media files into the images directory and
// returns their file names. The directory is only created when the archive
// actually carries media.
func (c *Converter) extractImages(zr *zip.Reader) ([]string, error) {
	var names []string
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, mediaPrefix) || f.FileInfo().IsDir() {
			continue
		}

		if names == nil {
			if err := os.MkdirAll(c.config.ImagesDir, dirPermissions); err != nil {
				return nil, fmt.Errorf("failed to create images directory: %w", err)
			}
		}

		data, err := readArchiveFile(zr, f.Name)
		if err != nil {
			return nil, err
		}

		name := path.Base(f.Name)
		target := filepath.Join(c.config.ImagesDir, name)
		if err := os.WriteFile(target, data, filePermissions); err != nil {
			return nil, fmt.Errorf("failed to extract %s: %w", name, err)
		}
		names = append(names, name)
	}
	return names, nil
}

// convertDrawing resolves the drawing's image reference through the
// relationship table and emits a figure block. Drawings without a resolvable
// image convert to nothing.
func (d *document) convertDrawing(el *oxml.Element) string {
	blip := el.FindDeep("blip")
	if blip == nil {
		return ""
	}
	embed := blip.AttrOr("embed", "")
	target, ok := d.rels[embed]
	if embed == "" || !ok {
		return ""
	}

	name := path.Base(target)
	var sb strings.Builder
	sb.WriteString("\n\\begin{figure}[htbp]\n")
	sb.WriteString("    \\centering\n")
	sb.WriteString("    \\includegraphics[width=0.8\\textwidth]{" + d.config.ImagesDir + "/" + name + "}\n")
	sb.WriteString("    \\caption{Image}\n")
	sb.WriteString("\\end{figure}\n")
	return sb.String()
}
