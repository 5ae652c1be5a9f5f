package docx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/docx-latex-converter/omml"
)

const documentHeader = `<w:document` +
	` xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
	` xmlns:m="http://schemas.openxmlformats.org/officeDocument/2006/math"` +
	` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
	` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">`

const relsXML = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
	<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com"/>
	<Relationship Id="rId5" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>
</Relationships>`

// buildDocx assembles an in-memory .docx archive around the given body XML.
// Extra entries (relationships, media) are added verbatim.
func buildDocx(t *testing.T, body string, extra map[string]string) *zip.Reader {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := map[string]string{
		"word/document.xml": documentHeader + "<w:body>" + body + "</w:body></w:document>",
	}
	for name, content := range extra {
		files[name] = content
	}

	for name, content := range files {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	return zr
}

func newTestConverter(t *testing.T, cfg Config) *Converter {
	t.Helper()

	if cfg.ImagesDir == "" {
		cfg.ImagesDir = filepath.Join(t.TempDir(), "images")
	}

	conv, err := New(cfg)
	require.NoError(t, err)

	return conv
}

func convertBody(t *testing.T, body string) *Result {
	t.Helper()

	conv := newTestConverter(t, Config{})
	result, err := conv.Convert(buildDocx(t, body, nil))
	require.NoError(t, err)

	return result
}

func para(inner string) string {
	return `<w:p>` + inner + `</w:p>`
}

func styledPara(style, inner string) string {
	return `<w:p><w:pPr><w:pStyle w:val="` + style + `"/></w:pPr>` + inner + `</w:p>`
}

func textRun(s string) string {
	return `<w:r><w:t>` + s + `</w:t></w:r>`
}

func mathRun(s string) string {
	return `<m:r><m:t>` + s + `</m:t></m:r>`
}

func TestConvertDocumentStructure(t *testing.T) {
	result := convertBody(t, para(textRun("Hello, world.")))

	assert.True(t, strings.HasPrefix(result.LaTeX, `\documentclass`))
	assert.Contains(t, result.LaTeX, `\usepackage{amsmath}`)
	assert.Contains(t, result.LaTeX, "\\begin{document}\n\nHello, world.\n\n\\end{document}\n")
	assert.Empty(t, result.Images)
	assert.Empty(t, result.Warnings)
}

func TestConvertHeadings(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{style: "Heading1", want: `\section{Intro}`},
		{style: "Heading2", want: `\subsection{Intro}`},
		{style: "Heading3", want: `\subsubsection{Intro}`},
		{style: "Heading4", want: `\paragraph{Intro}`},
		{style: "Heading7", want: `\subparagraph{Intro}`},
		{style: "Title", want: `\title{Intro}`},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			result := convertBody(t, styledPara(tt.style, textRun("Intro")))
			assert.Contains(t, result.LaTeX, tt.want)
		})
	}
}

func TestConvertRunFormatting(t *testing.T) {
	tests := []struct {
		name string
		rPr  string
		want string
	}{
		{name: "bold", rPr: `<w:b/>`, want: `\textbf{x}`},
		{name: "italic", rPr: `<w:i/>`, want: `\textit{x}`},
		{name: "underline", rPr: `<w:u w:val="single"/>`, want: `\underline{x}`},
		{name: "strikethrough", rPr: `<w:strike/>`, want: `\sout{x}`},
		{
			name: "all flags nest bold outermost",
			rPr:  `<w:b/><w:i/><w:u w:val="single"/><w:strike/>`,
			want: `\textbf{\textit{\underline{\sout{x}}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := para(`<w:r><w:rPr>` + tt.rPr + `</w:rPr><w:t>x</w:t></w:r>`)
			result := convertBody(t, body)
			assert.Contains(t, result.LaTeX, tt.want)
		})
	}
}

func TestConvertTextEscaping(t *testing.T) {
	// The XML entity decodes to a literal ampersand in the run text.
	result := convertBody(t, para(textRun("100% &amp; more")))

	assert.Contains(t, result.LaTeX, `100\% \& more`)
}

func TestConvertInlineMath(t *testing.T) {
	body := para(
		textRun("Consider ") +
			`<m:oMath><m:f><m:num>` + mathRun("1") + `</m:num><m:den>` + mathRun("2") + `</m:den></m:f></m:oMath>` +
			textRun(" here."),
	)
	result := convertBody(t, body)

	assert.Contains(t, result.LaTeX, `Consider $\frac{1}{2}$ here.`)
}

func TestConvertDisplayMath(t *testing.T) {
	body := para(
		`<m:oMathPara><m:oMath><m:sSup><m:e>` + mathRun("x") + `</m:e><m:sup>` + mathRun("2") + `</m:sup></m:sSup></m:oMath></m:oMathPara>`,
	)
	result := convertBody(t, body)

	assert.Contains(t, result.LaTeX, "\n\\[x^{2}\\]\n")
}

func TestConvertMathInsideRun(t *testing.T) {
	body := para(`<w:r><m:oMath>` + mathRun("y") + `</m:oMath></w:r>`)
	result := convertBody(t, body)

	assert.Contains(t, result.LaTeX, `$y$`)
}

func TestConvertHyperlink(t *testing.T) {
	body := para(`<w:hyperlink r:id="rId1">` + textRun("link text") + `</w:hyperlink>`)

	conv := newTestConverter(t, Config{})
	result, err := conv.Convert(buildDocx(t, body, map[string]string{
		"word/_rels/document.xml.rels": relsXML,
	}))
	require.NoError(t, err)

	assert.Contains(t, result.LaTeX, `\href{https://example.com}{link text}`)
}

func TestConvertHyperlinkWithoutRelationship(t *testing.T) {
	body := para(`<w:hyperlink r:id="rId9">` + textRun("orphan") + `</w:hyperlink>`)
	result := convertBody(t, body)

	assert.Contains(t, result.LaTeX, "orphan")
	assert.NotContains(t, result.LaTeX, `\href`)
}

func listItem(numID int, text string) string {
	return `<w:p><w:pPr><w:numPr><w:numId w:val="` + strconv.Itoa(numID) + `"/></w:numPr></w:pPr>` +
		textRun(text) + `</w:p>`
}

func TestConvertLists(t *testing.T) {
	t.Run("itemize", func(t *testing.T) {
		result := convertBody(t, listItem(2, "first")+listItem(2, "second"))

		assert.Contains(t, result.LaTeX,
			"\\begin{itemize}\n    \\item first\n    \\item second\n\\end{itemize}")
	})

	t.Run("enumerate", func(t *testing.T) {
		result := convertBody(t, listItem(1, "first"))

		assert.Contains(t, result.LaTeX, "\\begin{enumerate}\n    \\item first\n\\end{enumerate}")
	})

	t.Run("list closes before plain paragraph", func(t *testing.T) {
		result := convertBody(t, listItem(2, "item")+para(textRun("after")))

		endIdx := strings.Index(result.LaTeX, `\end{itemize}`)
		afterIdx := strings.Index(result.LaTeX, "after")
		require.GreaterOrEqual(t, endIdx, 0)
		require.GreaterOrEqual(t, afterIdx, 0)
		assert.Less(t, endIdx, afterIdx)
	})
}

func TestConvertTable(t *testing.T) {
	body := `<w:tbl>` +
		`<w:tr><w:tc>` + para(textRun("a")) + `</w:tc><w:tc>` + para(textRun("b")) + `</w:tc></w:tr>` +
		`<w:tr><w:tc>` + para(textRun("c")) + `</w:tc><w:tc>` + para(textRun("d")) + `</w:tc></w:tr>` +
		`</w:tbl>`
	result := convertBody(t, body)

	assert.Contains(t, result.LaTeX, `\begin{tabular}{|c|c|}`)
	assert.Contains(t, result.LaTeX, `a & b \\`)
	assert.Contains(t, result.LaTeX, `c & d \\`)
	assert.Contains(t, result.LaTeX, `\caption{Table}`)
}

func TestConvertImages(t *testing.T) {
	imagesDir := filepath.Join(t.TempDir(), "images")
	body := para(`<w:r><w:drawing><a:blip r:embed="rId5"/></w:drawing></w:r>`)

	conv := newTestConverter(t, Config{ImagesDir: imagesDir})
	result, err := conv.Convert(buildDocx(t, body, map[string]string{
		"word/_rels/document.xml.rels": relsXML,
		"word/media/image1.png":        "not really a png",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"image1.png"}, result.Images)
	assert.Contains(t, result.LaTeX, `\includegraphics[width=0.8\textwidth]{`+imagesDir+`/image1.png}`)

	data, err := os.ReadFile(filepath.Join(imagesDir, "image1.png"))
	require.NoError(t, err)
	assert.Equal(t, "not really a png", string(data))
}

func TestConvertDrawingWithoutImage(t *testing.T) {
	body := para(`<w:r><w:drawing/></w:r>` + textRun("text"))
	result := convertBody(t, body)

	assert.NotContains(t, result.LaTeX, `\includegraphics`)
	assert.Contains(t, result.LaTeX, "text")
}

func TestConvertAggregatesMathWarnings(t *testing.T) {
	body := para(`<m:oMath><m:borderBox>`+mathRun("x")+`</m:borderBox></m:oMath>`) +
		para(`<m:oMath><m:f><m:num>`+mathRun("1")+`</m:num></m:f></m:oMath>`)
	result := convertBody(t, body)

	require.Len(t, result.Warnings, 2)
	assert.Equal(t, omml.WarningUnknownElement, result.Warnings[0].Type)
	assert.Equal(t, omml.WarningMissingChild, result.Warnings[1].Type)
}

func TestConvertStrictMathPolicy(t *testing.T) {
	body := para(`<m:oMath><m:borderBox>` + mathRun("x") + `</m:borderBox></m:oMath>`)

	conv := newTestConverter(t, Config{Math: omml.Config{UnknownElements: omml.UnknownError}})
	_, err := conv.Convert(buildDocx(t, body, nil))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "borderBox")
}

func TestConvertRejectsNonWordArchive(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("mimetype")
	require.NoError(t, err)
	_, err = f.Write([]byte("application/epub+zip"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	conv := newTestConverter(t, Config{})
	_, err = conv.Convert(zr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a Word document")
}

func TestConvertFileMissing(t *testing.T) {
	conv := newTestConverter(t, Config{})

	_, err := conv.ConvertFile(filepath.Join(t.TempDir(), "absent.docx"))
	require.Error(t, err)
}

func TestNewRejectsInvalidMathConfig(t *testing.T) {
	_, err := New(Config{Math: omml.Config{UnknownElements: "bogus"}})
	require.Error(t, err)
}
