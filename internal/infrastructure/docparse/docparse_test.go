package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		data     []byte
		want     Format
	}{
		{name: "pdf extension", filename: "CV.PDF", want: FormatPDF},
		{name: "docx extension", filename: "cv.docx", want: FormatDOCX},
		{name: "txt extension", filename: "cv.txt", want: FormatPlain},
		{name: "sniffed pdf", filename: "upload", data: []byte("%PDF-1.7\n..."), want: FormatPDF},
		{name: "sniffed zip", filename: "upload", data: []byte("PK\x03\x04rest"), want: FormatDOCX},
		{name: "sniffed text", filename: "upload", data: []byte("Plain resume text"), want: FormatPlain},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DetectFormat(tc.filename, tc.data)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	_, err := DetectFormat("photo.png", []byte("\x89PNG\r\n\x1a\n0000"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractText_Plain(t *testing.T) {
	got, err := ExtractText("cv.txt", []byte("  Jane Doe \r\n\r\n  Python, SQL  \n"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nPython, SQL", got)
}

func TestExtractText_InvalidPDF(t *testing.T) {
	_, err := ExtractText("cv.pdf", []byte("not really a pdf"))
	assert.Error(t, err)
}

func TestExtractText_InvalidDOCX(t *testing.T) {
	_, err := ExtractText("cv.docx", []byte("not a zip"))
	assert.Error(t, err)
}

func TestDocxPlainText(t *testing.T) {
	xml := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Experience</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>R&amp;D at Acme</w:t><w:br/><w:t>Python</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got := CleanText(docxPlainText(xml))
	assert.Equal(t, "Experience\nR&D at Acme\nPython", got)
}
