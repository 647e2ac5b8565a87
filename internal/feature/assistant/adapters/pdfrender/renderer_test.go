package pdfrender

import (
	"bytes"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := New()

	data, err := r.Render("Cover Letter", "First paragraph.\nSecond paragraph.")

	require.NoError(t, err)
	require.NotEmpty(t, data)

	// A PDF file starts with the %PDF- marker
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output does not start with %%PDF-")

	// The output must be parseable as a PDF with at least one page
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, reader.NumPage(), 1)
}

func TestRenderer_Render_SkipsBlankLines(t *testing.T) {
	r := New()

	withBlanks, err := r.Render("T", "one\n\n   \ntwo")
	require.NoError(t, err)

	withoutBlanks, err := r.Render("T", "one\ntwo")
	require.NoError(t, err)

	// Blank lines add no paragraphs, so the layouts match in size closely.
	// Creation timestamps differ between the two documents, so the bytes
	// themselves are not compared.
	assert.InDelta(t, len(withoutBlanks), len(withBlanks), 64)
}

func TestRenderer_Render_EmptyBody(t *testing.T) {
	r := New()

	data, err := r.Render("Title Only", "")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
