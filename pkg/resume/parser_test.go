package resume

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParseDocx(t *testing.T) {
	body := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Senior Go developer</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Docker &amp; Kubernetes</w:t><w:tab/><w:t>AWS</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text, err := ParseText("cv.DOCX", buildDocx(t, body))
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go developer")
	assert.Contains(t, text, "Docker & Kubernetes")
	assert.Contains(t, text, "AWS")
}

func TestParseDocxWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("other.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ParseText("cv.docx", buf.Bytes())
	assert.ErrorContains(t, err, "no document.xml")
}

func TestParseTxt(t *testing.T) {
	text, err := ParseText("job.txt", []byte("  Python developer \n\n\n with   SQL  "))
	require.NoError(t, err)
	assert.Equal(t, "Python developer \n with SQL", text)

	_, err = ParseText("job.txt", []byte{0xff, 0xfe, 0xfd})
	assert.Error(t, err)
}

func TestParseUnsupported(t *testing.T) {
	_, err := ParseText("cv.odt", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.False(t, Supported("cv.odt"))
	assert.True(t, Supported("CV.PDF"))
	assert.True(t, Supported("cv.docx"))
}

func TestParseBrokenPDF(t *testing.T) {
	_, err := ParseText("cv.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}
