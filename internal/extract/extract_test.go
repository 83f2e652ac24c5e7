package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPlain(t *testing.T) {
	text, err := Text(context.Background(), []byte("  Senior Go engineer\n"), "text/plain; charset=utf-8", "jd.txt")

	require.NoError(t, err)
	assert.Equal(t, "Senior Go engineer", text)
}

func TestTextHTMLDropsChrome(t *testing.T) {
	page := `<html><head><style>p{color:red}</style><script>var x = 1;</script></head>
<body><nav><p>Home</p></nav>
<h1>Backend Engineer</h1>
<p>We   need someone who knows Go.</p>
<ul><li>Kubernetes</li><li>PostgreSQL</li></ul>
<footer><p>Copyright</p></footer></body></html>`

	text, err := Text(context.Background(), []byte(page), "", "posting.html")
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer\nWe need someone who knows Go.\nKubernetes\nPostgreSQL", text)
	assert.NotContains(t, text, "var x")
	assert.NotContains(t, text, "Home")
	assert.NotContains(t, text, "Copyright")
}

func TestTextDOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>Go developer</w:t></w:r></w:p>
</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	text, err := Text(context.Background(), buf.Bytes(), "", "resume.docx")
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Go developer")
	assert.NotContains(t, text, "<w:t>")
}

func TestTextPDF(t *testing.T) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Arial", "", 12)
	doc.Cell(40, 10, "Kubernetes")
	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	text, err := Text(context.Background(), buf.Bytes(), "application/pdf", "resume.pdf")
	require.NoError(t, err)
	assert.Contains(t, text, "Kubernetes")
}

func TestTextUnsupported(t *testing.T) {
	_, err := Text(context.Background(), []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, "image/png", "photo.png")

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestTextEmpty(t *testing.T) {
	_, err := Text(context.Background(), []byte("   \n"), "text/plain", "")

	assert.ErrorIs(t, err, ErrNoText)
}

func TestTextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Text(ctx, []byte("text"), "text/plain", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		mime     string
		fileName string
		want     string
	}{
		{"declared wins", nil, "application/pdf", "x.txt", MimePDF},
		{"extension", nil, "application/octet-stream", "notes.MD", MimeMarkdown},
		{"sniff pdf", []byte("%PDF-1.4\n"), "", "", MimePDF},
		{"sniff html", []byte("<html><body>hi</body></html>"), "", "", MimeHTML},
		{"sniff text", []byte("just words"), "", "upload", MimeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.data, tt.mime, tt.fileName))
		})
	}
}
