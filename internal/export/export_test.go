package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesPDF(t *testing.T) {
	out, err := Render("## Day 1\nBreakfast: Oatmeal\n\nLunch: Salad", MealPlanLayout)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	r, err := pdf.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	assert.Equal(t, 1, r.NumPage())
}

func TestRenderPaginatesLongText(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 300; i++ {
		fmt.Fprintf(&b, "Line %d of the tailored resume\n", i)
	}

	out, err := Render(b.String(), TailoredLayout)
	require.NoError(t, err)

	r, err := pdf.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	assert.Greater(t, r.NumPage(), 1)
}

func TestRenderNonLatinText(t *testing.T) {
	out, err := Render("Café ☕ 日本語\r\nnext", TailoredLayout)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderInvalidLayout(t *testing.T) {
	_, err := Render("text", Layout{})
	assert.ErrorIs(t, err, ErrExportFailure)
}

func TestToLatin1(t *testing.T) {
	assert.Equal(t, "Caf\xe9 ? ok", toLatin1("Café ☕ ok"))
	assert.Equal(t, "???", toLatin1("日本語"))
	assert.Equal(t, "plain", toLatin1("plain"))
}

func TestEncodeForDownloadRoundTrip(t *testing.T) {
	data := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xff, 0x10, '\n'}

	link, err := EncodeForDownload(data, ResumeFile)
	require.NoError(t, err)

	assert.Contains(t, link, `download="tailored_resume.pdf"`)
	m := regexp.MustCompile(`href="([^"]+)"`).FindStringSubmatch(link)
	require.Len(t, m, 2)

	decoded, err := DecodeDataURI(m[1])
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestEncodeForDownloadEmpty(t *testing.T) {
	_, err := EncodeForDownload(nil, MealPlanFile)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = NewDownload([]byte{}, MealPlanFile)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestEncodeForDownloadEscapesFilename(t *testing.T) {
	link, err := EncodeForDownload([]byte("x"), `a"b.pdf`)
	require.NoError(t, err)
	assert.Contains(t, link, `download="a&#34;b.pdf"`)
}

func TestNewDownload(t *testing.T) {
	d, err := NewDownload([]byte("pdf bytes"), CoverLetterFile)
	require.NoError(t, err)

	assert.Equal(t, CoverLetterFile, d.Filename)
	assert.True(t, strings.HasPrefix(d.DataURI, "data:application/octet-stream;base64,"))
	assert.Contains(t, d.HTML, d.DataURI)
}

func TestDecodeDataURIRejectsGarbage(t *testing.T) {
	_, err := DecodeDataURI("http://example.com")
	assert.ErrorIs(t, err, ErrBadDataURI)

	_, err = DecodeDataURI(dataURIPrefix + "!!!")
	assert.ErrorIs(t, err, ErrBadDataURI)
}
