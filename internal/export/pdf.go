// Package export turns generated text into a paginated PDF and a
// self-contained download link.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

var ErrExportFailure = errors.New("document export failed")

// Layout controls the font size (pt) and line height (mm) of the text dump.
type Layout struct {
	FontSize   float64
	LineHeight float64
}

var (
	MealPlanLayout = Layout{FontSize: 12, LineHeight: 10}
	TailoredLayout = Layout{FontSize: 11, LineHeight: 5}
)

// Render writes text line by line into an A4 PDF using a core font.
// Characters outside ISO-8859-1 become '?'. Markdown is not interpreted.
func Render(text string, layout Layout) ([]byte, error) {
	if layout.FontSize <= 0 || layout.LineHeight <= 0 {
		return nil, fmt.Errorf("%w: invalid layout %+v", ErrExportFailure, layout)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", layout.FontSize)

	for _, line := range strings.Split(toLatin1(text), "\n") {
		pdf.MultiCell(0, layout.LineHeight, strings.TrimRight(line, "\r"), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailure, err)
	}
	return buf.Bytes(), nil
}

// toLatin1 re-encodes s one byte per character, the encoding the core fonts
// expect.
func toLatin1(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}
