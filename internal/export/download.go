package export

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"strings"
)

// Download file names per document.
const (
	MealPlanFile    = "meal_plan.pdf"
	ResumeFile      = "tailored_resume.pdf"
	CoverLetterFile = "tailored_cover_letter.pdf"
)

const dataURIPrefix = "data:application/octet-stream;base64,"

var (
	ErrNoData     = errors.New("no document data to encode")
	ErrBadDataURI = errors.New("malformed data URI")
)

// Download is a ready-to-embed link to a generated document.
type Download struct {
	Filename string `json:"filename"`
	DataURI  string `json:"dataUri"`
	HTML     string `json:"html"`
}

// NewDownload encodes data for client-side download as filename.
func NewDownload(data []byte, filename string) (*Download, error) {
	link, err := EncodeForDownload(data, filename)
	if err != nil {
		return nil, err
	}
	return &Download{
		Filename: filename,
		DataURI:  DataURI(data),
		HTML:     link,
	}, nil
}

// EncodeForDownload returns an anchor whose href is a base64 data URI of data
// and whose download attribute is filename.
func EncodeForDownload(data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", ErrNoData
	}
	name := html.EscapeString(filename)
	return fmt.Sprintf(`<a href="%s" download="%s">Download %s</a>`, DataURI(data), name, name), nil
}

func DataURI(data []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI reverses DataURI.
func DecodeDataURI(uri string) ([]byte, error) {
	payload, ok := strings.CutPrefix(uri, dataURIPrefix)
	if !ok {
		return nil, ErrBadDataURI
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDataURI, err)
	}
	return data, nil
}
