// Package comm retrieves the communication-intensive course list,
// published each term as a PDF rather than catalog HTML.
package comm

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ledongthuc/pdf"

	"catalog-scrape/pkg/coursecode"
)

// BaseURL hosts the per-term communication-intensive PDFs.
const BaseURL = "http://www.rpi.edu/dept/srfs/CI"

// Doer executes an HTTP request; satisfied by httpclient.HTTPClient.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FileURL returns the PDF URL for the term containing date: the fall
// list when fall registration is open (September), the spring list
// otherwise.
func FileURL(date time.Time) string {
	if date.Month() == time.September {
		return fmt.Sprintf("%s/Fall%04d.pdf", BaseURL, date.Year())
	}
	return fmt.Sprintf("%s/Spring%04d.pdf", BaseURL, date.Year())
}

// Fetch downloads the term's PDF and returns the course codes listed in
// it, sorted and de-duplicated.
func Fetch(client Doer, date time.Time) ([]string, error) {
	url := FileURL(date)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	return ExtractCodes(resp.Body)
}

// ExtractCodes pulls the plain text out of a PDF stream and returns
// every course code found in it.
func ExtractCodes(r io.Reader) ([]string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, err
	}

	data := buf.Bytes()
	if len(data) == 0 {
		return nil, fmt.Errorf("pdf content is empty")
	}

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	textReader, err := doc.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	var text bytes.Buffer
	if _, err := io.Copy(&text, textReader); err != nil {
		return nil, err
	}

	return coursecode.Find(text.String()), nil
}
