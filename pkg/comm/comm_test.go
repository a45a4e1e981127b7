package comm

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileURL(t *testing.T) {
	fall := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, BaseURL+"/Fall2025.pdf", FileURL(fall))

	spring := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, BaseURL+"/Spring2026.pdf", FileURL(spring))

	// Every non-September month reads as the spring term.
	december := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, BaseURL+"/Spring2025.pdf", FileURL(december))
}

// redirectDoer points every request at a test server regardless of the
// requested URL.
type redirectDoer struct {
	base string
}

func (d *redirectDoer) Do(req *http.Request) (*http.Response, error) {
	redirected, err := http.NewRequest(req.Method, d.base+req.URL.Path, req.Body)
	if err != nil {
		return nil, err
	}
	return http.DefaultClient.Do(redirected)
}

func TestFetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not yet published", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Fetch(&redirectDoer{base: server.URL}, time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status 404")
}

func TestExtractCodes_EmptyContent(t *testing.T) {
	_, err := ExtractCodes(strings.NewReader(""))
	require.Error(t, err)
}

func TestExtractCodes_NotAPDF(t *testing.T) {
	_, err := ExtractCodes(strings.NewReader("this is not a pdf"))
	require.Error(t, err)
}
