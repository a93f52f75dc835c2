package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PrefersJobDescriptionSelector(t *testing.T) {
	html := `<html><body>
		<nav>Home About Careers</nav>
		<div class="job-description">We are hiring a Go engineer to build services.</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractText(html)
	require.NoError(t, err)

	assert.Equal(t, "We are hiring a Go engineer to build services.", text)
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain   posting
		with   messy whitespace.</p></body></html>`

	text, err := ExtractText(html)
	require.NoError(t, err)

	assert.Equal(t, "Plain posting with messy whitespace.", text)
}

func TestExtractText_StripsNoiseElements(t *testing.T) {
	html := `<html><body>
		<script>var x = 1;</script>
		<style>.a { color: red }</style>
		<div class="sidebar">Related jobs</div>
		<div class="cookie-banner">We use cookies</div>
		<main>Senior Engineer position at Acme.</main>
	</body></html>`

	text, err := ExtractText(html)
	require.NoError(t, err)

	assert.Equal(t, "Senior Engineer position at Acme.", text)
	assert.NotContains(t, text, "cookies")
	assert.NotContains(t, text, "var x")
}

func TestFromURL(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html><body><article>Backend role, Go required.</article></body></html>`))
	}))
	defer srv.Close()

	text, err := FromURL(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, "Backend role, Go required.", text)
	assert.Equal(t, defaultUserAgent, gotUA)
}

func TestFromURL_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FromURL(context.Background(), srv.URL)
	require.Error(t, err)

	var ingErr *Error
	require.ErrorAs(t, err, &ingErr)
	assert.Contains(t, ingErr.Message, "404")
}

func TestFromURL_InvalidURL(t *testing.T) {
	for _, bad := range []string{"", "not a url", "/relative/path"} {
		_, err := FromURL(context.Background(), bad)
		require.Error(t, err, "url %q", bad)

		var ingErr *Error
		assert.ErrorAs(t, err, &ingErr)
	}
}

func TestFromURL_ConnectionError(t *testing.T) {
	_, err := FromURL(context.Background(), "http://127.0.0.1:1/job")
	require.Error(t, err)

	var ingErr *Error
	assert.ErrorAs(t, err, &ingErr)
}
