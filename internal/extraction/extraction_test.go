package extraction

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHTML_MainContent(t *testing.T) {
	html := `<html><body>
		<nav>Navigation links</nav>
		<main><p>The cat sat.</p><p>The dog ran.</p></main>
		<footer>Copyright</footer>
	</body></html>`
	text, err := FromHTML(html)
	require.NoError(t, err)
	assert.Contains(t, text, "The cat sat.")
	assert.Contains(t, text, "The dog ran.")
	assert.NotContains(t, text, "Navigation links")
	assert.NotContains(t, text, "Copyright")
}

func TestFromHTML_FallsBackToBody(t *testing.T) {
	html := `<html><body><div>Just a plain div.</div></body></html>`
	text, err := FromHTML(html)
	require.NoError(t, err)
	assert.Equal(t, "Just a plain div.", text)
}

func TestFromHTML_RemovesScriptsAndStyles(t *testing.T) {
	html := `<html><body><main>Visible text</main><script>var x = 1;</script><style>.a{}</style></body></html>`
	text, err := FromHTML(html)
	require.NoError(t, err)
	assert.Equal(t, "Visible text", text)
}

func TestFromFile_PlainText(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "passage.txt")
	require.NoError(t, os.WriteFile(path, []byte("The cat sat."), 0644))

	text, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "The cat sat.", text)
}

func TestFromFile_HTML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body><main>From a file.</main></body></html>"), 0644))

	text, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "From a file.", text)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile("/nonexistent/passage.txt")
	var extErr *Error
	require.ErrorAs(t, err, &extErr)
}

func TestFromPDF_Missing(t *testing.T) {
	_, err := FromPDF("/nonexistent/book.pdf")
	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Error(), "book.pdf")
}

func TestFromURL_ExtractsMainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>Served passage.</main></body></html>`))
	}))
	defer srv.Close()

	text, err := FromURL(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Served passage.", text)
}

func TestFromURL_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := FromURL(context.Background(), srv.URL, nil)
	var extErr *Error
	require.ErrorAs(t, err, &extErr)
	assert.Contains(t, extErr.Error(), "404")
}

func TestFromURL_InvalidURL(t *testing.T) {
	_, err := FromURL(context.Background(), "not a url", nil)
	var extErr *Error
	require.ErrorAs(t, err, &extErr)
}

func TestCleanWhitespace(t *testing.T) {
	assert.Equal(t, "a\nb", cleanWhitespace("  a  \n\n\n   b\n"))
	assert.Equal(t, "", cleanWhitespace("   \n \t \n"))
}
