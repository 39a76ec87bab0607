package httpsrc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pagepress-cli/internal/core/domain"
)

type stubFallback struct {
	data    []byte
	err     error
	locator string
	calls   int
}

func (s *stubFallback) Fetch(_ context.Context, locator string) ([]byte, error) {
	s.calls++
	s.locator = locator
	return s.data, s.err
}

func TestFetch_DirectPDF(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake body")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(pdf)
	}))
	defer srv.Close()

	src := NewSource(nil)

	data, err := src.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, pdf, data)
}

func TestFetch_DriveLocatorGoesToFallback(t *testing.T) {
	fb := &stubFallback{data: []byte("%PDF-1.7")}
	src := NewSource(fb)

	locator := "https://drive.google.com/file/d/1aBcDeFgHiJkLmNoP/view"
	data, err := src.Fetch(context.Background(), locator)
	require.NoError(t, err)
	assert.Equal(t, fb.data, data)
	assert.Equal(t, 1, fb.calls)
	assert.Equal(t, locator, fb.locator)
}

func TestFetch_NonPDFFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>sign in to continue</html>"))
	}))
	defer srv.Close()

	fb := &stubFallback{data: []byte("%PDF-1.5 real")}
	src := NewSource(fb)

	data, err := src.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, fb.data, data)
	assert.Equal(t, 1, fb.calls)
}

func TestFetch_NonPDFWithoutFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not a pdf"))
	}))
	defer srv.Close()

	src := NewSource(nil)

	_, err := src.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestFetch_HTTPErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	fb := &stubFallback{data: []byte("%PDF-1.5")}
	src := NewSource(fb)

	data, err := src.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, fb.data, data)
}

func TestFetch_HTTPErrorWithoutFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	src := NewSource(nil)

	_, err := src.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestFetch_BadLocator(t *testing.T) {
	src := NewSource(nil)

	_, err := src.Fetch(context.Background(), "://not-a-url")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
