package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echo answers with the request body as JSON-ish text.
var echo = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
})

func TestGZip_CompressesWhenAccepted(t *testing.T) {
	payload := strings.Repeat(`{"title":"hello"}`, 50)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()

	withGZip(echo).ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
	assert.Less(t, rec.Body.Len(), len(payload))
	assert.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
}

func TestGZip_PlainWhenNotAccepted(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
	rec := httptest.NewRecorder()

	withGZip(echo).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
}

func TestGZip_DecompressesRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, `{"email":"a@b.c"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	var gotEncoding string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEncoding = r.Header.Get("Content-Encoding")
		echo(w, r)
	})
	withGZip(handler).ServeHTTP(rec, req)

	assert.Empty(t, gotEncoding, "Content-Encoding must be removed after decoding")
	assert.Equal(t, `{"email":"a@b.c"}`, rec.Body.String())
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echo).ServeHTTP(rec, req)

	assertFailure(t, rec, http.StatusBadRequest, msgInvalidGzipBody)
}

func TestGZip_NoBodyStatusesStayUncompressed(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotModified} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})).ServeHTTP(rec, req)

		assert.Equal(t, status, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Zero(t, rec.Body.Len())
	}
}

func TestGZip_EmptyHandlerWritesNothing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	assert.Zero(t, rec.Body.Len())
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	handler := withGZip(echo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload := strings.Repeat("x", 100+i)

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			zr, err := gzip.NewReader(rec.Body)
			if !assert.NoError(t, err) {
				return
			}
			out, _ := io.ReadAll(zr)
			assert.Equal(t, payload, string(out))
		}(i)
	}
	wg.Wait()
}

func TestWrappedReadCloser_Close(t *testing.T) {
	called := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { called = true }}

	assert.NoError(t, rc.Close())
	assert.True(t, called)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("")}).Close())
}
