package httputil

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
)

// MaxSubmissionBytes caps a decoded submission body. A submission covers a
// single analytics window, so anything past a megabyte is not a payload this
// service understands.
const MaxSubmissionBytes = 1 << 20

// DecompressSubmission caps the request body and wraps it in a brotli reader
// when the mobile client compressed it. Uncompressed bodies pass through
// untouched.
func DecompressSubmission(next http.Handler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		r.Body = http.MaxBytesReader(w, r.Body, MaxSubmissionBytes)
		if r.Header.Get("Content-Encoding") == "br" {
			r.Body = io.NopCloser(brotli.NewReader(r.Body))
		}

		next.ServeHTTP(w, r)
	})
}
