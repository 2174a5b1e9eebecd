package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/faculty-portal/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds each request by the given duration.
// The handler sees a context carrying the deadline, so outbound calls to the
// records API are canceled with it.
//
// Handler output is buffered. If the deadline passes first, the buffer is
// discarded and an RFC 9457 504 is written instead; later handler writes fail
// with http.ErrHandlerTimeout.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			bw := &bufferedWriter{w: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(bw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.flush()
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.expired = true
				if r.Context().Err() != nil {
					// Client went away; nobody is reading.
					return
				}
				dto.WriteErrorResponse(w, r.WithContext(ctx),
					fmt.Errorf("request exceeded %s: %w", timeout, context.DeadlineExceeded))
			}
		})
	}
}

// bufferedWriter holds the handler's response until Timeout decides whether
// to forward it. Every method takes mu.
type bufferedWriter struct {
	w           http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	body        []byte
	statusCode  int
	wroteHeader bool
	expired     bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.header == nil {
		bw.header = make(http.Header)
	}
	return bw.header
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	bw.writeHeaderLocked(http.StatusOK)
	bw.body = append(bw.body, b...)
	return len(b), nil
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.expired {
		return
	}
	bw.writeHeaderLocked(code)
}

func (bw *bufferedWriter) writeHeaderLocked(code int) {
	if bw.wroteHeader {
		return
	}
	bw.statusCode = code
	bw.wroteHeader = true
}

// flush forwards the buffered response. Caller holds mu.
func (bw *bufferedWriter) flush() {
	if bw.header != nil {
		maps.Copy(bw.w.Header(), bw.header)
	}
	if bw.wroteHeader {
		bw.w.WriteHeader(bw.statusCode)
	}
	if len(bw.body) > 0 {
		_, _ = bw.w.Write(bw.body)
	}
}
