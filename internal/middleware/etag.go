package middleware

import (
	"context"
	"net/http"
	"strings"
)

// CatalogETag tags successful GET responses with the catalog version and
// answers 304 when the client already holds it. pin attaches one catalog
// snapshot to the request context and returns its version, so the tag and
// the body always describe the same content. A "" version means nothing is
// loaded; such responses pass through untagged.
func CatalogETag(pin func(context.Context) (context.Context, string)) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			ctx, v := pin(r.Context())
			if v == "" {
				next.ServeHTTP(w, r)
				return
			}
			r = r.WithContext(ctx)

			tag := `"` + v + `"`
			if etagMatches(r.Header.Get("If-None-Match"), tag) {
				w.Header().Set("ETag", tag)
				w.WriteHeader(http.StatusNotModified)
				return
			}

			next.ServeHTTP(&etagWriter{ResponseWriter: w, tag: tag}, r)
		})
	}
}

// etagMatches reports whether an If-None-Match header value names tag.
// Weak validators compare equal to their strong form.
func etagMatches(header, tag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == tag {
			return true
		}
	}
	return false
}

// etagWriter sets the ETag header only on 200 responses.
type etagWriter struct {
	http.ResponseWriter
	tag         string
	wroteHeader bool
}

func (ew *etagWriter) WriteHeader(code int) {
	if !ew.wroteHeader {
		ew.wroteHeader = true
		if code == http.StatusOK {
			ew.Header().Set("ETag", ew.tag)
			ew.Header().Set("Cache-Control", "public, no-cache")
		}
	}
	ew.ResponseWriter.WriteHeader(code)
}

func (ew *etagWriter) Write(b []byte) (int, error) {
	if !ew.wroteHeader {
		ew.WriteHeader(http.StatusOK)
	}
	return ew.ResponseWriter.Write(b)
}
