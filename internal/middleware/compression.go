// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// gzipWriterPool reuses gzip writers across requests to avoid the allocation
// cost of gzip.NewWriter on every response.
var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

// Compression gzips the response body when the client lists gzip in
// Accept-Encoding. Responses that never write a body stay bodyless; no empty
// gzip frame is emitted for 204s and friends.
func Compression(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !acceptsGzip(r) {
			next(w, r)
			return
		}

		gz := gzipWriterPool.Get().(*gzip.Writer)
		defer gzipWriterPool.Put(gz)
		gz.Reset(w)

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")

		gzw := &gzipResponseWriter{ResponseWriter: w, gz: gz}
		next(gzw, r)

		if !gzw.wrote {
			// Detach before Close so the empty frame lands nowhere.
			gz.Reset(io.Discard)
		}
		_ = gz.Close()
	}
}

// acceptsGzip reports whether the client listed gzip in Accept-Encoding.
// Quality values are not parsed; a listed gzip counts as acceptance.
func acceptsGzip(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		enc, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(enc, "gzip") {
			return true
		}
	}
	return false
}

// gzipResponseWriter routes body writes through the gzip stream while headers
// and status go straight to the underlying writer.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz    *gzip.Writer
	wrote bool
}

// WriteHeader drops any handler-set Content-Length, which would describe the
// uncompressed body, before forwarding the status.
func (w *gzipResponseWriter) WriteHeader(status int) {
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	w.wrote = true
	return w.gz.Write(b)
}
