// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		w := gzip.NewWriter(nil)
		return w
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip. A response is compressed only once its body
// reaches gzip_min_size bytes; shorter bodies are sent as is.
func (h *Handler) withGZip(next http.Handler) http.Handler {
	minSize := h.cfg.GzipMinSize()

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		acceptEncoding := req.Header.Get("Accept-Encoding")
		supportsGzip := strings.Contains(acceptEncoding, "gzip")

		contentEncoding := req.Header.Get("Content-Encoding")
		isGzipRequest := strings.Contains(contentEncoding, "gzip")

		if isGzipRequest && req.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			req.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			req.Header.Del("Content-Encoding")
		}

		if !supportsGzip {
			next.ServeHTTP(w, req)
			return
		}

		gzipRW := &gzipResponseWriter{
			ResponseWriter: w,
			minSize:        minSize,
			status:         http.StatusOK,
		}

		next.ServeHTTP(gzipRW, req)

		if err := gzipRW.finish(); err != nil {
			h.logger.Error().Err(err).Msg("error finishing gzip response")
		}
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter holds the status code and the body back until either
// minSize bytes have been written, when it switches to gzip, or the handler
// returns, when the body is flushed uncompressed.
type gzipResponseWriter struct {
	http.ResponseWriter

	minSize int
	status  int

	buf         bytes.Buffer
	gzipWriter  *gzip.Writer
	passthrough bool
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = statusCode
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	w.wroteHeader = true

	switch {
	case w.gzipWriter != nil:
		return w.gzipWriter.Write(data)
	case w.passthrough:
		return w.ResponseWriter.Write(data)
	}

	// already encoded by the handler
	if w.Header().Get("Content-Encoding") != "" {
		w.passthrough = true
		w.ResponseWriter.WriteHeader(w.status)
		return w.ResponseWriter.Write(data)
	}

	w.buf.Write(data)
	if w.buf.Len() < w.minSize {
		return len(data), nil
	}
	if err := w.startGzip(); err != nil {
		return 0, err
	}
	return len(data), nil
}

func (w *gzipResponseWriter) startGzip() error {
	header := w.Header()
	header.Set("Content-Encoding", "gzip")
	header.Add("Vary", "Accept-Encoding")
	header.Del("Content-Length")
	w.ResponseWriter.WriteHeader(w.status)

	w.gzipWriter = gzipWriterPool.Get().(*gzip.Writer)
	w.gzipWriter.Reset(w.ResponseWriter)

	_, err := w.gzipWriter.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

// finish completes the response once the handler has returned.
func (w *gzipResponseWriter) finish() error {
	if w.gzipWriter != nil {
		err := w.gzipWriter.Close()
		gzipWriterPool.Put(w.gzipWriter)
		w.gzipWriter = nil
		return err
	}
	if w.passthrough {
		return nil
	}

	w.ResponseWriter.WriteHeader(w.status)
	if w.buf.Len() == 0 {
		return nil
	}
	_, err := w.ResponseWriter.Write(w.buf.Bytes())
	return err
}
