package lanstatic

import (
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

// Handler serves files from fsys through http.FileServerFS, fixing up the
// Content-Type and adding CORS headers to every response.
type Handler struct {
	fs    fs.FS
	files http.Handler
}

func NewHandler(fsys fs.FS) *Handler {
	return &Handler{fs: fsys, files: http.FileServerFS(fsys)}
}

// contentType returns the type for the file a request path resolves to, or
// "" when it should be left to the file server (missing files, directories
// without an index).
func (h *Handler) contentType(urlpath string) string {
	name := strings.TrimPrefix(path.Clean("/"+urlpath), "/")
	if name == "" {
		name = "."
	}
	info, err := fs.Stat(h.fs, name)
	if err != nil {
		slog.Debug("stat failed", "path", name, "error", err)
		return ""
	}
	if info.IsDir() {
		name = path.Join(name, "index.html")
		info, err = fs.Stat(h.fs, name)
		if err != nil || info.IsDir() {
			return ""
		}
	}
	return ResolveType(name)
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// ReadFrom keeps the underlying writer's sendfile path for file bodies.
func (w *statusWriter) ReadFrom(r io.Reader) (int64, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if rf, ok := w.ResponseWriter.(io.ReaderFrom); ok {
		return rf.ReadFrom(r)
	}
	return io.Copy(w.ResponseWriter, r)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (h *Handler) serveHTTP(res http.ResponseWriter, req *http.Request) int {
	for k, v := range corsHeaders {
		res.Header().Set(k, v)
	}
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodPost:
	case http.MethodOptions:
		res.WriteHeader(http.StatusNoContent)
		return http.StatusNoContent
	default:
		res.Header().Set("Allow", "GET, HEAD, POST, OPTIONS")
		http.Error(res, http.StatusText(http.StatusNotImplemented), http.StatusNotImplemented)
		return http.StatusNotImplemented
	}
	if ctype := h.contentType(req.URL.Path); ctype != "" {
		res.Header().Set("Content-Type", ctype)
	}
	sw := &statusWriter{ResponseWriter: res}
	h.files.ServeHTTP(sw, req)
	if sw.status == 0 {
		return http.StatusOK
	}
	return sw.status
}

func (h *Handler) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	st := time.Now()
	code := h.serveHTTP(res, req)
	slog.Debug("accesslog", "method", req.Method, "path", req.URL.Path, "remote", req.RemoteAddr, "status", code, "content-type", res.Header().Get("Content-Type"), "elapsed_ns", time.Since(st))
}
