package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Rrens/focusbot/internal/api/response"
)

// Frontend serves a built single-page app from dir. Paths that do not match
// a file fall back to index.html so client-side routes resolve.
func Frontend(dir string) http.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(index); err != nil {
			if r.URL.Path == "/" {
				response.Message(w, "FocusBot backend running! Build the React app to serve the UI.")
				return
			}
			response.NotFound(w, "Not Found")
			return
		}

		clean := path.Clean("/" + r.URL.Path)
		if strings.HasPrefix(clean, "/api/") || clean == "/api" {
			response.NotFound(w, "Not Found")
			return
		}

		if clean != "/" {
			if info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean))); err == nil && !info.IsDir() {
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		http.ServeFile(w, r, index)
	}
}
