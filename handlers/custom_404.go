package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/ZacxDev/swampdocs/logging"
)

// Custom404Handler serves files from the public directory and renders the
// navigate-fallback page for everything else.
func Custom404Handler(site *Site) http.HandlerFunc {
	log := logging.WithComponent("handlers")
	public := site.PublicDir()

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			file := filepath.Join(public, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				http.ServeFile(w, r, file)
				return
			}
		}

		slug, ok := site.FallbackSlug()
		if !ok {
			http.NotFound(w, r)
			return
		}

		html, err := renderPage(site, Page{Path: r.URL.Path, Slug: slug})
		if err != nil {
			log.Error().Err(err).Str("path", r.URL.Path).Msg("rendering fallback page")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(html))
	}
}
