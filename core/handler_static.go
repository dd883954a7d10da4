package core

import (
	"io/fs"
	"net/http"
)

// PageHandler serves one embedded HTML page with the standard page headers.
func PageHandler(pages fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := fs.ReadFile(pages, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		setHeaders(w, headersStaticHtml)
		w.Write(content)
	}
}
