package http

import (
	"io/fs"
	"net/http"
	"os"

	"github.com/Killercavin/HealthInfoSystem/internal/his/web"
)

// StaticFS returns the front-end bundle to serve. An empty dir selects the
// embedded bundle; otherwise files are read from dir on disk.
func StaticFS(dir string) fs.FS {
	if dir == "" {
		return web.Static()
	}
	return os.DirFS(dir)
}

// StaticHandler serves files from fsys, mapping "/" to index.html.
func StaticHandler(fsys fs.FS) http.Handler {
	return http.FileServerFS(fsys)
}
