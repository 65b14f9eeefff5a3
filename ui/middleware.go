package ui

import (
	"io/fs"
	"net/http"

	"heroscores/internal/errors"

	"github.com/gin-gonic/gin"
)

// setupMiddleware serves embedded styles and the public asset directory
func (s *Server) setupMiddleware() error {
	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		return errors.Wrap(err, "failed to create static filesystem")
	}
	s.router.StaticFS("/static", http.FS(staticFS))

	if s.publicDir == "" {
		s.router.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})
		return nil
	}

	// the page, logos and workbook live side by side at the site root
	s.logger.Info("Serving public assets from %s", s.publicDir)
	s.router.NoRoute(gin.WrapH(http.FileServer(http.Dir(s.publicDir))))
	return nil
}
