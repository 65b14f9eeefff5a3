package ui

import (
	"net/http"

	"heroscores/domain/scores"
	"heroscores/ui/middleware"

	"github.com/gin-gonic/gin"
)

// boardFor returns the board resolved by middleware.RequireBoard. A board
// evicted between the middleware and the handler aborts with 404.
func (s *Server) boardFor(c *gin.Context) (*Board, bool) {
	board, ok := s.boards.Get(c.GetString(middleware.BoardIDKey))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "board not found; reload the page"})
	}
	return board, ok
}

// handleIndex mounts a board for this page view and renders the shell;
// cards arrive via /fragments/cards
func (s *Server) handleIndex(c *gin.Context) {
	board := s.boards.Open()
	c.Header("Cache-Control", "no-store")
	s.renderTemplate(c, "index.html", gin.H{
		"Title":      "Super Hero Scores",
		"Background": scores.BackgroundPath,
		"BoardID":    board.ID,
	})
}

// handleCards renders the spinner while loading, the cards afterwards
func (s *Server) handleCards(c *gin.Context) {
	board, ok := s.boardFor(c)
	if !ok {
		return
	}
	s.renderTemplate(c, "cards.html", board.Snapshot())
}

// handleSort toggles the sort direction and re-renders the cards
func (s *Server) handleSort(c *gin.Context) {
	board, ok := s.boardFor(c)
	if !ok {
		return
	}
	snap := board.Toggle()
	s.logger.Debug("Board %s sorted %s", snap.ID, snap.Direction)
	s.renderTemplate(c, "cards.html", snap)
}

// handleHeroes returns the board snapshot as JSON
func (s *Server) handleHeroes(c *gin.Context) {
	board, ok := s.boardFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, board.Snapshot())
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"boards": s.boards.Len(),
	})
}
