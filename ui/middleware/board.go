package middleware

import (
	"net/http"

	"heroscores/internal"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoardIDKey is the gin context key holding the resolved board id
const BoardIDKey = "board_id"

// BoardParam is the query parameter naming the page view's board
const BoardParam = "board"

// BoardHeader carries the board id for clients that prefer headers
const BoardHeader = "X-Board-ID"

// BoardLookup reports whether a board is live, marking it as seen
type BoardLookup interface {
	Touch(id string) bool
}

// RequireBoard is middleware that resolves the board of the requesting page
// view. Requests naming no live board are rejected; boards are only ever
// mounted by the page itself.
func RequireBoard(boards BoardLookup) gin.HandlerFunc {
	logger := internal.DefaultLogger.Named("RequireBoard")
	return func(c *gin.Context) {
		id := c.Query(BoardParam)
		if id == "" {
			id = c.GetHeader(BoardHeader)
		}

		if _, err := uuid.Parse(id); err != nil {
			logger.Debug("Rejecting %s %s: malformed board id %q", c.Request.Method, c.Request.URL.Path, id)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "board id is required"})
			return
		}

		if !boards.Touch(id) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "board not found; reload the page"})
			return
		}

		c.Set(BoardIDKey, id)
		c.Next()
	}
}
