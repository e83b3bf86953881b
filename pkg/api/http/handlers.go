package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const helloMessage = "Hello World"

// MessageResponse is the body of GET /
type MessageResponse struct {
	Message string `json:"message"`
}

// ItemResponse is the body of GET /items/{item_id}
type ItemResponse struct {
	ItemID int64 `json:"item_id"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type itemURI struct {
	ItemID int64 `uri:"item_id"`
}

// handleRoot returns the static greeting
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: helloMessage})
}

// handleGetItem echoes the item_id path parameter once it is coerced to an integer
func (s *Server) handleGetItem(c *gin.Context) {
	var uri itemURI
	if err := c.ShouldBindUri(&uri); err != nil {
		raw := c.Param("item_id")
		s.logger.Debug("invalid item_id", zap.String("item_id", raw), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Detail: []ValidationError{newIntParsingError("path", "item_id", raw, err)},
		})
		return
	}

	c.JSON(http.StatusOK, ItemResponse{ItemID: uri.ItemID})
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
