package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Validation error types reported in ValidationError.Type
const (
	errTypeIntParsing = "int_parsing"
)

const (
	msgIntSyntax = "Input should be a valid integer, unable to parse string as an integer"
	msgIntRange  = "Input should be a valid integer, value out of range"
)

// ErrorResponse represents an error response.
// Detail is a string for routing errors and a []ValidationError for 422s.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

// ValidationError describes one input that failed coercion
type ValidationError struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input string   `json:"input"`
}

func newIntParsingError(location, field, input string, err error) ValidationError {
	msg := msgIntSyntax
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		msg = msgIntRange
	}

	return ValidationError{
		Type:  errTypeIntParsing,
		Loc:   []string{location, field},
		Msg:   msg,
		Input: input,
	}
}

func (s *Server) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
}

func (s *Server) handleMethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method Not Allowed"})
}
