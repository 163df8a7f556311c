// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiResponse is the envelope of every JSON reply.
type apiResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, apiResponse{Success: true, Data: data, RequestID: c.GetString(requestIDKey)})
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, apiResponse{Success: false, Error: msg, RequestID: c.GetString(requestIDKey)})
}

// failErr maps err and logs anything that is not the client's fault.
func (s *Server) failErr(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Str("request_id", c.GetString(requestIDKey)).Str("path", c.FullPath()).Msg("request failed")
	}
	fail(c, status, msg)
}
