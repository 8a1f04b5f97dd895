// SPDX-License-Identifier: EPL-2.0

package server

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non 2xx reply.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

const (
	codeInvalidConfig = "invalid_config"
	codeMissingFile   = "missing_file"
	codeTooLarge      = "payload_too_large"
	codeUnsupported   = "unsupported_format"
	codeCorrupt       = "corrupt_audio"
	codeInternal      = "internal_error"
)

// fail records err on the context for the access log and replies with a
// JSON ErrorResponse.
func fail(c *gin.Context, status int, code string, err error, details map[string]any) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   code,
		Message: err.Error(),
		Details: details,
	})
}
