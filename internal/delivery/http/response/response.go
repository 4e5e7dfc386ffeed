package response

import (
	"github.com/gin-gonic/gin"
)

// Body is the wire contract every endpoint speaks: {ok: bool, error?: string}.
// The browser wizards and any external consumer key off exactly these two
// fields, so nothing else is ever added to it.
type Body struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// OK reports a successful submission.
func OK(c *gin.Context) {
	c.JSON(200, Body{OK: true})
}

// Fail reports a failed submission with the client-facing message.
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, Body{OK: false, Error: message})
}
