package v1

import (
	"bytes"
	"encoding/json"

	"go-leadform-backend/internal/domain"
	"go-leadform-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// parsePayload decodes the request body into the loose payload map the
// normalizer works against. An empty body is an empty payload; anything that
// is not a JSON object is rejected with the caller-facing parse message.
func parsePayload(c *gin.Context) (domain.Payload, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, apperror.BadRequest("Invalid JSON body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return domain.Payload{}, nil
	}

	var payload domain.Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, apperror.BadRequest("Invalid JSON body")
	}
	return payload, nil
}
