package v1

import (
	"go-leadform-backend/internal/delivery/http/response"
	"go-leadform-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type EstimateHandler struct {
	estimateUC domain.EstimateUsecase
}

// NewEstimateHandler registers the estimate request route (public, no auth)
func NewEstimateHandler(api *gin.RouterGroup, estimateUC domain.EstimateUsecase) {
	handler := &EstimateHandler{
		estimateUC: estimateUC,
	}

	api.POST("/estimate", handler.SubmitEstimate)
}

// SubmitEstimate godoc
// @Summary      Submit Estimate Request
// @Description  Relay a pricing questionnaire submission to the estimates mailbox.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.Body
// @Failure      405  {object}  response.Body
// @Failure      500  {object}  response.Body
// @Router       /estimate [post]
func (h *EstimateHandler) SubmitEstimate(c *gin.Context) {
	payload, err := parsePayload(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.estimateUC.SubmitEstimate(c.Request.Context(), payload); err != nil {
		c.Error(err)
		return
	}

	response.OK(c)
}
