package v1

import (
	"go-leadform-backend/internal/delivery/http/response"
	"go-leadform-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplyHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplyHandler registers the job application route (public, no auth)
func NewApplyHandler(api *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplyHandler{
		applicationUC: applicationUC,
	}

	api.POST("/apply", handler.SubmitApplication)
}

// SubmitApplication godoc
// @Summary      Submit Job Application
// @Description  Relay a job application to the hiring mailbox.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.Body
// @Failure      405  {object}  response.Body
// @Failure      500  {object}  response.Body
// @Router       /apply [post]
func (h *ApplyHandler) SubmitApplication(c *gin.Context) {
	payload, err := parsePayload(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.applicationUC.SubmitApplication(c.Request.Context(), payload); err != nil {
		c.Error(err)
		return
	}

	response.OK(c)
}
