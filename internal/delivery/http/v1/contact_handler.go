package v1

import (
	"go-leadform-backend/internal/delivery/http/response"
	"go-leadform-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact form route (public, no auth)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relay a contact form submission to the site owner's mailbox.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Body
// @Failure      400  {object}  response.Body
// @Failure      405  {object}  response.Body
// @Failure      500  {object}  response.Body
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	payload, err := parsePayload(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.contactUC.SubmitContact(c.Request.Context(), payload); err != nil {
		c.Error(err)
		return
	}

	response.OK(c)
}
