package v1

import (
	"net/http"

	"cleanpro-web/internal/delivery/http/middleware"
	"cleanpro-web/internal/delivery/http/response"
	"cleanpro-web/internal/domain"
	"cleanpro-web/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes. The group must run FormSession;
// submitMiddleware (rate limiting) guards only the submit route.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, submitMiddleware ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", append(submitMiddleware, handler.SubmitContact)...)
	public.POST("/contact/reset", handler.ResetContact)
	public.GET("/contact/status", handler.GetStatus)
	public.GET("/contact/services", handler.ListServiceChoices)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the message and hands it to the email relay. A second submit while one is in flight is rejected.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=domain.SubmissionOutcome}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	out, err := h.contactUC.Submit(c.Request.Context(), middleware.FormID(c), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Thank you! Your message has been sent successfully.", out)
}

// ResetContact godoc
// @Summary      Reset Contact Form
// @Description  Returns a finished form (success or error) to idle so another message can be sent.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SubmissionOutcome}
// @Router       /contact/reset [post]
func (h *ContactHandler) ResetContact(c *gin.Context) {
	out := h.contactUC.Reset(c.Request.Context(), middleware.FormID(c))
	response.Success(c, http.StatusOK, "Form reset", out)
}

// GetStatus godoc
// @Summary      Contact Form Status
// @Description  Current state of the caller's form and the field values it retains.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ContactState}
// @Router       /contact/status [get]
func (h *ContactHandler) GetStatus(c *gin.Context) {
	state := h.contactUC.State(c.Request.Context(), middleware.FormID(c))
	response.Success(c, http.StatusOK, "Form status", state)
}

// ListServiceChoices godoc
// @Summary      Contact Service Options
// @Description  Values accepted by the service field.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ServiceChoice}
// @Router       /contact/services [get]
func (h *ContactHandler) ListServiceChoices(c *gin.Context) {
	response.Success(c, http.StatusOK, "Service options", h.contactUC.ServiceChoices())
}
