package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
)

// ApplicationHandler handles tenant interest submissions.
type ApplicationHandler struct {
	service     ports.ApplicationService
	authService ports.AuthService
}

func NewApplicationHandler(service ports.ApplicationService, authService ports.AuthService) *ApplicationHandler {
	return &ApplicationHandler{service: service, authService: authService}
}

// Submit handles POST /applications. The owning landlord receives a
// single tenant_interest notification.
//
// @Summary      Submit an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitApplicationRequest  true  "Application details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /applications [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	// The tenant's display name goes into the landlord's notification;
	// a missing profile degrades to the generic fallback.
	tenantName := ""
	if user, err := h.authService.Profile(c.Request().Context(), actor.ID); err == nil {
		tenantName = user.Name
	}

	err = h.service.Submit(c.Request().Context(), actor, ports.SubmitApplicationInput{
		PropertyID: req.PropertyID,
		Message:    req.Message,
		TenantName: tenantName,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "property not found"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
		default:
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Application submitted successfully"})
}
