package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kejaplug/rental-api/internal/core/ports"
)

// LandlordHandler serves the landlord dashboard endpoints.
type LandlordHandler struct {
	service ports.PropertyService
}

func NewLandlordHandler(service ports.PropertyService) *LandlordHandler {
	return &LandlordHandler{service: service}
}

// MyProperties handles GET /landlord/my-properties. Unlike the public
// listing it returns the landlord's properties in every status.
//
// @Summary      List own properties
// @Tags         landlord
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   propertyResponse
// @Failure      403  {object}  errorResponse
// @Router       /landlord/my-properties [get]
func (h *LandlordHandler) MyProperties(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	properties, err := h.service.ListByLandlord(c.Request().Context(), actor)
	if err != nil {
		return propertyError(c, err)
	}

	return c.JSON(http.StatusOK, toPropertyListResponse(properties))
}

// UpdateStatus handles PATCH /landlord/properties/:id/status.
//
// @Summary      Change a property's status
// @Tags         landlord
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Property id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /landlord/properties/{id}/status [patch]
func (h *LandlordHandler) UpdateStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	property, err := h.service.UpdateStatus(c.Request().Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		return propertyError(c, err)
	}

	return c.JSON(http.StatusOK, toPropertyResponse(property))
}
