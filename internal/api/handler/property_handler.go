package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
)

// PropertyHandler handles the public listing endpoints and the
// landlord-facing CRUD.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List handles GET /properties — the public listing query.
//
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Param        city      query     string  false  "City filter (exact match, 'All' = no filter)"
// @Param        maxPrice  query     number  false  "Inclusive price ceiling"
// @Param        type      query     string  false  "Property type filter ('All' = no filter)"
// @Param        status    query     string  false  "Status filter (defaults to Available)"
// @Success      200       {array}   propertyResponse
// @Failure      500       {object}  errorResponse
// @Router       /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	filter := ports.ListPropertiesFilter{
		City:   c.QueryParam("city"),
		Type:   c.QueryParam("type"),
		Status: domain.PropertyStatus(c.QueryParam("status")),
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "maxPrice must be a number"})
		}
		filter.MaxPrice = maxPrice
	}

	properties, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, toPropertyListResponse(properties))
}

// Get handles GET /properties/:id.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  propertyResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	property, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// Create handles POST /properties. Creating a listing broadcasts a
// new_listing notification to every tenant via the fan-out dispatcher.
//
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Property details"
// @Success      201   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	property, err := h.service.Create(c.Request().Context(), actor, toCreateInput(req))
	if err != nil {
		return propertyError(c, err)
	}

	return c.JSON(http.StatusCreated, toPropertyResponse(property))
}

// Update handles PUT /properties/:id.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Property id"
// @Param        body  body      updatePropertyRequest  true  "Fields to update"
// @Success      200   {object}  propertyResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	property, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return propertyError(c, err)
	}

	return c.JSON(http.StatusOK, toPropertyResponse(property))
}

// Delete handles DELETE /properties/:id.
//
// @Summary      Delete a property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return propertyError(c, err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Property deleted successfully"})
}

// propertyError maps domain errors from property operations to their
// HTTP status codes.
func propertyError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrPropertyNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "property not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Error: "access forbidden"})
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
