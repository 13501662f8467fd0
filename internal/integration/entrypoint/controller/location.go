// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/location"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/dto"
)

// LocationController handles location endpoints.
type LocationController struct {
	listUseCase    *location.ListLocationsUseCase
	createUseCase  *location.CreateLocationUseCase
	updateUseCase  *location.UpdateLocationUseCase
	deleteUseCase  *location.DeleteLocationUseCase
	reorderUseCase *location.ReorderLocationsUseCase
	suggestUseCase *location.SuggestLocationsUseCase
}

// NewLocationController creates a new location controller instance.
func NewLocationController(
	listUseCase *location.ListLocationsUseCase,
	createUseCase *location.CreateLocationUseCase,
	updateUseCase *location.UpdateLocationUseCase,
	deleteUseCase *location.DeleteLocationUseCase,
	reorderUseCase *location.ReorderLocationsUseCase,
	suggestUseCase *location.SuggestLocationsUseCase,
) *LocationController {
	return &LocationController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		reorderUseCase: reorderUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// List handles GET /locations requests.
func (c *LocationController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), location.ListLocationsInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve locations",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLocationListResponse(output.Locations))
}

// Create handles POST /locations requests.
func (c *LocationController) Create(ctx *gin.Context) {
	var req dto.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	color, ok := c.parseLocationColor(ctx, req.Color)
	if !ok {
		return
	}

	input := location.CreateLocationInput{
		Name:         req.Name,
		Color:        color,
		DisplayInRow: req.DisplayInRow,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLocationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLocationResponse(output.Location, 0))
}

// Update handles PATCH /locations/:id requests.
func (c *LocationController) Update(ctx *gin.Context) {
	locationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid location ID format",
		})
		return
	}

	var req dto.UpdateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	color, ok := c.parseLocationColor(ctx, req.Color)
	if !ok {
		return
	}

	input := location.UpdateLocationInput{
		ID:           locationID,
		Name:         req.Name,
		Color:        color,
		DisplayInRow: req.DisplayInRow,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLocationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLocationResponse(output.Location, 0))
}

// Delete handles DELETE /locations/:id requests.
func (c *LocationController) Delete(ctx *gin.Context) {
	locationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid location ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), location.DeleteLocationInput{ID: locationID}); err != nil {
		c.handleLocationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reorder handles PUT /locations/order requests.
func (c *LocationController) Reorder(ctx *gin.Context) {
	var req dto.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeLocationOrderEmpty),
		})
		return
	}

	orderedIDs, ok := parseUUIDList(ctx, req.OrderedIDs)
	if !ok {
		return
	}

	output, err := c.reorderUseCase.Execute(ctx.Request.Context(), location.ReorderLocationsInput{OrderedIDs: orderedIDs})
	if err != nil {
		c.handleLocationError(ctx, err)
		return
	}

	locations := make([]dto.LocationResponse, len(output.Locations))
	for i, loc := range output.Locations {
		locations[i] = dto.ToLocationResponse(loc, 0)
	}
	ctx.JSON(http.StatusOK, dto.LocationListResponse{Locations: locations})
}

// Suggest handles GET /locations/suggestions requests. The optional q query
// parameter filters names by prefix.
func (c *LocationController) Suggest(ctx *gin.Context) {
	input := location.SuggestLocationsInput{Prefix: ctx.Query("q")}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve suggestions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestionsResponse{Suggestions: output.Names})
}

// parseLocationColor parses an optional hex color, writing the 400 response
// itself on failure.
func (c *LocationController) parseLocationColor(ctx *gin.Context, raw *string) (*entity.Color, bool) {
	if raw == nil {
		return nil, true
	}
	parsed, err := dto.ParseHexColor(*raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid color: expected #RRGGBB or #RRGGBBAA",
		})
		return nil, false
	}
	return &parsed, true
}

// handleLocationError handles location errors and returns appropriate HTTP
// responses.
func (c *LocationController) handleLocationError(ctx *gin.Context, err error) {
	var locErr *domainerror.LocationError
	if errors.As(err, &locErr) {
		ctx.JSON(c.getStatusCodeForLocationError(locErr.Code), dto.ErrorResponse{
			Error: locErr.Message,
			Code:  string(locErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLocationError maps location error codes to HTTP status
// codes.
func (c *LocationController) getStatusCodeForLocationError(code domainerror.LocationErrorCode) int {
	switch code {
	case domainerror.ErrCodeLocationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeLocationNameTooLong,
		domainerror.ErrCodeLocationNameEmpty,
		domainerror.ErrCodeLocationOrderEmpty:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
