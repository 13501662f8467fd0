// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/item"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/dto"
)

// ItemController handles item endpoints.
type ItemController struct {
	listUseCase    *item.ListItemsUseCase
	getUseCase     *item.GetItemUseCase
	createUseCase  *item.CreateItemUseCase
	updateUseCase  *item.UpdateItemUseCase
	deleteUseCase  *item.DeleteItemUseCase
	reorderUseCase *item.ReorderItemsUseCase
}

// NewItemController creates a new item controller instance.
func NewItemController(
	listUseCase *item.ListItemsUseCase,
	getUseCase *item.GetItemUseCase,
	createUseCase *item.CreateItemUseCase,
	updateUseCase *item.UpdateItemUseCase,
	deleteUseCase *item.DeleteItemUseCase,
	reorderUseCase *item.ReorderItemsUseCase,
) *ItemController {
	return &ItemController{
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		reorderUseCase: reorderUseCase,
	}
}

// List handles GET /items requests. Optional category_id and location_id
// query parameters narrow the listing.
func (c *ItemController) List(ctx *gin.Context) {
	var input item.ListItemsInput

	if raw := ctx.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &categoryID
	}

	if raw := ctx.Query("location_id"); raw != "" {
		locationID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid location ID format",
			})
			return
		}
		input.LocationID = &locationID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve items",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemListResponse(output))
}

// Get handles GET /items/:id requests.
func (c *ItemController) Get(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), item.GetItemInput{ID: itemID})
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item, output.Category, output.Location))
}

// Create handles POST /items requests.
func (c *ItemController) Create(ctx *gin.Context) {
	var req dto.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	symbolColor, ok := c.parseSymbolColor(ctx, req.SymbolColor)
	if !ok {
		return
	}

	input := item.CreateItemInput{
		Name:         req.Name,
		Quantity:     req.Quantity,
		ImageData:    req.ImageData,
		SymbolName:   req.Symbol,
		SymbolColor:  symbolColor,
		CategoryName: req.CategoryName,
		LocationName: req.LocationName,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToItemResponse(output.Item, output.Category, output.Location))
}

// Update handles PATCH /items/:id requests.
func (c *ItemController) Update(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
		})
		return
	}

	var req dto.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	symbolColor, ok := c.parseSymbolColor(ctx, req.SymbolColor)
	if !ok {
		return
	}

	input := item.UpdateItemInput{
		ID:           itemID,
		Name:         req.Name,
		Quantity:     req.Quantity,
		ImageData:    req.ImageData,
		SymbolName:   req.Symbol,
		SymbolColor:  symbolColor,
		CategoryName: req.CategoryName,
		LocationName: req.LocationName,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(output.Item, output.Category, output.Location))
}

// Delete handles DELETE /items/:id requests.
func (c *ItemController) Delete(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid item ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), item.DeleteItemInput{ID: itemID}); err != nil {
		c.handleItemError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reorder handles PUT /items/order requests.
func (c *ItemController) Reorder(ctx *gin.Context) {
	var req dto.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeItemOrderEmpty),
		})
		return
	}

	orderedIDs, ok := parseUUIDList(ctx, req.OrderedIDs)
	if !ok {
		return
	}

	output, err := c.reorderUseCase.Execute(ctx.Request.Context(), item.ReorderItemsInput{OrderedIDs: orderedIDs})
	if err != nil {
		c.handleItemError(ctx, err)
		return
	}

	items := make([]dto.ItemResponse, len(output.Items))
	for i, it := range output.Items {
		items[i] = dto.ToItemResponse(it, nil, nil)
	}
	ctx.JSON(http.StatusOK, dto.ItemListResponse{Items: items})
}

// parseSymbolColor parses an optional hex color, writing the 400 response
// itself on failure.
func (c *ItemController) parseSymbolColor(ctx *gin.Context, raw *string) (*entity.Color, bool) {
	if raw == nil {
		return nil, true
	}
	parsed, err := dto.ParseHexColor(*raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid symbol color: expected #RRGGBB or #RRGGBBAA",
		})
		return nil, false
	}
	return &parsed, true
}

// handleItemError handles item errors and returns appropriate HTTP
// responses. Category and location errors can surface here through the
// find-or-create path.
func (c *ItemController) handleItemError(ctx *gin.Context, err error) {
	var itemErr *domainerror.ItemError
	if errors.As(err, &itemErr) {
		ctx.JSON(c.getStatusCodeForItemError(itemErr.Code), dto.ErrorResponse{
			Error: itemErr.Message,
			Code:  string(itemErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	var locErr *domainerror.LocationError
	if errors.As(err, &locErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: locErr.Message,
			Code:  string(locErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForItemError maps item error codes to HTTP status codes.
func (c *ItemController) getStatusCodeForItemError(code domainerror.ItemErrorCode) int {
	switch code {
	case domainerror.ErrCodeItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeItemNameTooLong,
		domainerror.ErrCodeNegativeQuantity,
		domainerror.ErrCodeImageTooLarge,
		domainerror.ErrCodeItemOrderEmpty:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseUUIDList parses a list of string IDs, writing the 400 response
// itself on failure.
func parseUUIDList(ctx *gin.Context, raw []string) ([]uuid.UUID, bool) {
	out := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid ID format: " + s,
			})
			return nil, false
		}
		out[i] = id
	}
	return out, true
}
