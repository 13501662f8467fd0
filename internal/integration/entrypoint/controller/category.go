// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/category"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase    *category.ListCategoriesUseCase
	createUseCase  *category.CreateCategoryUseCase
	updateUseCase  *category.UpdateCategoryUseCase
	deleteUseCase  *category.DeleteCategoryUseCase
	reorderUseCase *category.ReorderCategoriesUseCase
	suggestUseCase *category.SuggestCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	reorderUseCase *category.ReorderCategoriesUseCase,
	suggestUseCase *category.SuggestCategoriesUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		reorderUseCase: reorderUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.CreateCategoryInput{
		Name:         req.Name,
		DisplayInRow: req.DisplayInRow,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category, 0))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.UpdateCategoryInput{
		ID:           categoryID,
		Name:         req.Name,
		DisplayInRow: req.DisplayInRow,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category, 0))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{ID: categoryID}); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reorder handles PUT /categories/order requests.
func (c *CategoryController) Reorder(ctx *gin.Context) {
	var req dto.ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCategoryOrderEmpty),
		})
		return
	}

	orderedIDs, ok := parseUUIDList(ctx, req.OrderedIDs)
	if !ok {
		return
	}

	output, err := c.reorderUseCase.Execute(ctx.Request.Context(), category.ReorderCategoriesInput{OrderedIDs: orderedIDs})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	categories := make([]dto.CategoryResponse, len(output.Categories))
	for i, cat := range output.Categories {
		categories[i] = dto.ToCategoryResponse(cat, 0)
	}
	ctx.JSON(http.StatusOK, dto.CategoryListResponse{Categories: categories})
}

// Suggest handles GET /categories/suggestions requests. The optional q
// query parameter filters names by prefix.
func (c *CategoryController) Suggest(ctx *gin.Context) {
	input := category.SuggestCategoriesInput{Prefix: ctx.Query("q")}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve suggestions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestionsResponse{Suggestions: output.Names})
}

// handleCategoryError handles category errors and returns appropriate HTTP
// responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(c.getStatusCodeForCategoryError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCategoryError maps category error codes to HTTP status
// codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeCategoryNameEmpty,
		domainerror.ErrCodeCategoryOrderEmpty:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
