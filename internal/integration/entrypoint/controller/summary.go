// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/summary"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/entrypoint/dto"
)

// SummaryController handles catalog summary endpoints.
type SummaryController struct {
	getUseCase *summary.GetSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(getUseCase *summary.GetSummaryUseCase) *SummaryController {
	return &SummaryController{getUseCase: getUseCase}
}

// Get handles GET /summary requests.
func (c *SummaryController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), summary.GetSummaryInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}
