package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
	"github.com/SscSPs/cc_reco_app/internal/dto"
	"github.com/SscSPs/cc_reco_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type deductionHandler struct {
	deductionService portssvc.DeductionSvcFacade
}

// RegisterDeductionRoutes registers POST /deductions. Extra middleware such as a rate
// limiter runs before the handler.
func RegisterDeductionRoutes(rg *gin.RouterGroup, ds portssvc.DeductionSvcFacade, mw ...gin.HandlerFunc) {
	h := &deductionHandler{deductionService: ds}
	rg.POST("/deductions", append(mw, h.applyDeductions)...)
}

// applyDeductions godoc
// @Summary Apply deductions against PO balances
// @Description Each item is applied on its own. The response carries one outcome per item in request order.
// @Tags deductions
// @Accept  json
// @Produce  json
// @Param   request body dto.ApplyDeductionsRequest true "Deductions"
// @Success 200 {object} dto.ApplyDeductionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to apply deductions"
// @Security BearerAuth
// @Router /deductions [post]
func (h *deductionHandler) applyDeductions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApplyDeductionsRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.deductionService.ApplyDeductions(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to apply deductions")
		return
	}
	logger.Info("Deductions processed",
		slog.String("batch_id", resp.BatchID),
		slog.Int("applied", resp.Applied),
		slog.Int("rejected", resp.Rejected))
	c.JSON(http.StatusOK, resp)
}
