package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
	"github.com/SscSPs/cc_reco_app/internal/dto"
	"github.com/SscSPs/cc_reco_app/internal/exporter"
	"github.com/SscSPs/cc_reco_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reconciliationHandler handles reconciliation runs and their consolidation decisions.
type reconciliationHandler struct {
	recoService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{recoService: rs}
}

// RegisterReconciliationRoutes registers the /reconciliations routes on rg.
func RegisterReconciliationRoutes(rg *gin.RouterGroup, rs portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(rs)

	recos := rg.Group("/reconciliations")
	{
		recos.POST("", h.runReconciliation)
		recos.GET("/:recoID", h.getRun)
		recos.DELETE("/:recoID", h.rollbackRun)
		recos.GET("/:recoID/export", h.exportRun)
		recos.GET("/:recoID/vendors/:prefix", h.vendorDetail)
		recos.POST("/:recoID/consolidations", h.assignChannel)
		recos.POST("/:recoID/unmapped", h.assignUnmapped)
	}
}

// runReconciliation godoc
// @Summary Reconcile a card transaction batch
// @Description Resolves vendors, consolidates ambiguous charges, matches POs and stores the run.
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   request body dto.RunReconciliationRequest true "Batch to reconcile"
// @Success 201 {object} dto.ReconciliationRunResponse "New run"
// @Success 200 {object} dto.ReconciliationRunResponse "Batch already reconciled"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 409 {object} map[string]string "Reconciliation ID taken"
// @Failure 500 {object} map[string]string "Failed to run reconciliation"
// @Security BearerAuth
// @Router /reconciliations [post]
func (h *reconciliationHandler) runReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RunReconciliationRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("batch_id", req.BatchID))

	run, created, err := h.recoService.RunReconciliation(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to run reconciliation")
		return
	}

	if !created {
		logger.Info("Batch already reconciled", slog.String("reco_id", run.RecoID))
		c.JSON(http.StatusOK, dto.ToReconciliationRunResponse(run))
		return
	}
	logger.Info("Reconciliation run stored", slog.String("reco_id", run.RecoID))
	c.JSON(http.StatusCreated, dto.ToReconciliationRunResponse(run))
}

// getRun godoc
// @Summary Get a stored reconciliation run
// @Tags reconciliations
// @Produce  json
// @Param   recoID path string true "Reconciliation ID"
// @Success 200 {object} dto.ReconciliationRunResponse
// @Failure 404 {object} map[string]string "Run not found"
// @Failure 500 {object} map[string]string "Failed to get reconciliation"
// @Security BearerAuth
// @Router /reconciliations/{recoID} [get]
func (h *reconciliationHandler) getRun(c *gin.Context) {
	recoID := c.Param("recoID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("reco_id", recoID))

	run, err := h.recoService.GetRun(c.Request.Context(), recoID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to get reconciliation")
		return
	}
	c.JSON(http.StatusOK, dto.ToReconciliationRunResponse(run))
}

// rollbackRun godoc
// @Summary Roll back a reconciliation run
// @Description Deletes the run and releases its transactions for a new run. Overrides are kept.
// @Tags reconciliations
// @Param   recoID path string true "Reconciliation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Run not found"
// @Failure 500 {object} map[string]string "Failed to roll back reconciliation"
// @Security BearerAuth
// @Router /reconciliations/{recoID} [delete]
func (h *reconciliationHandler) rollbackRun(c *gin.Context) {
	recoID := c.Param("recoID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("reco_id", recoID))

	if err := h.recoService.RollbackRun(c.Request.Context(), recoID); err != nil {
		writeServiceError(c, logger, err, "Failed to roll back reconciliation")
		return
	}
	logger.Info("Reconciliation run rolled back")
	c.Status(http.StatusNoContent)
}

// vendorDetail godoc
// @Summary Drill into one vendor of a run
// @Description Returns the vendor's groups, the POs matched into them with their windows, and its transactions.
// @Tags reconciliations
// @Produce  json
// @Param   recoID path string true "Reconciliation ID"
// @Param   prefix path string true "Vendor prefix"
// @Success 200 {object} domain.VendorDetail
// @Failure 404 {object} map[string]string "Run or vendor not found"
// @Failure 500 {object} map[string]string "Failed to get vendor detail"
// @Security BearerAuth
// @Router /reconciliations/{recoID}/vendors/{prefix} [get]
func (h *reconciliationHandler) vendorDetail(c *gin.Context) {
	recoID := c.Param("recoID")
	prefix := c.Param("prefix")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("reco_id", recoID), slog.String("prefix", prefix))

	detail, err := h.recoService.VendorDetail(c.Request.Context(), recoID, prefix)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to get vendor detail")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// exportRun godoc
// @Summary Download a run as a workbook
// @Tags reconciliations
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   recoID path string true "Reconciliation ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Run not found"
// @Failure 500 {object} map[string]string "Failed to export reconciliation"
// @Security BearerAuth
// @Router /reconciliations/{recoID}/export [get]
func (h *reconciliationHandler) exportRun(c *gin.Context) {
	recoID := c.Param("recoID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("reco_id", recoID))

	data, err := h.recoService.ExportRun(c.Request.Context(), recoID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to export reconciliation")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporter.FileName(recoID)))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// assignChannel godoc
// @Summary Decide the channel of a pending consolidation group
// @Description Stores an override for every charge in the group and recomputes the run.
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   recoID path string true "Reconciliation ID"
// @Param   request body dto.AssignChannelRequest true "Decision"
// @Success 200 {object} dto.ReconciliationRunResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Run or pending group not found"
// @Failure 500 {object} map[string]string "Failed to assign channel"
// @Security BearerAuth
// @Router /reconciliations/{recoID}/consolidations [post]
func (h *reconciliationHandler) assignChannel(c *gin.Context) {
	recoID := c.Param("recoID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("reco_id", recoID))
	var req dto.AssignChannelRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	run, err := h.recoService.AssignChannel(c.Request.Context(), recoID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to assign channel")
		return
	}
	c.JSON(http.StatusOK, dto.ToReconciliationRunResponse(run))
}

// assignUnmapped godoc
// @Summary Map an unmapped description and recompute the run
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   recoID path string true "Reconciliation ID"
// @Param   request body dto.AssignUnmappedRequest true "Vendor for the description"
// @Success 200 {object} dto.ReconciliationRunResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Run not found"
// @Failure 500 {object} map[string]string "Failed to map description"
// @Security BearerAuth
// @Router /reconciliations/{recoID}/unmapped [post]
func (h *reconciliationHandler) assignUnmapped(c *gin.Context) {
	recoID := c.Param("recoID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("reco_id", recoID))
	var req dto.AssignUnmappedRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	run, err := h.recoService.AssignUnmapped(c.Request.Context(), recoID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to map description")
		return
	}
	c.JSON(http.StatusOK, dto.ToReconciliationRunResponse(run))
}
