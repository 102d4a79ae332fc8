package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
	"github.com/SscSPs/cc_reco_app/internal/dto"
	"github.com/SscSPs/cc_reco_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// importHandler handles purchase order and card transaction imports.
type importHandler struct {
	poService  portssvc.PurchaseOrderSvcFacade
	txnService portssvc.TransactionSvcFacade
}

func registerImportRoutes(rg *gin.RouterGroup, ps portssvc.PurchaseOrderSvcFacade, ts portssvc.TransactionSvcFacade) {
	h := &importHandler{poService: ps, txnService: ts}

	pos := rg.Group("/purchase-orders")
	{
		pos.POST("", h.importPurchaseOrders)
		pos.GET("/:poNumber/balance", h.getBalance)
		pos.DELETE("/batches/:batchID", h.rollbackPurchaseOrders)
	}
	txns := rg.Group("/cc-transactions")
	{
		txns.POST("", h.importTransactions)
		txns.DELETE("/batches/:batchID", h.rollbackTransactions)
	}
}

// importPurchaseOrders godoc
// @Summary Import purchase orders
// @Description Stores a set of POs in one transaction under one import batch. Any existing PO number rejects the whole set.
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   request body dto.CreatePurchaseOrdersRequest true "Purchase orders"
// @Success 201 {object} dto.ImportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "PO number already exists"
// @Failure 500 {object} map[string]string "Failed to import purchase orders"
// @Security BearerAuth
// @Router /purchase-orders [post]
func (h *importHandler) importPurchaseOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseOrdersRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	batchID, n, err := h.poService.ImportPurchaseOrders(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to import purchase orders")
		return
	}
	logger.Info("Purchase orders imported", slog.String("batch_id", batchID), slog.Int("count", n))
	c.JSON(http.StatusCreated, dto.ImportResponse{BatchID: batchID, Imported: n})
}

// rollbackPurchaseOrders godoc
// @Summary Roll back a purchase order import batch
// @Description Deletes every PO of the batch. Refused while any of them has deductions.
// @Tags purchase-orders
// @Produce  json
// @Param   batchID path string true "Import batch ID"
// @Success 200 {object} dto.RollbackResponse
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 409 {object} map[string]string "Batch has deductions"
// @Failure 500 {object} map[string]string "Failed to roll back purchase orders"
// @Security BearerAuth
// @Router /purchase-orders/batches/{batchID} [delete]
func (h *importHandler) rollbackPurchaseOrders(c *gin.Context) {
	batchID := c.Param("batchID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("batch_id", batchID))

	n, err := h.poService.RollbackBatch(c.Request.Context(), batchID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to roll back purchase orders")
		return
	}
	c.JSON(http.StatusOK, dto.RollbackResponse{BatchID: batchID, Deleted: n})
}

// getBalance godoc
// @Summary Get the ledger balance of a PO
// @Tags purchase-orders
// @Produce  json
// @Param   poNumber path string true "PO number"
// @Success 200 {object} domain.POBalance
// @Failure 404 {object} map[string]string "PO not found"
// @Failure 500 {object} map[string]string "Failed to get balance"
// @Security BearerAuth
// @Router /purchase-orders/{poNumber}/balance [get]
func (h *importHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	poNumber := c.Param("poNumber")

	bal, err := h.poService.GetBalance(c.Request.Context(), poNumber)
	if err != nil {
		writeServiceError(c, logger.With(slog.String("po_number", poNumber)), err, "Failed to get balance")
		return
	}
	c.JSON(http.StatusOK, bal)
}

// importTransactions godoc
// @Summary Import a card transaction batch
// @Description Stores already-parsed card charges. Reference ids are unique across batches.
// @Tags cc-transactions
// @Accept  json
// @Produce  json
// @Param   request body dto.ImportTransactionsRequest true "Batch"
// @Success 201 {object} dto.ImportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Reference id already exists"
// @Failure 500 {object} map[string]string "Failed to import transactions"
// @Security BearerAuth
// @Router /cc-transactions [post]
func (h *importHandler) importTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ImportTransactionsRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	n, err := h.txnService.ImportTransactions(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to import transactions")
		return
	}
	c.JSON(http.StatusCreated, dto.ImportResponse{BatchID: req.BatchID, Imported: n})
}

// rollbackTransactions godoc
// @Summary Roll back a card transaction batch
// @Description Deletes the batch. Refused while a reconciliation run owns it; roll the run back first.
// @Tags cc-transactions
// @Produce  json
// @Param   batchID path string true "Batch ID"
// @Success 200 {object} dto.RollbackResponse
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 409 {object} map[string]string "Batch claimed by a run"
// @Failure 500 {object} map[string]string "Failed to roll back transactions"
// @Security BearerAuth
// @Router /cc-transactions/batches/{batchID} [delete]
func (h *importHandler) rollbackTransactions(c *gin.Context) {
	batchID := c.Param("batchID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("batch_id", batchID))

	n, err := h.txnService.RollbackBatch(c.Request.Context(), batchID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to roll back transactions")
		return
	}
	c.JSON(http.StatusOK, dto.RollbackResponse{BatchID: batchID, Deleted: n})
}
