package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cc_reco_app/internal/core/ports/services"
	"github.com/SscSPs/cc_reco_app/internal/dto"
	"github.com/SscSPs/cc_reco_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// masterDataHandler handles HTTP requests for vendors and description mappings.
type masterDataHandler struct {
	vendorService  portssvc.VendorSvcFacade
	mappingService portssvc.MappingSvcFacade
}

func newMasterDataHandler(vs portssvc.VendorSvcFacade, ms portssvc.MappingSvcFacade) *masterDataHandler {
	return &masterDataHandler{vendorService: vs, mappingService: ms}
}

// registerMasterDataRoutes registers vendor and mapping routes.
func registerMasterDataRoutes(rg *gin.RouterGroup, vs portssvc.VendorSvcFacade, ms portssvc.MappingSvcFacade) {
	h := newMasterDataHandler(vs, ms)

	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
		vendors.PUT("/:prefix/:channel", h.updateVendor)
	}
	mappings := rg.Group("/mappings")
	{
		mappings.POST("", h.createMapping)
		mappings.GET("", h.listMappings)
	}
}

// createVendor godoc
// @Summary Create a vendor master row
// @Description Adds one vendor row. A COMMON vendor has one row per channel.
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Prefix and channel already exist"
// @Failure 500 {object} map[string]string "Failed to create vendor"
// @Security BearerAuth
// @Router /vendors [post]
func (h *masterDataHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVendorRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create vendor")
		return
	}

	logger.Info("Vendor created successfully", slog.String("prefix", vendor.Prefix))
	c.JSON(http.StatusCreated, dto.ToVendorResponse(*vendor))
}

// noChannel is the path placeholder for a vendor's channel-less row.
const noChannel = "-"

// updateVendor godoc
// @Summary Update a vendor master row
// @Description Replaces name, category, payment terms and fee rate of one row. Use "-" as channel for the channel-less row.
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   prefix path string true "Vendor prefix"
// @Param   channel path string true "Channel (A, M or -)"
// @Param   vendor body dto.UpdateVendorRequest true "Vendor details"
// @Success 200 {object} dto.VendorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Vendor row not found"
// @Failure 500 {object} map[string]string "Failed to update vendor"
// @Security BearerAuth
// @Router /vendors/{prefix}/{channel} [put]
func (h *masterDataHandler) updateVendor(c *gin.Context) {
	prefix := c.Param("prefix")
	channel := c.Param("channel")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("prefix", prefix), slog.String("channel", channel))
	if channel == noChannel {
		channel = ""
	}

	var req dto.UpdateVendorRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), prefix, channel, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update vendor")
		return
	}

	logger.Info("Vendor updated successfully")
	c.JSON(http.StatusOK, dto.ToVendorResponse(*vendor))
}

// listVendors godoc
// @Summary List the vendor master
// @Tags master-data
// @Produce  json
// @Success 200 {array} dto.VendorResponse
// @Failure 500 {object} map[string]string "Failed to list vendors"
// @Security BearerAuth
// @Router /vendors [get]
func (h *masterDataHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vendors, err := h.vendorService.ListVendors(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list vendors")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVendorResponse(vendors))
}

// createMapping godoc
// @Summary Map a card description to a vendor
// @Description Appends a description mapping. Existing rows are never rewritten.
// @Tags master-data
// @Accept  json
// @Produce  json
// @Param   mapping body dto.CreateMappingRequest true "Mapping"
// @Success 201 {object} dto.MappingResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown prefix"
// @Failure 500 {object} map[string]string "Failed to create mapping"
// @Security BearerAuth
// @Router /mappings [post]
func (h *masterDataHandler) createMapping(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMappingRequest
	if !bindJSON(c, logger, &req) {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	m, err := h.mappingService.AssignVendor(c.Request.Context(), req.Description, req.Prefix, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create mapping")
		return
	}
	c.JSON(http.StatusCreated, dto.MappingResponse{Seq: m.Seq, Description: m.Description, Prefix: m.Prefix})
}

// listMappings godoc
// @Summary List description mappings in storage order
// @Tags master-data
// @Produce  json
// @Success 200 {array} dto.MappingResponse
// @Failure 500 {object} map[string]string "Failed to list mappings"
// @Security BearerAuth
// @Router /mappings [get]
func (h *masterDataHandler) listMappings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	mappings, err := h.mappingService.ListMappings(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list mappings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMappingResponse(mappings))
}
