package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/reports"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
	"github.com/SchoolRide-Platform/transport-service/internal/services"
	"github.com/SchoolRide-Platform/transport-service/internal/utils"
)

type VehicleHandler struct {
	BaseHandler
	vehicleService services.VehicleService
}

func NewVehicleHandler(vehicleService services.VehicleService, logger utils.Logger) *VehicleHandler {
	return &VehicleHandler{
		BaseHandler:    NewBaseHandler(logger),
		vehicleService: vehicleService,
	}
}

// CreateVehicle handles POST /vehicle/create
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req models.VehicleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusCreated, "Vehicle created successfully", vehicle)
}

// GetAllVehicles handles GET /vehicle/get-all
func (h *VehicleHandler) GetAllVehicles(c *gin.Context) {
	filters, page, limit, ok := h.parseVehicleFilters(c)
	if !ok {
		return
	}

	vehicles, total, err := h.vehicleService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondList(c, "Vehicles retrieved successfully", vehicles, models.NewPagination(page, limit, total))
}

// GetVehicle handles GET /vehicle/get/:id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "Vehicle retrieved successfully", vehicle)
}

// UpdateVehicle handles PATCH /vehicle/update/:id
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req models.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "Vehicle updated successfully", vehicle)
}

// DeleteVehicle handles DELETE /vehicle/delete/:id/:deleteType
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	deleteType := c.Param("deleteType")
	if deleteType != services.DeleteTypeSoft && deleteType != services.DeleteTypeHard {
		h.respondError(c, http.StatusBadRequest, "Invalid delete type. Use 'soft' or 'hard'")
		return
	}

	vehicle, err := h.vehicleService.Delete(c.Request.Context(), id, deleteType)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "Vehicle deleted successfully", vehicle)
}

// ExportVehicles handles GET /vehicle/export
func (h *VehicleHandler) ExportVehicles(c *gin.Context) {
	filters, _, _, ok := h.parseVehicleFilters(c)
	if !ok {
		return
	}
	filters.Limit = exportBatchSize
	filters.Offset = 0

	vehicles, _, err := h.vehicleService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	workbook, err := reports.VehiclesWorkbook(vehicles)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("vehicles_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		utils.LoggerFromContext(c, h.logger).Error("Failed to stream vehicle export", "error", err)
	}
}

func (h *VehicleHandler) parseVehicleFilters(c *gin.Context) (repositories.VehicleFilters, int, int, bool) {
	var filters repositories.VehicleFilters

	page, limit, ok := h.parsePagination(c)
	if !ok {
		return filters, 0, 0, false
	}

	filters.VehicleType = queryString(c, "vehicleType")
	filters.VerificationStatus = queryString(c, "verificationStatus")
	filters.Make = c.Query("make")
	filters.Model = c.Query("model")
	filters.Color = c.Query("color")
	filters.CreatedAfter = queryString(c, "createdAfter")
	filters.CreatedBefore = queryString(c, "createdBefore")
	filters.Search = c.Query("search")
	filters.SortBy = c.Query("sortBy")
	filters.SortOrder = c.Query("sortOrder")

	filters.DriverID = queryUint(c, "driverId")
	filters.IsActive = queryBool(c, "isActive")
	filters.YearFrom = queryInt(c, "yearFrom")
	filters.YearTo = queryInt(c, "yearTo")
	filters.CapacityFrom = queryInt(c, "capacityFrom")
	filters.CapacityTo = queryInt(c, "capacityTo")

	filters.Limit = limit
	filters.Offset = (page - 1) * limit

	return filters, page, limit, true
}
