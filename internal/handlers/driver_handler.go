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

// exportBatchSize caps how many rows an xlsx export pulls in one query
const exportBatchSize = 10000

type DriverHandler struct {
	BaseHandler
	driverService services.DriverService
}

func NewDriverHandler(driverService services.DriverService, logger utils.Logger) *DriverHandler {
	return &DriverHandler{
		BaseHandler:   NewBaseHandler(logger),
		driverService: driverService,
	}
}

// CreateDriver handles POST /driver/create
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req models.DriverCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	driver, err := h.driverService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusCreated, "Driver created successfully", driver)
}

// GetAllDrivers handles GET /driver/get-all
func (h *DriverHandler) GetAllDrivers(c *gin.Context) {
	filters, page, limit, ok := h.parseDriverFilters(c)
	if !ok {
		return
	}

	drivers, total, err := h.driverService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondList(c, "Drivers retrieved successfully", drivers, models.NewPagination(page, limit, total))
}

// GetDriver handles GET /driver/get/:uuid where uuid is the owning user's UUID
func (h *DriverHandler) GetDriver(c *gin.Context) {
	userUUID := h.parseUUIDParam(c, "uuid")
	if userUUID == "" {
		return
	}

	driver, err := h.driverService.GetByUserUUID(c.Request.Context(), userUUID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "Driver retrieved successfully", driver)
}

// UpdateDriver handles PATCH /driver/update/:uuid
func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	userUUID := h.parseUUIDParam(c, "uuid")
	if userUUID == "" {
		return
	}

	var req models.DriverUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	driver, err := h.driverService.Update(c.Request.Context(), userUUID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "Driver updated successfully", driver)
}

// DeleteDriver handles DELETE /driver/delete/:uuid/:mode
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	userUUID := h.parseUUIDParam(c, "uuid")
	if userUUID == "" {
		return
	}

	mode := c.Param("mode")
	if mode != services.DeleteTypeSoft && mode != services.DeleteTypeHard {
		h.respondError(c, http.StatusBadRequest, "Invalid delete type. Use 'soft' or 'hard'")
		return
	}

	driver, err := h.driverService.Delete(c.Request.Context(), userUUID, mode)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "Driver deleted successfully", driver)
}

// ExportDrivers handles GET /driver/export, streaming an xlsx workbook of
// the drivers matching the same filters as the list endpoint.
func (h *DriverHandler) ExportDrivers(c *gin.Context) {
	filters, _, _, ok := h.parseDriverFilters(c)
	if !ok {
		return
	}
	filters.Limit = exportBatchSize
	filters.Offset = 0

	drivers, _, err := h.driverService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	workbook, err := reports.DriversWorkbook(drivers)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("drivers_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		utils.LoggerFromContext(c, h.logger).Error("Failed to stream driver export", "error", err)
	}
}

func (h *DriverHandler) parseDriverFilters(c *gin.Context) (repositories.DriverFilters, int, int, bool) {
	var filters repositories.DriverFilters

	page, limit, ok := h.parsePagination(c)
	if !ok {
		return filters, 0, 0, false
	}

	filters.Status = queryString(c, "status")
	filters.BackgroundCheckStatus = queryString(c, "backgroundCheckStatus")
	filters.CreatedAfter = queryString(c, "createdAfter")
	filters.CreatedBefore = queryString(c, "createdBefore")
	filters.Search = c.Query("search")
	filters.SortBy = c.Query("sortBy")
	filters.SortOrder = c.Query("sortOrder")

	filters.IsActive = queryBool(c, "isActive")
	filters.IsOnline = queryBool(c, "isOnline")

	// rating is a lower bound; ratingFrom is accepted as an alias
	filters.RatingFrom = queryFloat(c, "rating")
	if filters.RatingFrom == nil {
		filters.RatingFrom = queryFloat(c, "ratingFrom")
	}

	filters.TotalRidesFrom = queryInt(c, "totalRidesFrom")
	filters.TotalRidesTo = queryInt(c, "totalRidesTo")
	filters.TotalEarningsFrom = queryFloat(c, "totalEarningsFrom")
	filters.TotalEarningsTo = queryFloat(c, "totalEarningsTo")

	filters.Limit = limit
	filters.Offset = (page - 1) * limit

	return filters, page, limit, true
}
