package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
	"github.com/SchoolRide-Platform/transport-service/internal/services"
	"github.com/SchoolRide-Platform/transport-service/internal/utils"
)

type SchoolHandler struct {
	BaseHandler
	schoolService services.SchoolService
}

func NewSchoolHandler(schoolService services.SchoolService, logger utils.Logger) *SchoolHandler {
	return &SchoolHandler{
		BaseHandler:   NewBaseHandler(logger),
		schoolService: schoolService,
	}
}

// CreateSchool handles POST /school/create
func (h *SchoolHandler) CreateSchool(c *gin.Context) {
	var req models.SchoolCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	school, err := h.schoolService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusCreated, "School created successfully", school)
}

// GetFilteredSchools handles GET /school/get-filtered
func (h *SchoolHandler) GetFilteredSchools(c *gin.Context) {
	filters, page, limit, ok := h.parseSchoolFilters(c)
	if !ok {
		return
	}

	schools, total, err := h.schoolService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondList(c, "Schools retrieved successfully", schools, models.NewPagination(page, limit, total))
}

// GetSchool handles GET /school/get/:id. The parameter is either the numeric
// primary key or the school code.
func (h *SchoolHandler) GetSchool(c *gin.Context) {
	raw := c.Param("id")

	var school *models.School
	var err error
	if id, parseErr := strconv.ParseUint(raw, 10, 32); parseErr == nil && id > 0 {
		school, err = h.schoolService.GetByID(c.Request.Context(), uint(id))
	} else {
		school, err = h.schoolService.GetByCode(c.Request.Context(), raw)
	}
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "School retrieved successfully", school)
}

// UpdateSchool handles PATCH /school/update/:id
func (h *SchoolHandler) UpdateSchool(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req models.SchoolUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	school, err := h.schoolService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "School updated successfully", school)
}

// DeleteSchool handles DELETE /school/delete/:id/:deleteType
func (h *SchoolHandler) DeleteSchool(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	deleteType := c.Param("deleteType")
	if deleteType != services.DeleteTypeSoft && deleteType != services.DeleteTypeHard {
		h.respondError(c, http.StatusBadRequest, "Invalid delete type. Use 'soft' or 'hard'")
		return
	}

	school, err := h.schoolService.Delete(c.Request.Context(), id, deleteType)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "School deleted successfully", school)
}

func (h *SchoolHandler) parseSchoolFilters(c *gin.Context) (repositories.SchoolFilters, int, int, bool) {
	var filters repositories.SchoolFilters

	page, limit, ok := h.parsePagination(c)
	if !ok {
		return filters, 0, 0, false
	}

	filters.SchoolType = queryString(c, "schoolType")
	filters.BoardType = queryString(c, "boardType")
	filters.City = c.Query("city")
	filters.State = c.Query("state")
	filters.Pincode = queryString(c, "pincode")
	filters.CreatedAfter = queryString(c, "createdAfter")
	filters.CreatedBefore = queryString(c, "createdBefore")
	filters.Search = c.Query("search")
	filters.SortBy = c.Query("sortBy")
	filters.SortOrder = c.Query("sortOrder")

	filters.IsActive = queryBool(c, "isActive")

	filters.Limit = limit
	filters.Offset = (page - 1) * limit

	return filters, page, limit, true
}
