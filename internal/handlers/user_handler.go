package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
	"github.com/SchoolRide-Platform/transport-service/internal/services"
	"github.com/SchoolRide-Platform/transport-service/internal/utils"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(userService services.UserService, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userService: userService,
	}
}

// CreateUser handles POST /users/create
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusCreated, "User created successfully", user)
}

// GetAllUsers handles GET /users/get-all
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	filters, page, limit, ok := h.parseUserFilters(c)
	if !ok {
		return
	}

	users, total, err := h.userService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondList(c, "Users retrieved successfully", users, models.NewPagination(page, limit, total))
}

// GetUser handles GET /users/get/:uuid
func (h *UserHandler) GetUser(c *gin.Context) {
	userUUID := h.parseUUIDParam(c, "uuid")
	if userUUID == "" {
		return
	}

	user, err := h.userService.GetByUUID(c.Request.Context(), userUUID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "User retrieved successfully", user)
}

// UpdateUser handles PATCH /users/update/:uuid
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userUUID := h.parseUUIDParam(c, "uuid")
	if userUUID == "" {
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.userService.Update(c.Request.Context(), userUUID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser handles DELETE /users/delete/:uuid/:deleteType
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userUUID := h.parseUUIDParam(c, "uuid")
	if userUUID == "" {
		return
	}

	deleteType := c.Param("deleteType")
	if deleteType != services.DeleteTypeSoft && deleteType != services.DeleteTypeHard {
		h.respondError(c, http.StatusBadRequest, "Invalid delete type. Use 'soft' or 'hard'")
		return
	}

	user, err := h.userService.Delete(c.Request.Context(), userUUID, deleteType)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.respondSuccess(c, http.StatusOK, "User deleted successfully", user)
}

func (h *UserHandler) parseUserFilters(c *gin.Context) (repositories.UserFilters, int, int, bool) {
	var filters repositories.UserFilters

	page, limit, ok := h.parsePagination(c)
	if !ok {
		return filters, 0, 0, false
	}

	filters.UserType = queryString(c, "userType")
	filters.Gender = queryString(c, "gender")
	filters.CreatedAfter = queryString(c, "createdAfter")
	filters.CreatedBefore = queryString(c, "createdBefore")
	filters.Search = c.Query("search")
	filters.SortBy = c.Query("sortBy")
	filters.SortOrder = c.Query("sortOrder")

	filters.IsActive = queryBool(c, "isActive")
	filters.IsVerified = queryBool(c, "isVerified")

	filters.Limit = limit
	filters.Offset = (page - 1) * limit

	return filters, page, limit, true
}
