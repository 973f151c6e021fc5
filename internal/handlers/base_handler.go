package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/services"
	"github.com/SchoolRide-Platform/transport-service/internal/utils"
	"github.com/SchoolRide-Platform/transport-service/internal/validator"
)

// BaseHandler carries the shared response and parsing helpers. Every
// response goes out in the {success, message, data?, pagination?} envelope.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// LogRequest logs with the request-scoped logger (carries request_id)
func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.LoggerFromContext(c, h.logger).Info(msg, args...)
}

func (h *BaseHandler) respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func (h *BaseHandler) respondList(c *gin.Context, message string, data interface{}, pagination *models.Pagination) {
	c.JSON(http.StatusOK, models.APIResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

func (h *BaseHandler) respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIResponse{
		Success: false,
		Message: message,
	})
}

// handleServiceError maps service-layer failures onto HTTP status codes:
// validation to 400, missing records to 404, uniqueness conflicts to 409,
// everything else to an opaque 500.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case isValidationError(err):
		verrs := asValidationErrors(err)
		h.respondError(c, http.StatusBadRequest, verrs.First())
	case services.IsNotFound(err):
		h.respondError(c, http.StatusNotFound, err.Error())
	case services.IsConflict(err):
		h.respondError(c, http.StatusConflict, err.Error())
	default:
		utils.LoggerFromContext(c, h.logger).Error("Unhandled service error",
			"error", err,
			"path", c.FullPath())
		h.respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func isValidationError(err error) bool {
	_, ok := err.(validator.ValidationErrors)
	return ok
}

func asValidationErrors(err error) validator.ValidationErrors {
	verrs, _ := err.(validator.ValidationErrors)
	return verrs
}

// parseIDParam reads a positive integer path parameter. On failure it writes
// a 400 response and returns 0; callers must bail out on 0.
func (h *BaseHandler) parseIDParam(c *gin.Context, name string) uint {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		h.respondError(c, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0
	}
	return uint(id)
}

// parseUUIDParam reads and validates a UUID path parameter. On failure it
// writes a 400 response and returns "".
func (h *BaseHandler) parseUUIDParam(c *gin.Context, name string) string {
	raw := c.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid UUID format")
		return ""
	}
	return raw
}

// parsePagination reads page and limit query parameters. Page defaults to 1,
// limit to 10 with a hard cap of 100. Non-numeric or out-of-range values
// produce a 400; ok reports whether parsing succeeded.
func (h *BaseHandler) parsePagination(c *gin.Context) (page, limit int, ok bool) {
	page, limit = 1, 10

	if raw := c.Query("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			h.respondError(c, http.StatusBadRequest, "page must be a positive integer")
			return 0, 0, false
		}
		page = v
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 100 {
			h.respondError(c, http.StatusBadRequest, "limit must be between 1 and 100")
			return 0, 0, false
		}
		limit = v
	}

	return page, limit, true
}

// Query parameter readers for list filters. Absent or empty parameters
// return nil. Boolean parameters treat the literal "true" as true and any
// other present value as false; numeric parameters that do not parse are
// ignored rather than rejected, a list request never fails on a filter.

func queryString(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}

func queryBool(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v := raw == "true"
	return &v
}

func queryInt(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryFloat(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryUint(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}
