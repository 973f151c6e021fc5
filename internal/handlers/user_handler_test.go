package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/SchoolRide-Platform/transport-service/internal/models"
	"github.com/SchoolRide-Platform/transport-service/internal/repositories"
	"github.com/SchoolRide-Platform/transport-service/internal/services"
	"github.com/SchoolRide-Platform/transport-service/internal/utils"
)

type stubUserService struct {
	createFn func(ctx context.Context, req *models.UserCreateRequest) (*models.User, error)
	getFn    func(ctx context.Context, uuid string) (*models.User, error)
	listFn   func(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error)
	updateFn func(ctx context.Context, uuid string, req *models.UserUpdateRequest) (*models.User, error)
	deleteFn func(ctx context.Context, uuid string, deleteType string) (*models.User, error)
}

func (s *stubUserService) Create(ctx context.Context, req *models.UserCreateRequest) (*models.User, error) {
	return s.createFn(ctx, req)
}

func (s *stubUserService) GetByUUID(ctx context.Context, uuid string) (*models.User, error) {
	return s.getFn(ctx, uuid)
}

func (s *stubUserService) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	return s.listFn(ctx, filters)
}

func (s *stubUserService) Update(ctx context.Context, uuid string, req *models.UserUpdateRequest) (*models.User, error) {
	return s.updateFn(ctx, uuid, req)
}

func (s *stubUserService) Delete(ctx context.Context, uuid string, deleteType string) (*models.User, error) {
	return s.deleteFn(ctx, uuid, deleteType)
}

func newUserRouter(svc services.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler := NewUserHandler(svc, logger)

	router := gin.New()
	users := router.Group("/users")
	{
		users.POST("/create", handler.CreateUser)
		users.GET("/get-all", handler.GetAllUsers)
		users.GET("/get/:uuid", handler.GetUser)
		users.PATCH("/update/:uuid", handler.UpdateUser)
		users.DELETE("/delete/:uuid/:deleteType", handler.DeleteUser)
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not the envelope: %v (body %s)", err, w.Body.String())
	}
	return w, resp
}

func TestCreateUserInvalidPayload(t *testing.T) {
	router := newUserRouter(&stubUserService{})

	w, resp := doRequest(t, router, http.MethodPost, "/users/create", "{not json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if resp.Success || resp.Message != "Invalid request payload" {
		t.Errorf("envelope = %+v", resp)
	}
}

func TestCreateUserSuccess(t *testing.T) {
	svc := &stubUserService{
		createFn: func(_ context.Context, req *models.UserCreateRequest) (*models.User, error) {
			return &models.User{UUID: "u-1", Email: req.Email}, nil
		},
	}
	router := newUserRouter(svc)

	w, resp := doRequest(t, router, http.MethodPost, "/users/create",
		`{"email":"a@example.com","phoneNumber":"9876543210","firstName":"A","lastName":"B"}`)
	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if !resp.Success || resp.Message != "User created successfully" {
		t.Errorf("envelope = %+v", resp)
	}
	if resp.Data == nil {
		t.Error("data should carry the created user")
	}
}

func TestCreateUserConflict(t *testing.T) {
	svc := &stubUserService{
		createFn: func(context.Context, *models.UserCreateRequest) (*models.User, error) {
			return nil, services.NewConflictError("Email already exists")
		},
	}
	router := newUserRouter(svc)

	w, resp := doRequest(t, router, http.MethodPost, "/users/create",
		`{"email":"a@example.com","phoneNumber":"9876543210","firstName":"A","lastName":"B"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
	if resp.Message != "Email already exists" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestGetUserInvalidUUID(t *testing.T) {
	router := newUserRouter(&stubUserService{})

	w, resp := doRequest(t, router, http.MethodGet, "/users/get/not-a-uuid", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if resp.Message != "Invalid UUID format" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestGetUserNotFound(t *testing.T) {
	svc := &stubUserService{
		getFn: func(context.Context, string) (*models.User, error) {
			return nil, services.ErrUserNotFound
		},
	}
	router := newUserRouter(svc)

	w, resp := doRequest(t, router, http.MethodGet, "/users/get/3f2c1a4e-0000-4000-8000-000000000001", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if resp.Message != "User not found" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestGetAllUsersFilterParsing(t *testing.T) {
	var captured repositories.UserFilters
	svc := &stubUserService{
		listFn: func(_ context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
			captured = filters
			return []*models.User{{UUID: "u-1"}}, 25, nil
		},
	}
	router := newUserRouter(svc)

	w, resp := doRequest(t, router, http.MethodGet,
		"/users/get-all?page=3&limit=10&userType=driver&isActive=true&search=rahul&sortBy=email&sortOrder=asc", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %+v)", w.Code, resp)
	}

	if captured.UserType == nil || *captured.UserType != "driver" {
		t.Error("userType filter not parsed")
	}
	if captured.IsActive == nil || !*captured.IsActive {
		t.Error("isActive filter not parsed")
	}
	if captured.Search != "rahul" || captured.SortBy != "email" || captured.SortOrder != "asc" {
		t.Errorf("search/sort wrong: %+v", captured)
	}
	if captured.Limit != 10 || captured.Offset != 20 {
		t.Errorf("limit/offset = %d/%d, want 10/20", captured.Limit, captured.Offset)
	}

	if resp.Pagination == nil {
		t.Fatal("pagination block missing")
	}
	if resp.Pagination.Page != 3 || resp.Pagination.Total != 25 || resp.Pagination.TotalPages != 3 {
		t.Errorf("pagination = %+v", resp.Pagination)
	}
}

func TestGetAllUsersBadLimit(t *testing.T) {
	router := newUserRouter(&stubUserService{})

	w, resp := doRequest(t, router, http.MethodGet, "/users/get-all?limit=500", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if resp.Message != "limit must be between 1 and 100" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestGetAllUsersBoolCoercion(t *testing.T) {
	var captured repositories.UserFilters
	svc := &stubUserService{
		listFn: func(_ context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
			captured = filters
			return nil, 0, nil
		},
	}
	router := newUserRouter(svc)

	w, _ := doRequest(t, router, http.MethodGet, "/users/get-all?isActive=maybe", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if captured.IsActive == nil || *captured.IsActive {
		t.Error("any value other than \"true\" should filter on isActive=false")
	}

	w, _ = doRequest(t, router, http.MethodGet, "/users/get-all", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if captured.IsActive != nil {
		t.Error("absent isActive should not filter at all")
	}
}

func TestDeleteUserInvalidType(t *testing.T) {
	router := newUserRouter(&stubUserService{})

	w, resp := doRequest(t, router, http.MethodDelete, "/users/delete/3f2c1a4e-0000-4000-8000-000000000001/purge", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if resp.Message != "Invalid delete type. Use 'soft' or 'hard'" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestDeleteUserSuccess(t *testing.T) {
	var gotUUID, gotType string
	svc := &stubUserService{
		deleteFn: func(_ context.Context, uuid, deleteType string) (*models.User, error) {
			gotUUID, gotType = uuid, deleteType
			return &models.User{UUID: uuid, IsActive: false}, nil
		},
	}
	router := newUserRouter(svc)

	w, resp := doRequest(t, router, http.MethodDelete, "/users/delete/3f2c1a4e-0000-4000-8000-000000000001/soft", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !resp.Success || resp.Message != "User deleted successfully" {
		t.Errorf("envelope = %+v", resp)
	}
	if resp.Data == nil {
		t.Error("data should carry the deleted row")
	}
	if gotUUID != "3f2c1a4e-0000-4000-8000-000000000001" || gotType != "soft" {
		t.Errorf("service called with %q/%q", gotUUID, gotType)
	}
}
