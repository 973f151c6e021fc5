package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SchoolRide-Platform/transport-service/internal/services"
	"github.com/SchoolRide-Platform/transport-service/internal/utils"
)

type HandlerManager struct {
	userHandler    *UserHandler
	driverHandler  *DriverHandler
	vehicleHandler *VehicleHandler
	schoolHandler  *SchoolHandler

	serviceManager services.ServiceManager
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		userHandler:    NewUserHandler(serviceManager.User(), logger),
		driverHandler:  NewDriverHandler(serviceManager.Driver(), logger),
		vehicleHandler: NewVehicleHandler(serviceManager.Vehicle(), logger),
		schoolHandler:  NewSchoolHandler(serviceManager.School(), logger),
		serviceManager: serviceManager,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", hm.healthCheck)

	users := router.Group("/users")
	{
		users.POST("/create", hm.userHandler.CreateUser)
		users.GET("/get-all", hm.userHandler.GetAllUsers)
		users.GET("/get/:uuid", hm.userHandler.GetUser)
		users.PATCH("/update/:uuid", hm.userHandler.UpdateUser)
		users.DELETE("/delete/:uuid/:deleteType", hm.userHandler.DeleteUser)
	}

	driver := router.Group("/driver")
	{
		driver.POST("/create", hm.driverHandler.CreateDriver)
		driver.GET("/get-all", hm.driverHandler.GetAllDrivers)
		driver.GET("/export", hm.driverHandler.ExportDrivers)
		driver.GET("/get/:uuid", hm.driverHandler.GetDriver)
		driver.PATCH("/update/:uuid", hm.driverHandler.UpdateDriver)
		driver.DELETE("/delete/:uuid/:mode", hm.driverHandler.DeleteDriver)
	}

	vehicle := router.Group("/vehicle")
	{
		vehicle.POST("/create", hm.vehicleHandler.CreateVehicle)
		vehicle.GET("/get-all", hm.vehicleHandler.GetAllVehicles)
		vehicle.GET("/export", hm.vehicleHandler.ExportVehicles)
		vehicle.GET("/get/:id", hm.vehicleHandler.GetVehicle)
		vehicle.PATCH("/update/:id", hm.vehicleHandler.UpdateVehicle)
		vehicle.DELETE("/delete/:id/:deleteType", hm.vehicleHandler.DeleteVehicle)
	}

	school := router.Group("/school")
	{
		school.POST("/create", hm.schoolHandler.CreateSchool)
		school.GET("/get-filtered", hm.schoolHandler.GetFilteredSchools)
		school.GET("/get/:id", hm.schoolHandler.GetSchool)
		school.PATCH("/update/:id", hm.schoolHandler.UpdateSchool)
		school.DELETE("/delete/:id/:deleteType", hm.schoolHandler.DeleteSchool)
	}
}

// healthCheck reports service and dependency health
func (hm *HandlerManager) healthCheck(c *gin.Context) {
	status := http.StatusOK
	health := gin.H{
		"status":    "healthy",
		"service":   "transport-service",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
		status = http.StatusServiceUnavailable
		health["status"] = "unhealthy"
		health["error"] = err.Error()
	}

	c.JSON(status, health)
}
