package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires every route of the clinic API. Resource paths keep their
// Spanish names; bodies use English field names.
func NewRouter(h *Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(log), Recovery(log))

	api := r.Group("/api")

	api.GET("/doctores", h.GetAllDoctors)
	api.POST("/doctores", h.InsertDoctor)
	api.PUT("/doctores/:id", h.UpdateDoctorByID)
	api.DELETE("/doctores/:id", h.DeleteDoctorByID)

	api.GET("/pacientes", h.GetAllPatients)
	api.POST("/pacientes", h.InsertPatient)
	api.PUT("/pacientes/:id", h.UpdatePatientByID)
	api.DELETE("/pacientes/:id", h.DeletePatientByID)

	api.GET("/medicamentos", h.GetAllMedicines)
	api.POST("/medicamentos", h.InsertMedicine)
	api.PUT("/medicamentos/:id", h.UpdateMedicineByID)
	api.DELETE("/medicamentos/:id", h.DeleteMedicineByID)

	api.GET("/especialidades", h.GetAllSpecialties)
	api.POST("/especialidades", h.InsertSpecialty)
	api.PUT("/especialidades/:id", h.UpdateSpecialtyByID)
	api.DELETE("/especialidades/:id", h.DeleteSpecialtyByID)

	api.POST("/run-tests", h.RunTests)
	api.GET("/test-logs", h.GetTestLogs)
	api.GET("/test-logs/stats", h.GetTestStats)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
	return r
}
