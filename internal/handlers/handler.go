package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"clinic-api/internal/apperr"
	"clinic-api/internal/models"
	"clinic-api/internal/testrun"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Resource is the repository surface a CRUD route family needs. In is the
// create body, P the update body.
type Resource[T, In, P any] interface {
	ListAll(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, in In) (T, error)
	Update(ctx context.Context, id int64, patch P) (T, error)
	Remove(ctx context.Context, id int64) (T, error)
	NotFound() error
}

type (
	DoctorResource    = Resource[models.Doctor, models.DoctorInput, models.DoctorPatch]
	PatientResource   = Resource[models.Patient, models.PatientInput, models.PatientPatch]
	MedicineResource  = Resource[models.Medicine, models.MedicineInput, models.MedicinePatch]
	SpecialtyResource = Resource[models.Specialty, models.SpecialtyInput, models.SpecialtyInput]
)

// TestRunner is the diagnostic test invocation service.
type TestRunner interface {
	Run(ctx context.Context, failTests []string) (testrun.Result, error)
	Logs() ([]testrun.LogEntry, error)
	Stats() (testrun.Stats, error)
}

// Handler serves the clinic REST API.
type Handler struct {
	doctors     DoctorResource
	patients    PatientResource
	medicines   MedicineResource
	specialties SpecialtyResource
	tests       TestRunner
	log         *zap.Logger
}

type Deps struct {
	Doctors     DoctorResource
	Patients    PatientResource
	Medicines   MedicineResource
	Specialties SpecialtyResource
	Tests       TestRunner
	Logger      *zap.Logger
}

func New(d Deps) *Handler {
	return &Handler{
		doctors:     d.Doctors,
		patients:    d.Patients,
		medicines:   d.Medicines,
		specialties: d.Specialties,
		tests:       d.Tests,
		log:         d.Logger,
	}
}

const msgInvalidBody = "Invalid request body"

// bindJSON decodes the request body into obj. An empty body decodes as {}.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return apperr.Validation(msgInvalidBody)
	}
	return nil
}

// parseID reads the :id path parameter; surrounding whitespace is ignored.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		h.log.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(status, gin.H{"message": "Internal server error", "details": err.Error()})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}

func listAll[T, In, P any](h *Handler, c *gin.Context, r Resource[T, In, P]) {
	items, err := r.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func create[T, In, P any](h *Handler, c *gin.Context, r Resource[T, In, P]) {
	var in In
	if err := bindJSON(c, &in); err != nil {
		h.respondError(c, err)
		return
	}
	created, err := r.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func update[T, In, P any](h *Handler, c *gin.Context, r Resource[T, In, P]) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, r.NotFound())
		return
	}
	var patch P
	if err := bindJSON(c, &patch); err != nil {
		// an unknown id is reported as such whatever the body holds
		if _, getErr := r.Get(c.Request.Context(), id); getErr != nil {
			h.respondError(c, getErr)
			return
		}
		h.respondError(c, err)
		return
	}
	updated, err := r.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func remove[T, In, P any](h *Handler, c *gin.Context, r Resource[T, In, P]) {
	id, ok := parseID(c)
	if !ok {
		h.respondError(c, r.NotFound())
		return
	}
	removed, err := r.Remove(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, removed)
}
