package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"clinic-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSpecialtiesAPI(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("POST rejects a duplicate name regardless of case", func(t *testing.T) {
		first := performRequest(r, http.MethodPost, "/api/especialidades", gin.H{"name": "Cardiología"})
		assert.Equal(t, http.StatusCreated, first.Code)

		duplicate := performRequest(r, http.MethodPost, "/api/especialidades", gin.H{"name": "cardiología"})
		assert.Equal(t, http.StatusConflict, duplicate.Code)
		assert.Equal(t, "Specialty already exists", messageOf(t, duplicate))
	})

	t.Run("POST requires a name", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/api/especialidades", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Specialty name is required", messageOf(t, w))
	})

	t.Run("PUT renames and requires a name", func(t *testing.T) {
		derma := mustCreate[models.Specialty](t, r, "/api/especialidades", gin.H{"name": "Dermatología"})
		path := fmt.Sprintf("/api/especialidades/%d", derma.ID)

		w := performRequest(r, http.MethodPut, path, gin.H{"name": "Dermatología Pediátrica"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Dermatología Pediátrica", decode[models.Specialty](t, w).Name)

		w = performRequest(r, http.MethodPut, path, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Name is required to update Specialty", messageOf(t, w))

		w = performRequest(r, http.MethodPut, path, gin.H{"name": "CARDIOLOGÍA"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("PUT and DELETE unknown specialty", func(t *testing.T) {
		w := performRequest(r, http.MethodPut, "/api/especialidades/999999", gin.H{"name": "Oncología"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Specialty not found", messageOf(t, w))

		w = performRequest(r, http.MethodDelete, "/api/especialidades/999999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GET lists in insertion order", func(t *testing.T) {
		list := decode[[]models.Specialty](t, performRequest(r, http.MethodGet, "/api/especialidades", nil))
		names := make([]string, 0, len(list))
		for _, s := range list {
			names = append(names, s.Name)
		}
		assert.Equal(t, []string{"Cardiología", "Dermatología Pediátrica"}, names)
	})
}
