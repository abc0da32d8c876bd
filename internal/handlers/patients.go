package handlers

import "github.com/gin-gonic/gin"

func (h *Handler) GetAllPatients(c *gin.Context)    { listAll(h, c, h.patients) }
func (h *Handler) InsertPatient(c *gin.Context)     { create(h, c, h.patients) }
func (h *Handler) UpdatePatientByID(c *gin.Context) { update(h, c, h.patients) }
func (h *Handler) DeletePatientByID(c *gin.Context) { remove(h, c, h.patients) }
