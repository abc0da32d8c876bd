package handlers

import "github.com/gin-gonic/gin"

func (h *Handler) GetAllDoctors(c *gin.Context)    { listAll(h, c, h.doctors) }
func (h *Handler) InsertDoctor(c *gin.Context)     { create(h, c, h.doctors) }
func (h *Handler) UpdateDoctorByID(c *gin.Context) { update(h, c, h.doctors) }
func (h *Handler) DeleteDoctorByID(c *gin.Context) { remove(h, c, h.doctors) }
