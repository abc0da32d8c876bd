package handlers

import "github.com/gin-gonic/gin"

func (h *Handler) GetAllSpecialties(c *gin.Context)   { listAll(h, c, h.specialties) }
func (h *Handler) InsertSpecialty(c *gin.Context)     { create(h, c, h.specialties) }
func (h *Handler) UpdateSpecialtyByID(c *gin.Context) { update(h, c, h.specialties) }
func (h *Handler) DeleteSpecialtyByID(c *gin.Context) { remove(h, c, h.specialties) }
