package handlers

import "github.com/gin-gonic/gin"

func (h *Handler) GetAllMedicines(c *gin.Context)    { listAll(h, c, h.medicines) }
func (h *Handler) InsertMedicine(c *gin.Context)     { create(h, c, h.medicines) }
func (h *Handler) UpdateMedicineByID(c *gin.Context) { update(h, c, h.medicines) }
func (h *Handler) DeleteMedicineByID(c *gin.Context) { remove(h, c, h.medicines) }
