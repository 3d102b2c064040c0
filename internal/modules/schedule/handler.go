package schedule

import (
	"net/http"
	"strconv"

	"fieldserve/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/schedules", h.CreateSlot)
	rg.GET("/schedules", h.ListSlots)
	rg.GET("/schedules/:id", h.GetSlot)
	rg.GET("/schedules/technician/:technicianId", h.ListByTechnician)
	rg.PATCH("/schedules/:id", h.UpdateSlot)
	rg.PATCH("/schedules/:id/status", h.SetStatus)
	rg.DELETE("/schedules/:id", h.DeleteSlot)
	rg.POST("/schedules/:id/technicians", h.Attach)
	rg.DELETE("/schedules/:id/technicians/:technicianId", h.Detach)
}

func (h *Handler) CreateSlot(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	slot, err := h.service.CreateSlot(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, slot)
}

func (h *Handler) GetSlot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	slot, err := h.service.GetSlot(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot)
}

func (h *Handler) ListSlots(c *gin.Context) {
	availableOnly := c.Query("available") == "true"

	out, err := h.service.ListSlots(c.Request.Context(), c.Query("day"), availableOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) ListByTechnician(c *gin.Context) {
	techID, ok := pathID(c, "technicianId")
	if !ok {
		return
	}

	out, err := h.service.ListByTechnician(c.Request.Context(), techID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) UpdateSlot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	slot, err := h.service.UpdateSlot(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot)
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=available unavailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	slot, err := h.service.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot)
}

func (h *Handler) DeleteSlot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteSlot(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) Attach(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AttachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.AttachTechnician(c.Request.Context(), id, req.TechnicianID); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{"slot_id": id, "technician_id": req.TechnicianID})
}

func (h *Handler) Detach(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	techID, ok := pathID(c, "technicianId")
	if !ok {
		return
	}

	if err := h.service.DetachTechnician(c.Request.Context(), id, techID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
