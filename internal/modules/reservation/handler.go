package reservation

import (
	"net/http"
	"strconv"

	"fieldserve/internal/domain"
	"fieldserve/internal/pkg/response"
	"fieldserve/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	rg.POST("/reservations", h.Create)
	rg.GET("/reservations", h.List)
	rg.GET("/reservations/:id", h.Get)
	rg.PATCH("/reservations/:id", h.Update)
	rg.PATCH("/reservations/:id/confirm", h.Confirm)
	rg.PATCH("/reservations/:id/reject", h.Reject)
	rg.PATCH("/reservations/:id/cancel", h.Cancel)
	rg.PATCH("/reservations/:id/complete", h.Complete)
	rg.DELETE("/reservations/:id", adminOnly, h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	r, err := h.service.Create(c.Request.Context(), c.GetString("email"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, r)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	d, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, d)
}

func (h *Handler) List(c *gin.Context) {
	var f repository.ReservationFilter
	if v, err := strconv.ParseInt(c.Query("customer_id"), 10, 64); err == nil {
		f.CustomerID = v
	}
	if v, err := strconv.ParseInt(c.Query("technician_id"), 10, 64); err == nil {
		f.TechnicianID = v
	}
	f.Status = domain.ReservationStatus(c.Query("status"))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	out, err := h.service.List(c.Request.Context(), f, page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	r, err := h.service.UpdateReservation(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, r)
}

func (h *Handler) Confirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	r, err := h.service.Confirm(c.Request.Context(), id, c.GetString("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, r)
}

func (h *Handler) Reject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	r, err := h.service.Reject(c.Request.Context(), id, c.GetString("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, r)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	r, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, r)
}

func (h *Handler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	r, err := h.service.Complete(c.Request.Context(), id, c.GetString("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, r)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
