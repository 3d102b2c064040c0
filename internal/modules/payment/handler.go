package payment

import (
	"context"
	"net/http"
	"strconv"

	"fieldserve/internal/domain"
	"fieldserve/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	rg.POST("/payments", h.Create)
	rg.GET("/payments", h.List)
	rg.GET("/payments/:id", h.Get)
	rg.PATCH("/payments/:id/process", h.Process)
	rg.PATCH("/payments/:id/fail", h.Fail)
	rg.PATCH("/payments/:id/cancel", h.Cancel)
	rg.PATCH("/payments/:id/refund", h.Refund)
	rg.DELETE("/payments/:id", adminOnly, h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, p)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

func (h *Handler) List(c *gin.Context) {
	reservationID, _ := strconv.ParseInt(c.Query("reservation_id"), 10, 64)

	out, err := h.service.List(c.Request.Context(), reservationID, c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) Process(c *gin.Context) { h.transition(c, h.service.Process) }
func (h *Handler) Fail(c *gin.Context)    { h.transition(c, h.service.Fail) }
func (h *Handler) Cancel(c *gin.Context)  { h.transition(c, h.service.Cancel) }
func (h *Handler) Refund(c *gin.Context)  { h.transition(c, h.service.Refund) }

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

func (h *Handler) transition(c *gin.Context, fn func(ctx context.Context, id int64) (*domain.Payment, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
