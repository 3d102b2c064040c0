package certification

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	rg.POST("/certifications", h.Create)
	rg.GET("/certifications", h.List)
	rg.GET("/certifications/:id", h.Get)
	rg.PATCH("/certifications/:id/validate", adminOnly, h.Validate)
	rg.PATCH("/certifications/:id/reject", adminOnly, h.Reject)
	rg.DELETE("/certifications/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	out, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, out)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	out, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) List(c *gin.Context) {
	if v := c.Query("technician_id"); v != "" {
		id, _ := strconv.ParseInt(v, 10, 64)
		out, err := h.service.ListByTechnician(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, out)
		return
	}

	status := c.DefaultQuery("status", "pending")
	out, err := h.service.ListByStatus(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) Validate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	out, err := h.service.Validate(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) Reject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	out, err := h.service.Reject(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
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
