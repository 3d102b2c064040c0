package ticket

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
	rg.POST("/tickets", h.Create)
	rg.GET("/tickets", h.List)
	rg.GET("/tickets/:id", h.Get)
	rg.PATCH("/tickets/:id/assign", adminOnly, h.Assign)
	rg.PATCH("/tickets/:id/resolve", adminOnly, h.Resolve)
	rg.PATCH("/tickets/:id/close", adminOnly, h.Close)
	rg.DELETE("/tickets/:id", adminOnly, h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, t)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, t)
}

func (h *Handler) List(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		out, err := h.service.ListByStatus(c.Request.Context(), status)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, out)
		return
	}
	if v := c.Query("reservation_id"); v != "" {
		id, _ := strconv.ParseInt(v, 10, 64)
		out, err := h.service.ListByReservation(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, out)
		return
	}
	if v := c.Query("admin_id"); v != "" {
		id, _ := strconv.ParseInt(v, 10, 64)
		out, err := h.service.ListByAdmin(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, out)
		return
	}
	if c.Query("unassigned") == "true" {
		out, err := h.service.ListUnassigned(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, out)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	items, total, err := h.service.List(c.Request.Context(), page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"items": items, "total": total, "page": page, "size": size})
}

func (h *Handler) Assign(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.service.Assign(c.Request.Context(), id, req.AdminID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, t)
}

func (h *Handler) Resolve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	t, err := h.service.Resolve(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, t)
}

func (h *Handler) Close(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	t, err := h.service.Close(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, t)
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
