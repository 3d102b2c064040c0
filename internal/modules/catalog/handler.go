package catalog

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

// RegisterPublicRoutes exposes catalog reads without a token.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:id", h.GetService)
	rg.GET("/services/count", h.CountByCategory)
	rg.GET("/offerings", h.ListOfferings)
	rg.GET("/offerings/:technicianId/:serviceId", h.GetOffering)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	rg.POST("/services", adminOnly, h.CreateService)
	rg.PATCH("/services/:id", adminOnly, h.UpdateService)
	rg.DELETE("/services/:id", adminOnly, h.DeleteService)
	rg.POST("/offerings", h.CreateOffering)
	rg.PATCH("/offerings/:technicianId/:serviceId", h.UpdateOffering)
	rg.DELETE("/offerings/:technicianId/:serviceId", h.DeleteOffering)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, svc)
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}

	svc, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, svc)
}

func (h *Handler) ListServices(c *gin.Context) {
	out, err := h.service.ListServices(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) CountByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		response.Fail(c, http.StatusBadRequest, "category is required")
		return
	}

	n, err := h.service.CountByCategory(c.Request.Context(), category)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, CategoryCountResponse{Category: category, Count: n})
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, svc)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) CreateOffering(c *gin.Context) {
	var req CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.service.CreateOffering(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, o)
}

func (h *Handler) GetOffering(c *gin.Context) {
	techID, serviceID, ok := offeringKey(c)
	if !ok {
		return
	}

	o, err := h.service.GetOffering(c.Request.Context(), techID, serviceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, o)
}

func (h *Handler) ListOfferings(c *gin.Context) {
	techID, _ := strconv.ParseInt(c.Query("technician_id"), 10, 64)

	out, err := h.service.ListOfferings(c.Request.Context(), techID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) UpdateOffering(c *gin.Context) {
	techID, serviceID, ok := offeringKey(c)
	if !ok {
		return
	}

	var req UpdateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.service.UpdateOfferingRate(c.Request.Context(), techID, serviceID, req.BaseRate)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, o)
}

func (h *Handler) DeleteOffering(c *gin.Context) {
	techID, serviceID, ok := offeringKey(c)
	if !ok {
		return
	}
	if err := h.service.DeleteOffering(c.Request.Context(), techID, serviceID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func offeringKey(c *gin.Context) (int64, int64, bool) {
	techID, err := strconv.ParseInt(c.Param("technicianId"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid technician id")
		return 0, 0, false
	}
	serviceID, err := strconv.ParseInt(c.Param("serviceId"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid service id")
		return 0, 0, false
	}
	return techID, serviceID, true
}
