package review

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
	rg.POST("/reviews", h.Create)
	rg.GET("/reviews", h.List)
	rg.GET("/reviews/:id", h.Get)
	rg.GET("/reviews/reservation/:reservationId", h.GetByReservation)
	rg.GET("/reviews/technician/:technicianId", h.ListByTechnician)
	rg.GET("/reviews/technician/:technicianId/average-rating", h.AverageRating)
	rg.PATCH("/reviews/:id", h.Update)
	rg.DELETE("/reviews/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	rv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, rv)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rv, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rv)
}

func (h *Handler) GetByReservation(c *gin.Context) {
	id, ok := pathID(c, "reservationId")
	if !ok {
		return
	}

	rv, err := h.service.GetByReservation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rv)
}

func (h *Handler) List(c *gin.Context) {
	rating, _ := strconv.Atoi(c.Query("rating"))

	out, err := h.service.List(c.Request.Context(), c.Query("status"), rating)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) ListByTechnician(c *gin.Context) {
	id, ok := pathID(c, "technicianId")
	if !ok {
		return
	}

	out, err := h.service.ListByTechnician(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) AverageRating(c *gin.Context) {
	id, ok := pathID(c, "technicianId")
	if !ok {
		return
	}

	avg := h.service.AverageRatingForTechnician(c.Request.Context(), id)
	response.JSON(c, http.StatusOK, AverageRatingResponse{TechnicianID: id, AverageRating: avg})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	rv, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rv)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
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
