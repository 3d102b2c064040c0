package chat

import (
	"log"
	"net/http"
	"strconv"

	"fieldserve/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chats", h.CreateChat)
	rg.GET("/chats", h.ListChats)
	rg.GET("/chats/:id", h.GetChat)
	rg.PATCH("/chats/:id/status", h.SetStatus)
	rg.POST("/chats/:id/messages", h.SendMessage)
	rg.GET("/chats/:id/messages", h.ListMessages)
	rg.POST("/chats/:id/read", h.MarkRead)
	rg.GET("/chats/ws", h.Connect)
}

func (h *Handler) CreateChat(c *gin.Context) {
	var req CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	chat, err := h.service.CreateChat(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, chat)
}

func (h *Handler) GetChat(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	chat, err := h.service.GetChat(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, chat)
}

func (h *Handler) ListChats(c *gin.Context) {
	out, err := h.service.ListChats(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=open closed archived"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	chat, err := h.service.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, chat)
}

func (h *Handler) SendMessage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.SendMessage(c.Request.Context(), id, c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, m)
}

func (h *Handler) ListMessages(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("size", "50"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))

	out, err := h.service.ListMessages(c.Request.Context(), id, limit, page*limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.MarkRead(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"marked": true})
}

// Connect upgrades to a websocket and parks the connection in the hub until
// the peer goes away.
func (h *Handler) Connect(c *gin.Context) {
	actorID := c.GetInt64("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("level=error msg=websocket upgrade failed actor=%d err=%v", actorID, err)
		return
	}

	h.hub.Register(actorID, conn)
	defer h.hub.Unregister(actorID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
