package api

import (
	"net/http"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/Phecobaba/Skybooker-sub001/internal/service/notifications"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service notifications.NotificationUseCase
}

type notificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Read      bool   `json:"read"`
	Timestamp string `json:"timestamp"`
	BookingID int64  `json:"booking_id,omitempty"`
}

type notificationListResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

func NewNotificationHandler(service notifications.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.PUT("/read-all", h.markAllRead)
	router.PUT("/:id/read", h.markRead)
}

func (h *NotificationHandler) list(c *gin.Context) {
	list, unread, err := h.service.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := notificationListResponse{
		Notifications: make([]notificationResponse, 0, len(list)),
		UnreadCount:   unread,
	}
	for _, n := range list {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(n))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) markRead(c *gin.Context) {
	if err := h.service.MarkAsRead(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": h.service.UnreadCount(c.Request.Context())})
}

func (h *NotificationHandler) markAllRead(c *gin.Context) {
	if err := h.service.MarkAllAsRead(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": 0})
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Read:      n.Read,
		Timestamp: n.Timestamp.Format(time.RFC3339),
		BookingID: n.BookingID,
	}
}
