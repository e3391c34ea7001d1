package handler

import (
	"errors"
	"net/http"

	"eventhub/internal/model"
	"eventhub/internal/service"
	apperrors "eventhub/pkg/app_errors"
	"eventhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service  service.MembershipService
	verifier TokenVerifier
}

func NewEventHandler(service service.MembershipService, verifier TokenVerifier) *EventHandler {
	return &EventHandler{service: service, verifier: verifier}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.POST("dev/token", h.IssueToken)
		router.GET("events/:id", OptionalAuth(h.verifier), h.GetEvent)

		authed := router.Group("", RequireAuth(h.verifier))
		authed.POST("events", h.CreateEvent)
		authed.POST("events/:id/join", h.Join)
		authed.POST("events/:id/leave", h.Leave)
	}
}

// IssueTokenRequest 開發用 token 請求
type IssueTokenRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (h *EventHandler) IssueToken(c *gin.Context) {
	var req IssueTokenRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	token, user, err := h.service.IssueToken(c, req.Name, req.Email)
	if err != nil {
		h.handleError(c, err, "IssueToken")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"token": token, "user": user}})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := ParseEventID(c)
	if !ok {
		return
	}
	viewerID := 0
	if user := currentUser(c); user != nil {
		viewerID = user.ID
	}
	event, err := h.service.GetEvent(c, id, viewerID)
	if err != nil {
		h.handleError(c, err, "GetEvent")
		return
	}
	c.JSON(http.StatusOK, model.EventResponse{Success: true, Data: event})
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req model.EventFormData
	if err := BindJson(c, &req); err != nil {
		return
	}
	event, err := h.service.CreateEvent(c, req, currentUser(c))
	if err != nil {
		h.handleError(c, err, "CreateEvent")
		return
	}
	c.JSON(http.StatusCreated, model.EventResponse{Success: true, Data: event})
}

func (h *EventHandler) Join(c *gin.Context) {
	id, ok := ParseEventID(c)
	if !ok {
		return
	}
	event, err := h.service.Join(c, id, currentUser(c))
	if err != nil {
		h.handleError(c, err, "Join")
		return
	}
	var resp model.JoinResponse
	resp.Status = model.StatusSuccess
	resp.Data.Event = event
	c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) Leave(c *gin.Context) {
	id, ok := ParseEventID(c)
	if !ok {
		return
	}
	if err := h.service.Leave(c, id, currentUser(c)); err != nil {
		h.handleError(c, err, "Leave")
		return
	}
	c.JSON(http.StatusOK, model.LeaveResponse{Success: true})
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Event not found"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyParticipant),
		errors.Is(err, apperrors.ErrNotParticipant),
		errors.Is(err, apperrors.ErrEventFull):
		log.Warn("Membership conflict")
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, apperrors.ErrUserNotFound), errors.Is(err, apperrors.ErrInvalidToken):
		log.Warn("Unknown user")
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthenticated."})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}
