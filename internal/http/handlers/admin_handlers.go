package handlers

import (
	"net/http"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/Duggineniakhil/Vectra/internal/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandlers serves user management under /api/v1/admin
type AdminHandlers struct {
	userSvc domain.UserService
}

func NewAdminHandlers(userSvc domain.UserService) *AdminHandlers {
	return &AdminHandlers{userSvc: userSvc}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type updateRoleRequest struct {
	Role   string `json:"role" binding:"required"`
	Reason string `json:"reason"`
}

func userIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return uuid.Nil, false
	}
	return id, true
}

// GetUser returns a user's profile
func (h *AdminHandlers) GetUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	user, err := h.userSvc.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user.Profile()})
}

// UpdateStatus suspends, deletes or reactivates a user
func (h *AdminHandlers) UpdateStatus(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, _ := middleware.UserID(c)
	user, err := h.userSvc.UpdateStatus(c.Request.Context(), actor, id, domain.AccountStatus(req.Status), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user.Profile()})
}

// UpdateRole changes a user's role
func (h *AdminHandlers) UpdateRole(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	actor, _ := middleware.UserID(c)
	user, err := h.userSvc.UpdateRole(c.Request.Context(), actor, id, domain.Role(req.Role), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user.Profile()})
}
