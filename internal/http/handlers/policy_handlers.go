package handlers

import (
	"net/http"

	"github.com/Duggineniakhil/Vectra/domain"
	"github.com/gin-gonic/gin"
)

type PolicyHandlers struct {
	svc domain.PolicyService
}

func NewPolicyHandlers(svc domain.PolicyService) *PolicyHandlers {
	return &PolicyHandlers{svc: svc}
}

type policyReq struct {
	Sub string `json:"sub" binding:"required"`
	Obj string `json:"obj" binding:"required"`
	Act string `json:"act" binding:"required"`
}

func (h *PolicyHandlers) List(c *gin.Context) {
	policies, err := h.svc.GetPolicies()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": policies})
}

func (h *PolicyHandlers) Add(c *gin.Context) {
	var r policyReq
	if err := c.ShouldBindJSON(&r); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.AddPolicy(r.Sub, r.Obj, r.Act); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PolicyHandlers) Remove(c *gin.Context) {
	var r policyReq
	if err := c.ShouldBindJSON(&r); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.RemovePolicy(r.Sub, r.Obj, r.Act); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
