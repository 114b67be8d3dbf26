// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package availability

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openp2ptrade/dispute-node/agent"
)

type FailureRequest struct {
	Address string `json:"address" binding:"required"`
}

// Handler provides HTTP endpoints for dispute agent selection.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/offers/:id/disputeagents/:role", h.GetSelection)
	r.POST("/offers/:id/disputeagents/:role/select", h.Select)
	r.POST("/offers/:id/disputeagents/:role/failures", h.ReportFailure)
}

// Select handles POST /v1/offers/:id/disputeagents/:role/select
func (h *Handler) Select(c *gin.Context) {
	role, ok := roleParam(c)
	if !ok {
		return
	}

	var selected agent.Agent
	var err error
	switch role {
	case agent.ArbitratorRole:
		var arbitrator *agent.Arbitrator
		arbitrator, err = h.service.SelectArbitrator(c.Request.Context(), c.Param("id"))
		if err == nil {
			selected = arbitrator
		}
	case agent.MediatorRole:
		var mediator *agent.Mediator
		mediator, err = h.service.SelectMediator(c.Request.Context(), c.Param("id"))
		if err == nil {
			selected = mediator
		}
	}
	if err != nil {
		if errors.Is(err, ErrNoDisputeAgentAvailable) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "no_dispute_agent",
				"message": "No dispute agent available",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "selection_failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role, "disputeAgent": selected})
}

// GetSelection handles GET /v1/offers/:id/disputeagents/:role
func (h *Handler) GetSelection(c *gin.Context) {
	role, ok := roleParam(c)
	if !ok {
		return
	}

	address, err := h.service.Selection(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": err.Error(),
		})
		return
	}
	if address == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "No dispute agent selected for offer",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role, "address": address})
}

// ReportFailure handles POST /v1/offers/:id/disputeagents/:role/failures
func (h *Handler) ReportFailure(c *gin.Context) {
	role, ok := roleParam(c)
	if !ok {
		return
	}

	var req FailureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid request body",
		})
		return
	}
	address, err := agent.ParseNodeAddress(req.Address)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return
	}

	err = h.service.ReportFailure(c.Request.Context(), c.Param("id"), role, address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"role": role, "excluded": address})
}

func roleParam(c *gin.Context) (agent.Role, bool) {
	role, err := agent.ParseRole(c.Param("role"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return "", false
	}
	return role, true
}
