package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/pkg/resp"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/utils"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

type PaymentMethodRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=card pix cash"`
	Label     string `json:"label" binding:"required"`
	Last4     string `json:"last4"`
	IsDefault bool   `json:"isDefault"`
}

// GET /payment-methods
func (h *PaymentController) List(c *gin.Context) {
	items, err := h.Svc.ListByUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /payment-methods
func (h *PaymentController) Create(c *gin.Context) {
	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pm, err := h.Svc.Create(utils.CurrentUserID(c), entity.PaymentMethod{
		Kind: req.Kind, Label: req.Label, Last4: req.Last4, IsDefault: req.IsDefault,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, pm)
}

// PATCH /payment-methods/:id/default
func (h *PaymentController) SetDefault(c *gin.Context) {
	pm, err := h.Svc.SetDefault(utils.CurrentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPaymentMethodNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pm)
}

// DELETE /payment-methods/:id
func (h *PaymentController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(utils.CurrentUserID(c), c.Param("id")); err != nil {
		if errors.Is(err, services.ErrPaymentMethodNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
