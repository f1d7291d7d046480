package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/pkg/resp"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/utils"
)

type AddressController struct{ Svc *services.AddressService }

func NewAddressController(svc *services.AddressService) *AddressController {
	return &AddressController{Svc: svc}
}

type AddressRequest struct {
	Label      string `json:"label" binding:"required"`
	Street     string `json:"street" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Complement string `json:"complement"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	ZipCode    string `json:"zipCode" binding:"required"`
	IsDefault  bool   `json:"isDefault"`
}

// GET /addresses
func (h *AddressController) List(c *gin.Context) {
	items, err := h.Svc.ListByUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /addresses
func (h *AddressController) Create(c *gin.Context) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	addr, err := h.Svc.Create(utils.CurrentUserID(c), entity.Address{
		Label: req.Label, Street: req.Street, Number: req.Number,
		Complement: req.Complement, City: req.City, State: req.State,
		ZipCode: req.ZipCode, IsDefault: req.IsDefault,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, addr)
}

// PATCH /addresses/:id
func (h *AddressController) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	addr, err := h.Svc.Update(utils.CurrentUserID(c), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAddressNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, repository.ErrBadPatch):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, addr)
}

// PATCH /addresses/:id/default
func (h *AddressController) SetDefault(c *gin.Context) {
	addr, err := h.Svc.SetDefault(utils.CurrentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addr)
}

// DELETE /addresses/:id
func (h *AddressController) Delete(c *gin.Context) {
	err := h.Svc.Delete(utils.CurrentUserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAddressNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrLastAddress):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
