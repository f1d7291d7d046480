package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/pkg/resp"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

func cartJSON(cart *entity.Cart) gin.H {
	return gin.H{
		"cart":         cart,
		"totalItems":   cart.TotalItems(),
		"totalPrice":   cart.TotalPrice(),
		"restaurantId": cart.RestaurantID(),
	}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cartJSON(cart))
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.AddItem(utils.CurrentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDifferentRestaurant):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrMenuItemNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}
	resp.Created(c, cartJSON(cart))
}

// PATCH /cart/items/:itemId
func (h *CartController) UpdateQuantity(c *gin.Context) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.UpdateQuantity(utils.CurrentUserID(c), c.Param("itemId"), body.Quantity)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cartJSON(cart))
}

// DELETE /cart/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	cart, err := h.Svc.RemoveItem(utils.CurrentUserID(c), c.Param("itemId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cartJSON(cart))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	cart, err := h.Svc.Clear(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cartJSON(cart))
}
