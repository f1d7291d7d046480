package controllers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/pkg/resp"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/utils"
)

type OrderController struct {
	Svc        *services.OrderService
	Cart       *services.CartService
	PublicBase string
}

func NewOrderController(svc *services.OrderService, cart *services.CartService, publicBase string) *OrderController {
	return &OrderController{Svc: svc, Cart: cart, PublicBase: publicBase}
}

// ValidatePromo checks a code without placing anything.
func (h *OrderController) ValidatePromo(c *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rate, err := services.ResolvePromo(body.Code)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"code": body.Code, "discountRate": rate})
}

// Summary is the price preview for the confirm screen.
func (h *OrderController) Summary(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	cart, err := h.Cart.Get(userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(cart.Items) == 0 {
		resp.BadRequest(c, services.ErrEmptyCart.Error())
		return
	}

	rate, err := services.ResolvePromo(c.Query("promo"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var deliveryFee int64
	if rest, ok, err := h.Svc.Colls.Restaurants.GetByID(cart.RestaurantID()); err != nil {
		resp.ServerError(c, err)
		return
	} else if ok {
		deliveryFee = rest.DeliveryFee
	}

	resp.OK(c, services.CalculateTotals(cart.TotalPrice(), deliveryFee, rate))
}

// POST /orders
func (h *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Place(utils.CurrentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAddressRequired),
			errors.Is(err, services.ErrPaymentRequired):
			resp.NotFound(c, err.Error())
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	order, err := h.Svc.DetailForUser(utils.CurrentUserID(c), c.Param("id"))
	if err != nil {
		h.orderError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/rating
func (h *OrderController) Rate(c *gin.Context) {
	var body struct {
		Rating int `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Rate(utils.CurrentUserID(c), c.Param("id"), body.Rating)
	if err != nil {
		h.orderError(c, err)
		return
	}
	resp.OK(c, order)
}

// TrackingQR returns a PNG linking to the tracking page, shown to the
// courier at handoff.
func (h *OrderController) TrackingQR(c *gin.Context) {
	order, err := h.Svc.DetailForUser(utils.CurrentUserID(c), c.Param("id"))
	if err != nil {
		h.orderError(c, err)
		return
	}

	url := fmt.Sprintf("%s/order-tracking/%s", h.PublicBase, order.ID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(200, "image/png", png)
}

func (h *OrderController) orderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	default:
		resp.BadRequest(c, err.Error())
	}
}
