package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/pkg/resp"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
)

type RestaurantController struct {
	Svc  *services.RestaurantService
	Menu *services.MenuService
}

func NewRestaurantController(svc *services.RestaurantService, menu *services.MenuService) *RestaurantController {
	return &RestaurantController{Svc: svc, Menu: menu}
}

// GET /restaurants?category=&search=
func (h *RestaurantController) List(c *gin.Context) {
	items, err := h.Svc.List(c.Query("category"), c.Query("search"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// Detail returns the restaurant plus its menu, one round trip for the
// restaurant page.
func (h *RestaurantController) Detail(c *gin.Context) {
	r, ok, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "restaurant not found")
		return
	}
	menu, err := h.Menu.ListByRestaurant(r.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": r, "menu": menu})
}
