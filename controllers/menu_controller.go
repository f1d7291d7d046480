package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/pkg/resp"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

// GET /restaurants/:id/menu?search=&sort=name|rating
func (h *MenuController) ListByRestaurant(c *gin.Context) {
	items, err := h.Svc.ListByRestaurant(c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if q := c.Query("search"); q != "" {
		items = services.FilterByName(items, q)
	}
	switch c.Query("sort") {
	case "name":
		items = services.SortAlphabetically(items)
	case "rating":
		items = services.SortByRating(items)
	}
	resp.OK(c, items)
}

// GET /menu-items/:id
func (h *MenuController) Detail(c *gin.Context) {
	item, ok, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, item)
}
