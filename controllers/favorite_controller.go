package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/pkg/resp"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/utils"
)

type FavoriteController struct{ Svc *services.FavoriteService }

func NewFavoriteController(svc *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Svc: svc}
}

// GET /favorites
func (h *FavoriteController) List(c *gin.Context) {
	items, err := h.Svc.ListByUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// Toggle flips the favorite flag for one restaurant.
func (h *FavoriteController) Toggle(c *gin.Context) {
	favorited, err := h.Svc.Toggle(utils.CurrentUserID(c), c.Param("restaurantId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"favorited": favorited})
}
