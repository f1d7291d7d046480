package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/pkg/resp"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(svc *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: svc}
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	items, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}
