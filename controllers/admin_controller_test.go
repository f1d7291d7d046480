package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/store"
)

func setupAdminRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	colls := repository.NewCollections(store.NewMemory(), repository.SeedData{
		Restaurants: []entity.Restaurant{
			{Base: entity.Base{ID: "r1"}, Name: "Cantina Um", DeliveryFee: 500, IsOpen: true},
		},
	})
	ctrl := NewAdminController(
		services.NewRestaurantService(colls),
		services.NewMenuService(colls),
		services.NewCategoryService(colls),
		services.NewUserService(colls),
		services.NewOrderService(colls, services.NewCartService(colls)),
	)

	// stands in for the JWT middleware with the admin role
	auth := func(c *gin.Context) {
		c.Set("userId", "admin1")
		c.Set("role", "admin")
	}

	r := gin.New()
	r.PATCH("/admin/restaurants/:id", auth, ctrl.UpdateRestaurant)
	return r
}

func TestAdminPatchWrongTypeIs400(t *testing.T) {
	r := setupAdminRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/admin/restaurants/r1", gin.H{"deliveryFee": "cheap"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// a well-typed patch on the same field still goes through
	w = doJSON(t, r, http.MethodPatch, "/admin/restaurants/r1", gin.H{"deliveryFee": 700})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/admin/restaurants/ghost", gin.H{"name": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
