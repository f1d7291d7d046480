package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/pkg/resp"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
)

// AdminController is the CRUD panel over the catalog plus order
// management. Referential integrity is the operator's problem, same as
// the storefront: deleting a restaurant does not cascade to its menu.
type AdminController struct {
	Restaurants *services.RestaurantService
	Menu        *services.MenuService
	Categories  *services.CategoryService
	Users       *services.UserService
	Orders      *services.OrderService
}

func NewAdminController(
	rest *services.RestaurantService,
	menu *services.MenuService,
	cats *services.CategoryService,
	users *services.UserService,
	orders *services.OrderService,
) *AdminController {
	return &AdminController{Restaurants: rest, Menu: menu, Categories: cats, Users: users, Orders: orders}
}

// --- restaurants ---

func (h *AdminController) CreateRestaurant(c *gin.Context) {
	var body entity.Restaurant
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	created, err := h.Restaurants.Create(body)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, created)
}

func (h *AdminController) UpdateRestaurant(c *gin.Context) {
	h.patch(c, func(id string, patch map[string]any) (any, bool, error) {
		return h.Restaurants.Update(id, patch)
	})
}

func (h *AdminController) DeleteRestaurant(c *gin.Context) {
	h.remove(c, h.Restaurants.Delete)
}

// --- menu items ---

func (h *AdminController) CreateMenuItem(c *gin.Context) {
	var body entity.MenuItem
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if body.RestaurantID == "" {
		resp.BadRequest(c, "restaurantId is required")
		return
	}
	created, err := h.Menu.Create(body)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, created)
}

func (h *AdminController) UpdateMenuItem(c *gin.Context) {
	h.patch(c, func(id string, patch map[string]any) (any, bool, error) {
		return h.Menu.Update(id, patch)
	})
}

func (h *AdminController) DeleteMenuItem(c *gin.Context) {
	h.remove(c, h.Menu.Delete)
}

// --- categories ---

func (h *AdminController) CreateCategory(c *gin.Context) {
	var body entity.Category
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	created, err := h.Categories.Create(body)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, created)
}

func (h *AdminController) UpdateCategory(c *gin.Context) {
	h.patch(c, func(id string, patch map[string]any) (any, bool, error) {
		return h.Categories.Update(id, patch)
	})
}

func (h *AdminController) DeleteCategory(c *gin.Context) {
	h.remove(c, h.Categories.Delete)
}

// --- users ---

func (h *AdminController) ListUsers(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	resp.OK(c, out)
}

func (h *AdminController) SetUserRole(c *gin.Context) {
	var in struct {
		Role string `json:"role" binding:"required,oneof=customer admin"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, ok, err := h.Users.SetRole(c.Param("id"), in.Role)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, userJSON(user))
}

// --- orders ---

func (h *AdminController) ListOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// AdvanceOrder moves an order one step forward, never backward.
func (h *AdminController) AdvanceOrder(c *gin.Context) {
	order, err := h.Orders.AdvanceStatus(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrOrderDelivered):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, order)
}

// --- shared helpers ---

func (h *AdminController) patch(c *gin.Context, update func(string, map[string]any) (any, bool, error)) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updated, ok, err := update(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, repository.ErrBadPatch) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "not found")
		return
	}
	resp.OK(c, updated)
}

func (h *AdminController) remove(c *gin.Context, del func(string) (bool, error)) {
	ok, err := del(c.Param("id"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "not found")
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
