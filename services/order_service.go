package services

import (
	"errors"
	"sort"
	"time"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrOrderNotFound   = errors.New("order not found")
	ErrForbidden       = errors.New("forbidden")
	ErrOrderDelivered  = errors.New("order already delivered")
	ErrNotDelivered    = errors.New("order not delivered yet")
	ErrAlreadyRated    = errors.New("order already rated")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrAddressRequired = errors.New("address not found")
	ErrPaymentRequired = errors.New("payment method not found")
)

// statusFlow is the one-way order lifecycle. Transitions only move one
// step forward; nothing ever goes back.
var statusFlow = []string{
	entity.OrderPending,
	entity.OrderConfirmed,
	entity.OrderPreparing,
	entity.OrderReady,
	entity.OrderDelivering,
	entity.OrderDelivered,
}

// NextStatus returns the status following s, or false when s is terminal
// or unknown.
func NextStatus(s string) (string, bool) {
	for i, st := range statusFlow[:len(statusFlow)-1] {
		if st == s {
			return statusFlow[i+1], true
		}
	}
	return "", false
}

// StatusNotifier receives status changes for live tracking. Wired to the
// websocket hub in main; nil disables push.
type StatusNotifier interface {
	NotifyStatus(order *entity.Order)
}

type OrderService struct {
	Colls    *repository.Collections
	Cart     *CartService
	Notifier StatusNotifier
}

func NewOrderService(colls *repository.Collections, cart *CartService) *OrderService {
	return &OrderService{Colls: colls, Cart: cart}
}

type PlaceOrderIn struct {
	AddressID       string `json:"addressId" binding:"required"`
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
	PromoCode       string `json:"promoCode"`
}

// Place snapshots the cart, the chosen address and payment method into an
// immutable order, then clears the cart. Each step is one collection
// write; there is no cross-collection transaction.
func (s *OrderService) Place(userID string, in *PlaceOrderIn) (*entity.Order, error) {
	cart, err := s.Cart.Get(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	addr, ok, err := s.Colls.Addresses.GetByID(in.AddressID)
	if err != nil {
		return nil, err
	}
	if !ok || addr.UserID != userID || addr.IsRestaurantAddress {
		return nil, ErrAddressRequired
	}

	pay, ok, err := s.Colls.PaymentMethods.GetByID(in.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if !ok || pay.UserID != userID {
		return nil, ErrPaymentRequired
	}

	rate, err := ResolvePromo(in.PromoCode)
	if err != nil {
		return nil, err
	}

	rest, ok, err := s.Colls.Restaurants.GetByID(cart.RestaurantID())
	if err != nil {
		return nil, err
	}
	var deliveryFee int64
	restName := ""
	if ok {
		deliveryFee = rest.DeliveryFee
		restName = rest.Name
	}

	totals := CalculateTotals(cart.TotalPrice(), deliveryFee, rate)

	order := entity.Order{
		UserID:         userID,
		RestaurantID:   cart.RestaurantID(),
		RestaurantName: restName,
		Items:          append([]entity.CartItem(nil), cart.Items...),
		Subtotal:       totals.Subtotal,
		DeliveryFee:    totals.DeliveryFee,
		Tax:            totals.Tax,
		Discount:       totals.Discount,
		Total:          totals.Total,
		PromoCode:      in.PromoCode,
		Address:        *addr,
		PaymentMethod:  *pay,
		Status:         entity.OrderPending,
		CreatedAt:      time.Now(),
	}

	created, err := s.Colls.Orders.Create(order)
	if err != nil {
		return nil, err
	}
	if _, err := s.Cart.Clear(userID); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListForUser returns the user's orders, newest first.
func (s *OrderService) ListForUser(userID string) ([]entity.Order, error) {
	all, err := s.Colls.Orders.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0)
	for _, o := range all {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *OrderService) DetailForUser(userID, orderID string) (*entity.Order, error) {
	o, ok, err := s.Colls.Orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderNotFound
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

// AdminDetail skips the ownership check.
func (s *OrderService) AdminDetail(orderID string) (*entity.Order, error) {
	o, ok, err := s.Colls.Orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	all, err := s.Colls.Orders.GetAll()
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all, nil
}

// AdvanceStatus moves the order exactly one step forward and pushes the
// change to tracking subscribers.
func (s *OrderService) AdvanceStatus(orderID string) (*entity.Order, error) {
	o, ok, err := s.Colls.Orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderNotFound
	}
	next, ok := NextStatus(o.Status)
	if !ok {
		return nil, ErrOrderDelivered
	}

	updated, ok, err := s.Colls.Orders.Update(o.ID, map[string]any{"status": next})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderNotFound
	}
	if s.Notifier != nil {
		s.Notifier.NotifyStatus(updated)
	}
	return updated, nil
}

// Rate records the one-time 1-5 star rating on a delivered order.
func (s *OrderService) Rate(userID, orderID string, stars int) (*entity.Order, error) {
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidRating
	}
	o, err := s.DetailForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != entity.OrderDelivered {
		return nil, ErrNotDelivered
	}
	if o.Rating != nil {
		return nil, ErrAlreadyRated
	}
	updated, ok, err := s.Colls.Orders.Update(o.ID, map[string]any{"rating": stars})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderNotFound
	}
	return updated, nil
}
