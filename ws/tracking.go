// Package ws pushes order status changes to subscribed clients over
// WebSocket, one room per order.
package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/utils"
)

type TrackingHub struct {
	clients    map[string]map[*websocket.Conn]bool // orderID -> connections
	broadcast  chan StatusUpdate
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	orders     *services.OrderService
}

type subscription struct {
	Conn    *websocket.Conn
	OrderID string
	UserID  string
}

// StatusUpdate is the frame written to every subscriber of an order.
type StatusUpdate struct {
	OrderID string    `json:"orderId"`
	Status  string    `json:"status"`
	At      time.Time `json:"at"`
}

func NewTrackingHub(orders *services.OrderService) *TrackingHub {
	return &TrackingHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusUpdate),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		orders:     orders,
	}
}

func (h *TrackingHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			if len(h.clients[sub.OrderID]) == 0 {
				delete(h.clients, sub.OrderID)
			}
			h.mu.Unlock()

		case update := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[update.OrderID] {
				if err := conn.WriteJSON(update); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[update.OrderID], conn)
				}
			}
			if len(h.clients[update.OrderID]) == 0 {
				delete(h.clients, update.OrderID)
			}
			h.mu.Unlock()
		}
	}
}

// NotifyStatus satisfies services.StatusNotifier.
func (h *TrackingHub) NotifyStatus(order *entity.Order) {
	h.broadcast <- StatusUpdate{OrderID: order.ID, Status: order.Status, At: time.Now()}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id. Only the order's owner (or an admin) may
// subscribe.
func (h *TrackingHub) HandleWebSocket(c *gin.Context) {
	orderID := c.Param("id")
	userID := utils.CurrentUserID(c)

	order, err := h.orders.DetailForUser(userID, orderID)
	if err != nil {
		if utils.CurrentRole(c) == "admin" {
			order, err = h.orders.AdminDetail(orderID)
		}
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "order not found"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, OrderID: order.ID, UserID: userID}
	h.register <- sub

	// current status immediately, so the client never renders stale state
	_ = conn.WriteJSON(StatusUpdate{OrderID: order.ID, Status: order.Status, At: time.Now()})

	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
