package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/services"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/store"
)

func trackingFixture(t *testing.T) (*TrackingHub, entity.Order, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	colls := repository.NewCollections(store.NewMemory(), repository.SeedData{})
	order, err := colls.Orders.Create(entity.Order{UserID: "u1", Status: entity.OrderPending})
	require.NoError(t, err)

	hub := NewTrackingHub(services.NewOrderService(colls, services.NewCartService(colls)))
	go hub.Run()

	// stands in for the JWT middleware
	auth := func(c *gin.Context) {
		c.Set("userId", "u1")
		c.Set("role", "customer")
	}
	r := gin.New()
	r.GET("/ws/orders/:id", auth, hub.HandleWebSocket)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, order, srv
}

func dialOrder(t *testing.T, srv *httptest.Server, orderID string) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders/" + orderID
	conn, res, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	res.Body.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	return conn
}

func roomCount(hub *TrackingHub) int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.clients)
}

func TestSubscriberGetsCurrentThenPushedStatus(t *testing.T) {
	hub, order, srv := trackingFixture(t)

	conn := dialOrder(t, srv, order.ID)
	defer conn.Close()

	var first StatusUpdate
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, order.ID, first.OrderID)
	assert.Equal(t, entity.OrderPending, first.Status)

	order.Status = entity.OrderConfirmed
	hub.NotifyStatus(&order)

	var pushed StatusUpdate
	require.NoError(t, conn.ReadJSON(&pushed))
	assert.Equal(t, entity.OrderConfirmed, pushed.Status)
}

func TestEmptyRoomIsDropped(t *testing.T) {
	hub, order, srv := trackingFixture(t)

	conn := dialOrder(t, srv, order.ID)
	var first StatusUpdate
	require.NoError(t, conn.ReadJSON(&first))

	require.Eventually(t, func() bool { return roomCount(hub) == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return roomCount(hub) == 0 }, time.Second, 10*time.Millisecond)
}

func TestStrangerCannotSubscribe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	colls := repository.NewCollections(store.NewMemory(), repository.SeedData{})
	order, err := colls.Orders.Create(entity.Order{UserID: "owner", Status: entity.OrderPending})
	require.NoError(t, err)

	hub := NewTrackingHub(services.NewOrderService(colls, services.NewCartService(colls)))
	go hub.Run()

	auth := func(c *gin.Context) {
		c.Set("userId", "stranger")
		c.Set("role", "customer")
	}
	r := gin.New()
	r.GET("/ws/orders/:id", auth, hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders/" + order.ID
	conn, res, err := websocket.DefaultDialer.Dial(u, nil)
	require.Error(t, err)
	if res != nil {
		res.Body.Close()
	}
	require.Nil(t, conn)
}
