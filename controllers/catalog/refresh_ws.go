package catalogControllers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// RefreshHub fans catalog-refresh notifications out to connected storefront
// clients so open pages can re-fetch prices when offers change.
type RefreshHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewRefreshHub() *RefreshHub {
	return &RefreshHub{clients: map[*websocket.Conn]bool{}}
}

// Handler upgrades the connection and keeps it registered until the client
// goes away.
func (h *RefreshHub) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				break
			}
		}
	}
}

// BroadcastRefresh tells every connected client the catalog was re-annotated.
func (h *RefreshHub) BroadcastRefresh(productCount int) {
	data, err := json.Marshal(gin.H{
		"type":     "catalog_refreshed",
		"products": productCount,
		"at":       time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
