package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"github.com/kamaubrian/hoops_academy/models"
)

// The hub pushes every new activity-log entry (clock-ins, clock-outs,
// session changes) to all connected admin dashboards.

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.ActivityLog, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Activity feed client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Activity feed client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case entry := <-Broadcast:
			clientsMu.RLock()
			var dead []uuid.UUID
			for userID, conn := range clients {
				if err := conn.WriteJSON(entry); err != nil {
					log.Printf("Error sending activity to client %s: %v", userID, err)
					conn.Close()
					dead = append(dead, userID)
				}
			}
			clientsMu.RUnlock()

			if len(dead) > 0 {
				clientsMu.Lock()
				for _, userID := range dead {
					delete(clients, userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// Publish hands an entry to the hub without blocking the caller; if the
// feed is backed up the entry is simply not broadcast (it is already
// persisted in the activity log).
func Publish(entry *models.ActivityLog) {
	select {
	case Broadcast <- entry:
	default:
		log.Println("Activity feed backlog full, dropping broadcast")
	}
}
