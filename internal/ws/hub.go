// Package ws рассылка новых записей ленты подписчикам по websocket
package ws

import (
	"arcade_backend/internal/logger"
	"arcade_backend/internal/model"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 64
)

type CloseReason string

const (
	ReasonWriteError CloseReason = "write_error"
	ReasonReadError  CloseReason = "read_error"
	ReasonBufferFull CloseReason = "buffer_full"
	ReasonShutdown   CloseReason = "server_shutdown"
)

// Event сообщение подписчику
type Event struct {
	Type string    `json:"type"`
	Item FeedEvent `json:"item"`
}

type FeedEvent struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   int64     `json:"author_id"`
	Tags       []string  `json:"tags"`
	SourceName string    `json:"source_name,omitempty"`
	SourceURL  string    `json:"source_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type connection struct {
	userID    int64
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	hub       *Hub
	closeOnce sync.Once
}

type Hub struct {
	upgrader websocket.Upgrader

	mtx     sync.RWMutex
	clients map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// CORS уже проверен на уровне роутера
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*connection]struct{}),
	}
}

// Serve апгрейд запроса и обслуживание соединения до его закрытия
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID int64) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("ws: upgrade failed", zap.Error(err))
		return
	}

	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
		hub:    h,
	}
	h.mtx.Lock()
	h.clients[c] = struct{}{}
	h.mtx.Unlock()

	go c.writePump()
	c.readPump()
}

// Publish новая запись ленты всем подписчикам. Медленный подписчик отключается
func (h *Hub) Publish(item model.FeedItem) {
	payload, err := json.Marshal(Event{
		Type: "feed_item",
		Item: FeedEvent{
			ID:         item.ID,
			Title:      item.Title,
			Content:    item.Content,
			AuthorID:   item.AuthorID,
			Tags:       item.Tags,
			SourceName: item.SourceName,
			SourceURL:  item.SourceURL,
			CreatedAt:  item.CreatedAt,
		},
	})
	if err != nil {
		logger.Error("ws: marshal event", zap.Error(err))
		return
	}
	h.Broadcast(payload)
}

func (h *Hub) Broadcast(message []byte) {
	h.mtx.RLock()
	defer h.mtx.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- message:
		default:
			c.closeWithReason(ReasonBufferFull, nil)
		}
	}
}

// Count число подключённых подписчиков
func (h *Hub) Count() int {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	return len(h.clients)
}

func (h *Hub) Shutdown() {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	for c := range h.clients {
		c.closeWithReason(ReasonShutdown, nil)
	}
}

func (h *Hub) remove(c *connection) {
	h.mtx.Lock()
	delete(h.clients, c)
	h.mtx.Unlock()
}

func (c *connection) closeWithReason(r CloseReason, err error) {
	c.closeOnce.Do(func() {
		logger.Debug("ws: connection closed",
			zap.Int64("user_id", c.userID),
			zap.String("reason", string(r)),
			zap.Error(err),
		)
		close(c.done)
		_ = c.conn.Close()
	})
}

func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.closeWithReason(ReasonWriteError, err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.closeWithReason(ReasonWriteError, err)
				return
			}
		}
	}
}

// readPump входящие сообщения не нужны, читаем только ради pong и закрытия
func (c *connection) readPump() {
	var readErr error
	defer func() {
		c.hub.remove(c)
		c.closeWithReason(ReasonReadError, readErr)
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, readErr = c.conn.ReadMessage(); readErr != nil {
			return
		}
	}
}
