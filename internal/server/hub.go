package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"widgetconfig/internal/logging"
	"widgetconfig/internal/output"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 64 * 1024,
}

// client serializes writes, gorilla connections allow one writer at a time.
type client struct {
	conn  *websocket.Conn
	mutex sync.Mutex
}

func (c *client) send(frame []byte) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.BinaryMessage, frame)
}

// hub fans preview frames out to the watchers of each widget session. It is
// the server's websocket output handler.
type hub struct {
	mutex    sync.Mutex
	watchers map[string]map[*client]struct{}
}

func newHub() *hub {
	return &hub{watchers: make(map[string]map[*client]struct{})}
}

func (h *hub) add(key string, c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if h.watchers[key] == nil {
		h.watchers[key] = make(map[*client]struct{})
	}
	h.watchers[key][c] = struct{}{}
}

func (h *hub) remove(key string, c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.watchers[key], c)
	if len(h.watchers[key]) == 0 {
		delete(h.watchers, key)
	}
}

func (h *hub) count(key string) int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.watchers[key])
}

func (h *hub) GetType() string {
	return "websocket"
}

// Output fails only when the frame had watchers and none of them took it.
func (h *hub) Output(frame *output.Frame) error {
	sent, dropped := h.broadcast(frame.Key, frame.PNG)
	if sent == 0 && dropped > 0 {
		return fmt.Errorf("all %d watchers of %s dropped", dropped, frame.Key)
	}
	return nil
}

func (h *hub) Close() error {
	h.closeAll()
	return nil
}

func (h *hub) broadcast(key string, frame []byte) (sent, dropped int) {
	h.mutex.Lock()
	targets := make([]*client, 0, len(h.watchers[key]))
	for c := range h.watchers[key] {
		targets = append(targets, c)
	}
	h.mutex.Unlock()

	for _, c := range targets {
		if err := c.send(frame); err != nil {
			logging.WarnModule("ws", "dropping watcher of %s: %v", key, err)
			h.remove(key, c)
			c.conn.Close()
			dropped++
			continue
		}
		sent++
	}
	return sent, dropped
}

func (h *hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for key, set := range h.watchers {
		for c := range set {
			c.conn.Close()
		}
		delete(h.watchers, key)
	}
}
