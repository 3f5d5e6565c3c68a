package controllers

import (
	"sync"
)

// ChatHub fans chat messages out to every connection in the same room.
type ChatHub struct {
	rooms map[string]map[*chatClient]bool
	mu    sync.RWMutex
}

type chatClient struct {
	room string
	send chan []byte
}

func NewChatHub() *ChatHub {
	return &ChatHub{rooms: make(map[string]map[*chatClient]bool)}
}

func (h *ChatHub) register(cl *chatClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[cl.room] == nil {
		h.rooms[cl.room] = make(map[*chatClient]bool)
	}
	h.rooms[cl.room][cl] = true
}

// unregister removes the client and closes its send channel. Calling it twice
// is harmless.
func (h *ChatHub) unregister(cl *chatClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[cl.room]
	if !ok || !clients[cl] {
		return
	}
	delete(clients, cl)
	close(cl.send)
	if len(clients) == 0 {
		delete(h.rooms, cl.room)
	}
}

// broadcast queues payload for every client in room. Clients whose buffer is
// full miss the message rather than stalling the room.
func (h *ChatHub) broadcast(room string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for cl := range h.rooms[room] {
		select {
		case cl.send <- payload:
		default:
		}
	}
}

// ClientCount reports how many connections are in room.
func (h *ChatHub) ClientCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
