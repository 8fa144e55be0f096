package websocket

import (
	"sync"
)

// hub keeps the connected clients and the sessions each of them follows.
type hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	sessions map[string]map[*client]struct{}
}

func newHub() *hub {
	return &hub{
		clients:  make(map[*client]struct{}),
		sessions: make(map[string]map[*client]struct{}),
	}
}

func (that *hub) register(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[c] = struct{}{}
}

// unregister removes the client from every session and closes its send queue.
func (that *hub) unregister(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[c]; !ok {
		return
	}

	delete(that.clients, c)

	for sessionID, subscribers := range that.sessions {
		delete(subscribers, c)
		if len(subscribers) == 0 {
			delete(that.sessions, sessionID)
		}
	}

	close(c.send)
}

func (that *hub) subscribe(sessionID string, c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[c]; !ok {
		return
	}

	if that.sessions[sessionID] == nil {
		that.sessions[sessionID] = make(map[*client]struct{})
	}
	that.sessions[sessionID][c] = struct{}{}
}

func (that *hub) subscribers(sessionID string) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions[sessionID])
}

// sendTo queues data for one client.
func (that *hub) sendTo(c *client, data []byte) {
	that.mu.RLock()
	_, ok := that.clients[c]
	slow := ok && !c.enqueue(data)
	that.mu.RUnlock()

	if slow {
		that.unregister(c)
	}
}

// broadcastToSession queues data for every subscriber of the session.
func (that *hub) broadcastToSession(sessionID string, data []byte) {
	that.mu.RLock()
	slow := make([]*client, 0)
	for c := range that.sessions[sessionID] {
		if !c.enqueue(data) {
			slow = append(slow, c)
		}
	}
	that.mu.RUnlock()

	that.drop(slow)
}

// broadcast queues data for every connected client.
func (that *hub) broadcast(data []byte) {
	that.mu.RLock()
	slow := make([]*client, 0)
	for c := range that.clients {
		if !c.enqueue(data) {
			slow = append(slow, c)
		}
	}
	that.mu.RUnlock()

	that.drop(slow)
}

// drop disconnects clients whose send queue is full.
func (that *hub) drop(clients []*client) {
	for _, c := range clients {
		that.unregister(c)
	}
}
