package stream

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Hub fans plan updates out to websocket clients watching a team. When a
// redis client is configured, updates are also relayed across instances
// via pub/sub.
type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	TeamID string
	Send   chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(teamID string) *Client {
	client := &Client{
		TeamID: teamID,
		Send:   make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[teamID] == nil {
		h.clients[teamID] = map[*Client]struct{}{}
	}
	h.clients[teamID][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if teamClients, ok := h.clients[client.TeamID]; ok {
		delete(teamClients, client)
		if len(teamClients) == 0 {
			delete(h.clients, client.TeamID)
		}
	}
	close(client.Send)
}

func (h *Hub) Broadcast(teamID string, payload []byte) {
	h.mu.RLock()
	clients := h.clients[teamID]
	h.mu.RUnlock()

	for client := range clients {
		select {
		case client.Send <- payload:
		default:
		}
	}

	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(teamID), payload).Err()
		if err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "plan:*:updates")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		teamID := teamIDFromChannel(msg.Channel)
		h.mu.RLock()
		clients := h.clients[teamID]
		h.mu.RUnlock()
		for client := range clients {
			select {
			case client.Send <- []byte(msg.Payload):
			default:
			}
		}
	}
}

func redisChannel(teamID string) string {
	return "plan:" + teamID + ":updates"
}

func teamIDFromChannel(ch string) string {
	// plan:{team}:updates
	const prefix = "plan:"
	const suffix = ":updates"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
