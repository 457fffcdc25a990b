package websocket

import (
	"crypto/rand"
	"encoding/base64"

	"bingo-backend/internal/app/session"
	"bingo-backend/internal/utils"

	"go.uber.org/zap"
)

type Client struct {
	hub        *Hub
	conn       ClientConn
	ID         string
	SessionID  uint64
	PlayerID   uint64
	SessionKey string
}

type ClientConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	Close() error
}

func generateClientID() string {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "xxxxx"
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

// Hub relays application events to every connected feed client.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	sessionSvc session.Service
	eventBus   *utils.EventBus
	logger     *zap.SugaredLogger
}

func NewHub(logger *zap.Logger, sessionSvc session.Service, eventBus *utils.EventBus) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		sessionSvc: sessionSvc,
		eventBus:   eventBus,
		logger:     logger.Sugar(),
	}
}

func (h *Hub) Run() {
	h.logger.Info("WebSocket Hub started")

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Infow("Client connected",
				"client_id", client.ID,
				"clients_count", len(h.clients),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				h.logger.Infow("Client disconnected",
					"client_id", client.ID,
					"clients_count", len(h.clients),
				)
			}

		case event := <-h.eventBus.Events():
			h.broadcast(event)
		}
	}
}

func (h *Hub) broadcast(event utils.Event) {
	for client := range h.clients {
		if err := client.conn.WriteJSON(event); err != nil {
			h.logger.Warnw("Failed to send event to client",
				"client_id", client.ID,
				"event", event.Event,
				"error", err,
			)
			client.conn.Close()
			delete(h.clients, client)
		}
	}
}
