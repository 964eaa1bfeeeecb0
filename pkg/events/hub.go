package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/models"
)

// outboxSize bounds per-connection queued messages. A consumer that
// falls this far behind is dropped so publishers never block.
const outboxSize = 64

// maxRings bounds how many commander channels retain catch-up history.
// When exceeded, the ring with the oldest write is dropped; clients of
// long-gone orchestrations fall back to a REST reload.
const maxRings = 256

// Hub manages WebSocket connections, channel subscriptions, and
// per-commander catch-up rings. Each process has one Hub instance.
// It is the orchestrator's event sink: Publish never blocks.
type Hub struct {
	log *slog.Logger

	writeTimeout time.Duration
	catchupSize  int

	// Active connections: connection_id → *Connection
	mu          sync.RWMutex
	connections map[string]*Connection
	closed      bool

	// Channel subscriptions: channel → set of connection_ids
	channelMu sync.RWMutex
	channels  map[string]map[string]bool

	// Catch-up rings: commander channel → recent envelopes
	ringMu    sync.Mutex
	rings     map[string]*catchupRing
	ringTouch map[string]time.Time
}

// Connection represents a single WebSocket client.
//
// subscriptions is accessed WITHOUT a lock. This is safe because all
// reads and writes happen on the single goroutine that owns this
// connection (HandleConnection's read loop and its deferred cleanup).
// outbox is the only cross-goroutine surface; writeLoop drains it.
type Connection struct {
	ID            string
	conn          *websocket.Conn
	subscriptions map[string]bool
	outbox        chan []byte
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewHub creates a hub with the given buffer settings.
func NewHub(cfg config.EventsConfig) *Hub {
	catchup := cfg.CatchupSize
	if catchup <= 0 {
		catchup = 200
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &Hub{
		log:          slog.Default().With("component", "events"),
		writeTimeout: writeTimeout,
		catchupSize:  catchup,
		connections:  make(map[string]*Connection),
		channels:     make(map[string]map[string]bool),
		rings:        make(map[string]*catchupRing),
		ringTouch:    make(map[string]time.Time),
	}
}

// Publish records the envelope in its commander's catch-up ring and
// fans it out to subscribers. Phase transitions are additionally
// broadcast on the global channel for the dashboard list page. Slow
// consumers are dropped, never waited on.
func (h *Hub) Publish(env models.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.log.Warn("Dropping unmarshalable envelope", "kind", env.Kind, "error", err)
		return
	}

	channel := CommanderChannel(env.CommanderID)
	h.record(channel, env.Seq, data)
	h.broadcast(channel, data)
	if env.Kind == models.EventPhaseChanged {
		h.broadcast(GlobalChannel, data)
	}
}

// HandleConnection manages the lifecycle of a single WebSocket
// connection. Called by the WebSocket HTTP handler after upgrade.
// Blocks until the connection closes.
func (h *Hub) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		conn:          conn,
		subscriptions: make(map[string]bool),
		outbox:        make(chan []byte, outboxSize),
		ctx:           ctx,
		cancel:        cancel,
	}

	if !h.register(c) {
		cancel()
		_ = conn.Close(websocket.StatusGoingAway, "shutting down")
		return
	}
	defer h.unregister(c)

	go h.writeLoop(c)

	h.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	// Read loop: process client messages until the connection closes
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.log.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		h.handleClientMessage(c, &msg)
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Close tears down every connection and refuses new ones. In-flight
// HandleConnection calls return as their contexts cancel.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	conns := make([]*Connection, 0, len(h.connections))
	for _, c := range h.connections {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		c.cancel()
	}
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported: used by tests to poll instead of sleeping.
func (h *Hub) subscriberCount(channel string) int {
	h.channelMu.RLock()
	defer h.channelMu.RUnlock()
	return len(h.channels[channel])
}

// handleClientMessage dispatches a client message to the appropriate handler.
func (h *Hub) handleClientMessage(c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		// The subscription is registered before the ring is read, so an
		// event published in between is never lost; it may instead be
		// delivered twice (live and replayed). Clients drop dupes by seq.
		h.subscribe(c, msg.Channel)
		h.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Auto catch-up: deliver retained events so late subscribers
		// don't miss anything.
		h.handleCatchup(c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		h.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastSeq != nil {
			h.handleCatchup(c, msg.Channel, *msg.LastSeq)
		}

	case "ping":
		h.sendJSON(c, map[string]string{"type": "pong"})
	}
}

func (h *Hub) subscribe(c *Connection, channel string) {
	h.channelMu.Lock()
	if _, exists := h.channels[channel]; !exists {
		h.channels[channel] = make(map[string]bool)
	}
	h.channels[channel][c.ID] = true
	h.channelMu.Unlock()

	c.subscriptions[channel] = true
}

func (h *Hub) unsubscribe(c *Connection, channel string) {
	h.channelMu.Lock()
	if subs, exists := h.channels[channel]; exists {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(h.channels, channel)
		}
	}
	h.channelMu.Unlock()

	delete(c.subscriptions, channel)
}

// handleCatchup replays retained events with seq greater than sinceSeq.
// When events beyond the ring were already evicted, the client is told
// to do a full REST reload instead of paginating catchup requests.
func (h *Hub) handleCatchup(c *Connection, channel string, sinceSeq int64) {
	h.ringMu.Lock()
	var missed [][]byte
	var lost bool
	if ring, ok := h.rings[channel]; ok {
		missed, lost = ring.since(sinceSeq)
	}
	h.ringMu.Unlock()

	for _, data := range missed {
		h.enqueue(c, data)
	}

	if lost {
		h.sendJSON(c, map[string]any{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

// record appends the envelope to the commander channel's ring, creating
// the ring (and evicting the coldest one at the cap) as needed.
func (h *Hub) record(channel string, seq int64, data []byte) {
	h.ringMu.Lock()
	defer h.ringMu.Unlock()

	ring, ok := h.rings[channel]
	if !ok {
		h.evictColdestRingLocked()
		ring = newCatchupRing(h.catchupSize)
		h.rings[channel] = ring
	}
	ring.add(seq, data)
	h.ringTouch[channel] = time.Now()
}

// evictColdestRingLocked makes room for one more ring. Holds ringMu.
func (h *Hub) evictColdestRingLocked() {
	if len(h.rings) < maxRings {
		return
	}
	var coldest string
	var oldest time.Time
	for ch, touched := range h.ringTouch {
		if coldest == "" || touched.Before(oldest) {
			coldest, oldest = ch, touched
		}
	}
	delete(h.rings, coldest)
	delete(h.ringTouch, coldest)
}

// broadcast sends an event payload to all connections subscribed to the
// given channel.
func (h *Hub) broadcast(channel string, data []byte) {
	h.channelMu.RLock()
	connIDs, exists := h.channels[channel]
	if !exists {
		h.channelMu.RUnlock()
		return
	}
	// Copy IDs to avoid holding the lock during sends
	ids := make([]string, 0, len(connIDs))
	for id := range connIDs {
		ids = append(ids, id)
	}
	h.channelMu.RUnlock()

	// Snapshot connection pointers under the lock, then release before
	// enqueueing, so register/unregister are never stalled.
	h.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := h.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		h.enqueue(conn, data)
	}
}

// enqueue hands data to the connection's write loop without blocking.
// A full outbox means the consumer cannot keep up; the connection is
// torn down so publishers never wait on it.
func (h *Hub) enqueue(c *Connection, data []byte) {
	select {
	case c.outbox <- data:
	default:
		h.log.Warn("Dropping slow WebSocket consumer", "connection_id", c.ID)
		c.cancel()
	}
}

// writeLoop serializes all sends for one connection. It exits when the
// connection context is cancelled; pending outbox entries are dropped.
func (h *Hub) writeLoop(c *Connection) {
	for {
		select {
		case <-c.ctx.Done():
			return
		case data := <-c.outbox:
			writeCtx, cancel := context.WithTimeout(c.ctx, h.writeTimeout)
			err := c.conn.Write(writeCtx, websocket.MessageText, data)
			cancel()
			if err != nil {
				h.log.Warn("Failed to send to WebSocket client",
					"connection_id", c.ID, "error", err)
				c.cancel()
				return
			}
		}
	}
}

// register adds a connection to the tracking map. It reports false when
// the hub is already closed.
func (h *Hub) register(c *Connection) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.connections[c.ID] = c
	return true
}

// unregister removes a connection and all its subscriptions.
func (h *Hub) unregister(c *Connection) {
	for ch := range c.subscriptions {
		h.unsubscribe(c, ch)
	}

	h.mu.Lock()
	delete(h.connections, c.ID)
	h.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and enqueues a control message for a single connection.
func (h *Hub) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		h.log.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	h.enqueue(c, data)
}
