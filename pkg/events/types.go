// Package events fans orchestration envelopes out to WebSocket
// subscribers. The hub is entirely in-process: every envelope is kept
// in a bounded per-commander ring so late subscribers can catch up
// without a storage round trip, and slow consumers are dropped rather
// than allowed to stall publishers.
package events

// GlobalChannel carries phase transitions for every orchestration. The
// dashboard list page subscribes here for real-time updates.
const GlobalChannel = "orchestrations"

// CommanderChannel returns the channel name for a specific
// orchestration's events. Format: "orchestration:{commander_id}"
func CommanderChannel(commanderID string) string {
	return "orchestration:" + commanderID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action  string `json:"action"`             // "subscribe", "unsubscribe", "catchup", "ping"
	Channel string `json:"channel,omitempty"`  // Channel name (e.g., "orchestration:abc-123")
	LastSeq *int64 `json:"last_seq,omitempty"` // For catchup
}
