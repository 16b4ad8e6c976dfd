package domain

import "time"

type FlowTag string

const (
	FlowNone        FlowTag = ""
	FlowRoomService FlowTag = "room_service"
	FlowTransport   FlowTag = "transport"
)

type FlowState string

const (
	StateIdle       FlowState = "idle"
	StateCollecting FlowState = "collecting"
	StateConfirming FlowState = "confirming"
)

type SlotName string

const (
	SlotNone        SlotName = ""
	SlotItem        SlotName = "item"
	SlotDestination SlotName = "destination"
	SlotPickupTime  SlotName = "pickup_time"
)

// ConversationContext is the per-guest dialog state. Exactly one per guest;
// only the workflow engine mutates flow fields. A context older than the idle
// threshold is treated as expired and replaced by a fresh one on Get.
type ConversationContext struct {
	GuestID     string      `json:"guest_id"`
	Flow        FlowTag     `json:"flow"`
	FlowID      string      `json:"flow_id,omitempty"` // minted at flow start
	State       FlowState   `json:"state"`
	PendingSlot SlotName    `json:"pending_slot,omitempty"`
	Items       []OrderItem `json:"items,omitempty"`
	Destination string      `json:"destination,omitempty"`
	PickupAt    *time.Time  `json:"pickup_at,omitempty"`
	VehicleType string      `json:"vehicle_type,omitempty"`
	Passengers  int         `json:"passengers,omitempty"`
	Greeted     bool        `json:"greeted"`
	LastUpdated time.Time   `json:"last_updated"`
}

// NewContext returns the idle context for a guest.
func NewContext(guestID string, now time.Time) ConversationContext {
	return ConversationContext{GuestID: guestID, State: StateIdle, LastUpdated: now}
}

// InFlow reports whether a multi-turn flow is active.
func (c ConversationContext) InFlow() bool { return c.Flow != FlowNone }

// Expired reports whether the context has sat idle past the threshold.
func (c ConversationContext) Expired(now time.Time, idle time.Duration) bool {
	return idle > 0 && now.Sub(c.LastUpdated) > idle
}

// ResetFlow clears flow state but keeps conversational facts (Greeted).
func (c *ConversationContext) ResetFlow() {
	c.Flow = FlowNone
	c.FlowID = ""
	c.State = StateIdle
	c.PendingSlot = SlotNone
	c.Items = nil
	c.Destination = ""
	c.PickupAt = nil
	c.VehicleType = ""
	c.Passengers = 0
}
