package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderFulfilled OrderStatus = "fulfilled"
	OrderCancelled OrderStatus = "cancelled"
)

type TransportStatus string

const (
	TransportPending   TransportStatus = "pending"
	TransportScheduled TransportStatus = "scheduled"
	TransportCancelled TransportStatus = "cancelled"
)

// OrderItem is one line of a room service order. Price is in COP;
// zero means the item was not recognized against the menu.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// RoomServiceOrder is created by the workflow engine on explicit confirmation,
// at most once per flow instance (FlowID is the idempotency key together with
// the guest id).
type RoomServiceOrder struct {
	ID         int64
	FlowID     string
	GuestID    string
	RoomNumber string
	Items      []OrderItem
	Notes      string
	Total      int
	Status     OrderStatus
	CreatedAt  time.Time
}

// TransportRequest follows the same at-most-once creation rule as orders.
type TransportRequest struct {
	ID          int64
	FlowID      string
	GuestID     string
	PickupAt    time.Time
	Destination string
	VehicleType string
	Passengers  int
	Status      TransportStatus
	CreatedAt   time.Time
}
