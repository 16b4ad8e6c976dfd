package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"arame_concierge/internal/domain"
)

// StepKind tells the composer what happened to the flow this turn.
type StepKind string

const (
	StepPromptItem        StepKind = "prompt_item"
	StepPromptDestination StepKind = "prompt_destination"
	StepPromptPickupTime  StepKind = "prompt_pickup_time"
	StepRetryPickupTime   StepKind = "retry_pickup_time"
	StepConfirmOrder      StepKind = "confirm_order"
	StepConfirmTransport  StepKind = "confirm_transport"
	StepOrderCreated      StepKind = "order_created"
	StepTransportCreated  StepKind = "transport_created"
	StepCancelled         StepKind = "cancelled"
	StepAlreadyCompleted  StepKind = "already_completed"
	StepRetryPersist      StepKind = "retry_persist"
	StepNoItemsMatched    StepKind = "no_items_matched"
	StepRepeatConfirm     StepKind = "repeat_confirm"
)

// StepResult carries the outcome of one workflow turn plus whatever records
// the response needs to describe.
type StepResult struct {
	Kind      StepKind
	Order     *domain.RoomServiceOrder
	Transport *domain.TransportRequest
}

// WorkflowEngine drives the two slot-filling flows and owns the only code
// path that creates durable records. Record creation is guarded twice: a
// flow-id existence check here and a unique flow_id column in storage, so a
// replayed confirmation can never produce a second record.
type WorkflowEngine struct {
	orders    domain.OrderRepository
	transport domain.TransportRepository
	metrics   FlowObserver
	now       func() time.Time
}

// FlowObserver receives flow lifecycle events for metrics. Implementations
// must be safe for concurrent use.
type FlowObserver interface {
	ObserveFlow(flow, event string)
}

type nopFlowObserver struct{}

func (nopFlowObserver) ObserveFlow(string, string) {}

func NewWorkflowEngine(orders domain.OrderRepository, transport domain.TransportRepository, obs FlowObserver) *WorkflowEngine {
	if obs == nil {
		obs = nopFlowObserver{}
	}
	return &WorkflowEngine{orders: orders, transport: transport, metrics: obs, now: time.Now}
}

// StartRoomService opens a room service flow, minting the flow id that will
// key the eventual record. Items already extracted from the opening utterance
// skip straight to confirmation.
func (e *WorkflowEngine) StartRoomService(conv *domain.ConversationContext, items []domain.OrderItem) StepResult {
	conv.ResetFlow()
	conv.Flow = domain.FlowRoomService
	conv.FlowID = uuid.NewString()
	e.metrics.ObserveFlow("room_service", "started")

	if len(items) > 0 {
		conv.Items = items
		conv.State = domain.StateConfirming
		return StepResult{Kind: StepConfirmOrder}
	}
	conv.State = domain.StateCollecting
	conv.PendingSlot = domain.SlotItem
	return StepResult{Kind: StepPromptItem}
}

// AddItems handles the item slot reply. An utterance with no recognizable
// items re-prompts without losing the flow.
func (e *WorkflowEngine) AddItems(conv *domain.ConversationContext, items []domain.OrderItem) StepResult {
	if len(items) == 0 {
		return StepResult{Kind: StepNoItemsMatched}
	}
	conv.Items = append(conv.Items, items...)
	conv.PendingSlot = domain.SlotNone
	conv.State = domain.StateConfirming
	return StepResult{Kind: StepConfirmOrder}
}

// ConfirmRoomService resolves the confirmation step. Affirmative persists the
// order exactly once; negative returns to item collection with the basket
// cleared.
func (e *WorkflowEngine) ConfirmRoomService(ctx context.Context, guest domain.Guest, conv *domain.ConversationContext, affirmative bool) StepResult {
	if !affirmative {
		conv.Items = nil
		conv.State = domain.StateCollecting
		conv.PendingSlot = domain.SlotItem
		return StepResult{Kind: StepPromptItem}
	}

	exists, err := e.orders.OrderExists(ctx, conv.FlowID)
	if err != nil {
		log.Error().Err(err).Str("flow_id", conv.FlowID).Msg("order existence check failed")
		return StepResult{Kind: StepRetryPersist}
	}
	if exists {
		order, err := e.orders.GetOrderByFlow(ctx, conv.FlowID)
		conv.ResetFlow()
		if err != nil {
			return StepResult{Kind: StepAlreadyCompleted}
		}
		return StepResult{Kind: StepAlreadyCompleted, Order: &order}
	}

	order := domain.RoomServiceOrder{
		FlowID:     conv.FlowID,
		GuestID:    guest.ID,
		RoomNumber: guest.RoomNumber,
		Items:      conv.Items,
		Total:      orderTotal(conv.Items),
		Status:     domain.OrderConfirmed,
		CreatedAt:  e.now(),
	}
	id, err := e.orders.CreateOrder(ctx, order)
	if err != nil {
		if err == domain.ErrFlowConflict {
			// Lost the race against our own retry; the record exists.
			conv.ResetFlow()
			e.metrics.ObserveFlow("room_service", "duplicate_suppressed")
			return StepResult{Kind: StepAlreadyCompleted}
		}
		log.Error().Err(err).Str("flow_id", conv.FlowID).Msg("order persist failed")
		return StepResult{Kind: StepRetryPersist}
	}
	order.ID = id
	conv.ResetFlow()
	e.metrics.ObserveFlow("room_service", "completed")
	return StepResult{Kind: StepOrderCreated, Order: &order}
}

// Reconfirm re-emits the pending confirmation when the reply in a confirming
// state was neither a yes nor a no. Collected slots stay untouched.
func (e *WorkflowEngine) Reconfirm(conv *domain.ConversationContext) StepResult {
	return StepResult{Kind: StepRepeatConfirm}
}

// StartTransport opens a transport flow. Destination from the opening
// utterance is kept; the pickup time is always collected explicitly.
func (e *WorkflowEngine) StartTransport(conv *domain.ConversationContext, intent domain.Intent) StepResult {
	if conv.Flow != domain.FlowTransport {
		conv.ResetFlow()
		conv.Flow = domain.FlowTransport
		conv.FlowID = uuid.NewString()
		e.metrics.ObserveFlow("transport", "started")
	}
	if intent.Destination != "" {
		conv.Destination = intent.Destination
	}
	if intent.VehicleType != "" {
		conv.VehicleType = intent.VehicleType
	}
	if intent.Passengers > 0 {
		conv.Passengers = intent.Passengers
	}

	conv.State = domain.StateCollecting
	if conv.Destination == "" {
		conv.PendingSlot = domain.SlotDestination
		return StepResult{Kind: StepPromptDestination}
	}
	conv.PendingSlot = domain.SlotPickupTime
	return StepResult{Kind: StepPromptPickupTime}
}

// SetPickupTime parses the pickup time reply. Unparseable input re-asks;
// the flow never advances on a guessed time.
func (e *WorkflowEngine) SetPickupTime(conv *domain.ConversationContext, text string) StepResult {
	at, ok := ParsePickupTime(text, e.now())
	if !ok {
		return StepResult{Kind: StepRetryPickupTime}
	}
	conv.PickupAt = &at
	conv.PendingSlot = domain.SlotNone
	conv.State = domain.StateConfirming
	return StepResult{Kind: StepConfirmTransport}
}

// ConfirmTransport mirrors ConfirmRoomService for the transport flow;
// negative returns to the destination slot.
func (e *WorkflowEngine) ConfirmTransport(ctx context.Context, guest domain.Guest, conv *domain.ConversationContext, affirmative bool) StepResult {
	if !affirmative {
		conv.Destination = ""
		conv.PickupAt = nil
		conv.State = domain.StateCollecting
		conv.PendingSlot = domain.SlotDestination
		return StepResult{Kind: StepPromptDestination}
	}

	exists, err := e.transport.RequestExists(ctx, conv.FlowID)
	if err != nil {
		log.Error().Err(err).Str("flow_id", conv.FlowID).Msg("transport existence check failed")
		return StepResult{Kind: StepRetryPersist}
	}
	if exists {
		conv.ResetFlow()
		return StepResult{Kind: StepAlreadyCompleted}
	}

	req := domain.TransportRequest{
		FlowID:      conv.FlowID,
		GuestID:     guest.ID,
		Destination: conv.Destination,
		VehicleType: conv.VehicleType,
		Passengers:  conv.Passengers,
		Status:      domain.TransportScheduled,
		CreatedAt:   e.now(),
	}
	if req.VehicleType == "" {
		req.VehicleType = "taxi"
	}
	if req.Passengers == 0 {
		req.Passengers = 1
	}
	if conv.PickupAt != nil {
		req.PickupAt = *conv.PickupAt
	}
	id, err := e.transport.CreateRequest(ctx, req)
	if err != nil {
		if err == domain.ErrFlowConflict {
			conv.ResetFlow()
			e.metrics.ObserveFlow("transport", "duplicate_suppressed")
			return StepResult{Kind: StepAlreadyCompleted}
		}
		log.Error().Err(err).Str("flow_id", conv.FlowID).Msg("transport persist failed")
		return StepResult{Kind: StepRetryPersist}
	}
	req.ID = id
	conv.ResetFlow()
	e.metrics.ObserveFlow("transport", "completed")
	return StepResult{Kind: StepTransportCreated, Transport: &req}
}

// Cancel abandons whichever flow is active. No record is ever written for a
// cancelled flow.
func (e *WorkflowEngine) Cancel(conv *domain.ConversationContext) StepResult {
	if conv.InFlow() {
		e.metrics.ObserveFlow(string(conv.Flow), "cancelled")
	}
	conv.ResetFlow()
	return StepResult{Kind: StepCancelled}
}

func orderTotal(items []domain.OrderItem) int {
	total := 0
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}
