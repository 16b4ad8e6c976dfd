package app_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arame_concierge/internal/domain"
)

func TestConcierge_UnknownGuestRejected(t *testing.T) {
	h := newHarness(nil, nil)

	_, err := h.concierge.HandleMessage(context.Background(), "ghost", "hola")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConcierge_RoomServiceConversation(t *testing.T) {
	guest := domain.Guest{ID: "g-305", Name: "Laura Gómez", RoomNumber: "305", Active: true}
	h := newHarness(nil, nil, guest)
	ctx := context.Background()

	r, err := h.concierge.HandleMessage(ctx, guest.ID, "Hola")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentWelcome, r.Intent)
	assert.Contains(t, r.Text, "Laura")

	r, err = h.concierge.HandleMessage(ctx, guest.ID, "Quiero ordenar comida a la habitación")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentRoomServiceStart, r.Intent)

	r, err = h.concierge.HandleMessage(ctx, guest.ID, "Una hamburguesa y una limonada de coco")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentRoomServiceItem, r.Intent)
	assert.Contains(t, r.Text, "Hamburguesa Aramé")
	assert.Contains(t, r.Text, "305")

	r, err = h.concierge.HandleMessage(ctx, guest.ID, "Sí, confirmo")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentRoomServiceConfirm, r.Intent)
	assert.Equal(t, 1, h.orders.inserts)

	// flow is done; a stray "sí" is no longer a confirmation
	r, err = h.concierge.HandleMessage(ctx, guest.ID, "sí")
	require.NoError(t, err)
	assert.Equal(t, 1, h.orders.inserts)
}

func TestConcierge_TransportConversation(t *testing.T) {
	guest := domain.Guest{ID: "g-412", Name: "Carlos Mejía", RoomNumber: "412", Active: true}
	h := newHarness(nil, nil, guest)
	ctx := context.Background()

	steps := []struct {
		text string
		want domain.IntentTag
	}{
		{"Buenas tardes", domain.IntentWelcome},
		{"Necesito un taxi al aeropuerto", domain.IntentTransportRequest},
		{"a las 6 de la mañana", domain.IntentTransportTime},
		{"sí", domain.IntentTransportConfirm},
	}
	for _, st := range steps {
		r, err := h.concierge.HandleMessage(ctx, guest.ID, st.text)
		require.NoError(t, err)
		assert.Equal(t, st.want, r.Intent, "text=%q", st.text)
	}
	assert.Equal(t, 1, h.transport.inserts)

	req := func() domain.TransportRequest {
		for _, r := range h.transport.byFlow {
			return r
		}
		return domain.TransportRequest{}
	}()
	assert.Equal(t, "aeropuerto", req.Destination)
	assert.Equal(t, guest.ID, req.GuestID)
}

func TestConcierge_AmbiguousConfirmKeepsBasket(t *testing.T) {
	guest := domain.Guest{ID: "g-510", Name: "Marta León", RoomNumber: "510", Active: true}
	h := newHarness(nil, nil, guest)
	ctx := context.Background()

	_, err := h.concierge.HandleMessage(ctx, guest.ID, "Hola")
	require.NoError(t, err)
	_, err = h.concierge.HandleMessage(ctx, guest.ID, "quiero ordenar una hamburguesa")
	require.NoError(t, err)

	// neither yes nor no: the summary comes back and nothing is lost
	r, err := h.concierge.HandleMessage(ctx, guest.ID, "mmm ¿viene con papas?")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentRoomServiceConfirm, r.Intent)
	assert.Contains(t, r.Text, "Hamburguesa Aramé")
	assert.Equal(t, 0, h.orders.inserts)

	conv, _ := h.contexts.Get(ctx, guest.ID)
	require.Len(t, conv.Items, 1)
	assert.Equal(t, domain.StateConfirming, conv.State)

	_, err = h.concierge.HandleMessage(ctx, guest.ID, "sí")
	require.NoError(t, err)
	assert.Equal(t, 1, h.orders.inserts)
}

func TestConcierge_CancelMidFlow(t *testing.T) {
	guest := domain.Guest{ID: "g-207", Name: "Pedro Díaz", RoomNumber: "207", Active: true}
	h := newHarness(nil, nil, guest)
	ctx := context.Background()

	_, err := h.concierge.HandleMessage(ctx, guest.ID, "Hola")
	require.NoError(t, err)
	_, err = h.concierge.HandleMessage(ctx, guest.ID, "Quiero pedir comida")
	require.NoError(t, err)

	r, err := h.concierge.HandleMessage(ctx, guest.ID, "mejor cancelar")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentCancel, r.Intent)
	assert.Equal(t, 0, h.orders.inserts)

	conv, _ := h.contexts.Get(ctx, guest.ID)
	assert.False(t, conv.InFlow())
}

func TestConcierge_FaqAndWeatherDegraded(t *testing.T) {
	guest := domain.Guest{ID: "g-118", Name: "Ana Ruiz", RoomNumber: "118", Active: true}
	h := newHarness(&stubWeather{err: domain.ErrUpstreamUnavailable}, nil, guest)
	ctx := context.Background()

	_, err := h.concierge.HandleMessage(ctx, guest.ID, "Hola")
	require.NoError(t, err)

	r, err := h.concierge.HandleMessage(ctx, guest.ID, "¿cuál es la clave del wifi?")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentFAQ, r.Intent)
	assert.Contains(t, r.Text, "Arame_Guest")

	// weather signal down: honest degraded answer, no internal error text
	r, err = h.concierge.HandleMessage(ctx, guest.ID, "¿cómo está el clima?")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentWeather, r.Intent)
	assert.NotContains(t, r.Text, "error")
	assert.Contains(t, r.Text, "no puedo consultar el clima")
}

func TestConcierge_GuestsAreIsolated(t *testing.T) {
	g1 := domain.Guest{ID: "g-1", Name: "Uno", RoomNumber: "101", Active: true}
	g2 := domain.Guest{ID: "g-2", Name: "Dos", RoomNumber: "102", Active: true}
	h := newHarness(nil, nil, g1, g2)
	ctx := context.Background()

	_, err := h.concierge.HandleMessage(ctx, g1.ID, "Hola")
	require.NoError(t, err)
	_, err = h.concierge.HandleMessage(ctx, g2.ID, "Hola")
	require.NoError(t, err)

	// g1 enters a room service flow; g2 stays idle
	_, err = h.concierge.HandleMessage(ctx, g1.ID, "quiero ordenar comida")
	require.NoError(t, err)

	conv1, _ := h.contexts.Get(ctx, g1.ID)
	conv2, _ := h.contexts.Get(ctx, g2.ID)
	assert.Equal(t, domain.FlowRoomService, conv1.Flow)
	assert.False(t, conv2.InFlow())
}

func TestConcierge_ConcurrentGuestsProceedIndependently(t *testing.T) {
	guests := make([]domain.Guest, 8)
	for i := range guests {
		guests[i] = domain.Guest{ID: fmt.Sprintf("g-%d", i), RoomNumber: fmt.Sprintf("%d", 100+i), Active: true}
	}
	h := newHarness(nil, nil, guests...)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, g := range guests {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, msg := range []string{"Hola", "quiero ordenar comida", "una hamburguesa", "sí"} {
				if _, err := h.concierge.HandleMessage(ctx, g.ID, msg); err != nil {
					t.Errorf("guest %s: %v", g.ID, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, len(guests), h.orders.inserts)
}

func TestConcierge_CheckInClearsContext(t *testing.T) {
	guest := domain.Guest{ID: "g-9", Name: "Re Check", RoomNumber: "900"}
	h := newHarness(nil, nil)
	ctx := context.Background()

	welcome, err := h.concierge.CheckIn(ctx, guest)
	require.NoError(t, err)
	assert.Contains(t, welcome, "Re")

	_, err = h.concierge.HandleMessage(ctx, guest.ID, "Hola")
	require.NoError(t, err)
	_, err = h.concierge.HandleMessage(ctx, guest.ID, "quiero ordenar comida")
	require.NoError(t, err)

	// re-check-in mid-flow starts a clean slate
	_, err = h.concierge.CheckIn(ctx, guest)
	require.NoError(t, err)
	conv, _ := h.contexts.Get(ctx, guest.ID)
	assert.False(t, conv.InFlow())

	r, err := h.concierge.HandleMessage(ctx, guest.ID, "quiero ordenar comida")
	require.NoError(t, err)
	assert.Equal(t, domain.IntentWelcome, r.Intent)
}
