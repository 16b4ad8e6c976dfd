package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"arame_concierge/internal/domain"
)

// IntentObserver counts classified intents for metrics.
type IntentObserver interface {
	ObserveIntent(intent string)
}

type nopIntentObserver struct{}

func (nopIntentObserver) ObserveIntent(string) {}

// Reply is the outcome of one guest message.
type Reply struct {
	Intent domain.IntentTag `json:"intent"`
	Text   string           `json:"text"`
}

// Concierge is the orchestrator: it serializes turns per guest, loads state,
// classifies, routes to the workflow engine or a direct responder, and writes
// the updated context back. Messages from different guests proceed in
// parallel; messages from the same guest are strictly ordered.
type Concierge struct {
	guests     domain.GuestDirectory
	contexts   domain.ContextStore
	classifier *Classifier
	workflow   *WorkflowEngine
	recommend  *RecommendationEngine
	signals    *SignalService
	content    domain.ContentStore
	composer   *Composer
	metrics    IntentObserver
	now        func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewConcierge(
	guests domain.GuestDirectory,
	contexts domain.ContextStore,
	classifier *Classifier,
	workflow *WorkflowEngine,
	recommend *RecommendationEngine,
	signals *SignalService,
	content domain.ContentStore,
	composer *Composer,
	metrics IntentObserver,
) *Concierge {
	if metrics == nil {
		metrics = nopIntentObserver{}
	}
	return &Concierge{
		guests:     guests,
		contexts:   contexts,
		classifier: classifier,
		workflow:   workflow,
		recommend:  recommend,
		signals:    signals,
		content:    content,
		composer:   composer,
		metrics:    metrics,
		now:        time.Now,
		locks:      map[string]*sync.Mutex{},
	}
}

// CheckIn registers (or refreshes) a guest, starts them from a clean
// conversational slate, and returns the welcome message to deliver.
func (s *Concierge) CheckIn(ctx context.Context, g domain.Guest) (string, error) {
	g.Active = true
	if err := s.guests.UpsertGuest(ctx, g); err != nil {
		return "", err
	}
	if err := s.contexts.Clear(ctx, g.ID); err != nil {
		log.Warn().Err(err).Str("guest_id", g.ID).Msg("context clear on check-in failed")
	}
	return s.composer.Welcome(g, s.now()), nil
}

// HandleMessage processes one guest utterance end to end and returns the
// reply. Unknown guests get domain.ErrNotFound.
func (s *Concierge) HandleMessage(ctx context.Context, guestID, text string) (Reply, error) {
	lock := s.lockFor(guestID)
	lock.Lock()
	defer lock.Unlock()

	guest, err := s.guests.GetGuest(ctx, guestID)
	if err != nil {
		return Reply{}, err
	}

	conv, err := s.contexts.Get(ctx, guestID)
	if err != nil {
		// Degraded state store: answer from a fresh context rather than fail
		// the turn. Any active flow is lost, which the guest can restart.
		log.Error().Err(err).Str("guest_id", guestID).Msg("context load failed, starting fresh")
		conv = domain.NewContext(guestID, s.now())
	}

	intent := s.classifier.Classify(text, conv)
	s.metrics.ObserveIntent(string(intent.Tag))

	reply := s.route(ctx, guest, &conv, intent)

	conv.Greeted = true
	conv.LastUpdated = s.now()
	if err := s.contexts.Put(ctx, conv); err != nil {
		log.Error().Err(err).Str("guest_id", guestID).Msg("context save failed")
	}

	return Reply{Intent: intent.Tag, Text: reply}, nil
}

// Recommendations serves the read-only recommendation endpoint.
func (s *Concierge) Recommendations(ctx context.Context, guestID string, category domain.PlaceCategory) ([]domain.PlaceCandidate, error) {
	guest, err := s.guests.GetGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	cands, _ := s.recommend.Recommend(ctx, guest, category)
	return cands, nil
}

// Menu exposes the room service menu for the read-only endpoint.
func (s *Concierge) Menu() []domain.MenuItem { return s.content.Menu() }

// FaqTopics exposes the FAQ list for the read-only endpoint.
func (s *Concierge) FaqTopics() []domain.FaqTopic { return s.content.FaqTopics() }

func (s *Concierge) route(ctx context.Context, guest domain.Guest, conv *domain.ConversationContext, intent domain.Intent) string {
	switch intent.Tag {
	case domain.IntentWelcome:
		return s.composer.Welcome(guest, s.now())
	case domain.IntentFarewell:
		return s.composer.Farewell(guest)
	case domain.IntentThanks:
		return s.composer.Thanks()
	case domain.IntentHelp:
		return s.composer.Help()
	case domain.IntentWeather:
		return s.composer.WeatherReply(s.signals.Weather(ctx))
	case domain.IntentFAQ:
		if answer, ok := s.content.FaqAnswer(intent.FaqTopic); ok {
			return s.composer.Faq(answer)
		}
		return s.composer.Unknown()
	case domain.IntentRecommend:
		cands, weather := s.recommend.Recommend(ctx, guest, intent.Category)
		return s.composer.Recommendations(cands, weather, intent.Category)

	case domain.IntentRoomServiceStart:
		res := s.workflow.StartRoomService(conv, intent.Items)
		if intent.WantsMenu && res.Kind == StepPromptItem {
			return s.composer.Menu(s.content.Menu())
		}
		return s.stepText(guest, conv, res)
	case domain.IntentRoomServiceItem:
		if intent.WantsMenu {
			return s.composer.Menu(s.content.Menu())
		}
		return s.stepText(guest, conv, s.workflow.AddItems(conv, intent.Items))
	case domain.IntentRoomServiceConfirm:
		if intent.Unclear {
			return s.stepText(guest, conv, s.workflow.Reconfirm(conv))
		}
		return s.stepText(guest, conv, s.workflow.ConfirmRoomService(ctx, guest, conv, intent.Affirmative))

	case domain.IntentTransportRequest:
		return s.stepText(guest, conv, s.workflow.StartTransport(conv, intent))
	case domain.IntentTransportTime:
		return s.stepText(guest, conv, s.workflow.SetPickupTime(conv, intent.PickupText))
	case domain.IntentTransportConfirm:
		if intent.Unclear {
			return s.stepText(guest, conv, s.workflow.Reconfirm(conv))
		}
		return s.stepText(guest, conv, s.workflow.ConfirmTransport(ctx, guest, conv, intent.Affirmative))

	case domain.IntentCancel:
		return s.stepText(guest, conv, s.workflow.Cancel(conv))
	}
	return s.composer.Unknown()
}

func (s *Concierge) stepText(guest domain.Guest, conv *domain.ConversationContext, res StepResult) string {
	switch res.Kind {
	case StepPromptItem:
		return s.composer.PromptItem()
	case StepNoItemsMatched:
		return s.composer.NoItemsMatched()
	case StepConfirmOrder:
		return s.composer.ConfirmOrder(conv.Items, guest.RoomNumber)
	case StepOrderCreated:
		return s.composer.OrderCreated(*res.Order)
	case StepPromptDestination:
		return s.composer.PromptDestination()
	case StepPromptPickupTime:
		return s.composer.PromptPickupTime(conv.Destination)
	case StepRetryPickupTime:
		return s.composer.RetryPickupTime()
	case StepConfirmTransport:
		return s.composer.ConfirmTransport(*conv)
	case StepRepeatConfirm:
		if conv.Flow == domain.FlowTransport {
			return s.composer.RepeatConfirm(s.composer.ConfirmTransport(*conv))
		}
		return s.composer.RepeatConfirm(s.composer.ConfirmOrder(conv.Items, guest.RoomNumber))
	case StepTransportCreated:
		return s.composer.TransportCreated(*res.Transport)
	case StepAlreadyCompleted:
		return s.composer.AlreadyCompleted()
	case StepRetryPersist:
		return s.composer.RetryPersist()
	case StepCancelled:
		return s.composer.Cancelled()
	}
	return s.composer.Unknown()
}

func (s *Concierge) lockFor(guestID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[guestID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[guestID] = lock
	}
	return lock
}
