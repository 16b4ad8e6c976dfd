package domain

type IntentTag string

const (
	IntentWelcome            IntentTag = "welcome"
	IntentFarewell           IntentTag = "farewell"
	IntentThanks             IntentTag = "thanks"
	IntentHelp               IntentTag = "help"
	IntentWeather            IntentTag = "weather"
	IntentFAQ                IntentTag = "faq"
	IntentRecommend          IntentTag = "recommend"
	IntentRoomServiceStart   IntentTag = "room_service_start"
	IntentRoomServiceItem    IntentTag = "room_service_item"
	IntentRoomServiceConfirm IntentTag = "room_service_confirm"
	IntentTransportRequest   IntentTag = "transport_request"
	IntentTransportTime      IntentTag = "transport_time"
	IntentTransportConfirm   IntentTag = "transport_confirm"
	IntentCancel             IntentTag = "cancel"
	IntentUnknown            IntentTag = "unknown"
)

// Intent is the ephemeral classification of a single utterance, plus any slot
// values extracted from it. Never persisted.
type Intent struct {
	Tag         IntentTag
	Items       []OrderItem   // room service items with quantities
	Destination string        // transport destination, cleaned
	PickupText  string        // raw pickup time expression
	Category    PlaceCategory // recommendation category, if mentioned
	FaqTopic    string
	VehicleType string
	Passengers  int
	Affirmative bool // meaning of a confirm-state reply
	Unclear     bool // confirm-state reply was neither a yes nor a no
	WantsMenu   bool // guest asked to see the menu
}
