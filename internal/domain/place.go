package domain

type PlaceCategory string

const (
	CategoryRestaurant PlaceCategory = "restaurant"
	CategoryBar        PlaceCategory = "bar"
	CategoryCafe       PlaceCategory = "cafe"
	CategoryMuseum     PlaceCategory = "museum"
	CategoryPark       PlaceCategory = "park"
	CategoryAttraction PlaceCategory = "attraction"
	CategoryShopping   PlaceCategory = "shopping"
)

type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// TimeOfDayFor maps an hour (0..23) onto the three coarse windows.
func TimeOfDayFor(hour int) TimeOfDay {
	switch {
	case hour < 12:
		return Morning
	case hour < 18:
		return Afternoon
	default:
		return Evening
	}
}

type Coords struct{ Lat, Lon float64 }

// Place is a static catalog entry.
type Place struct {
	Name        string
	Category    PlaceCategory
	Description string
	Address     string
	Coords      *Coords // nil when unknown; distance stays unavailable
	Tags        []string
	IdealWindow []TimeOfDay
}

// HasTag reports whether the place carries the given tag (e.g. "indoor").
func (p Place) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// InWindow reports whether the time of day falls in the place's ideal window.
func (p Place) InWindow(tod TimeOfDay) bool {
	for _, w := range p.IdealWindow {
		if w == tod {
			return true
		}
	}
	return false
}

const DistanceUnknown = -1

// PlaceCandidate is the recommendation engine output, ephemeral per call.
type PlaceCandidate struct {
	Place          Place
	DistanceMeters int // DistanceUnknown when no signal available
	ETAMinutes     int
	Score          float64
	Tip            string
}

// Weather is the external weather signal. The zero value means unavailable.
type Weather struct {
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
}

func (w Weather) Available() bool { return w.Condition != "" }

// Raining matches both Spanish and provider condition strings.
func (w Weather) Raining() bool {
	switch w.Condition {
	case "Rain", "Drizzle", "Thunderstorm", "Lluvioso", "lluvia":
		return true
	}
	return false
}

// TravelInfo is the external distance/ETA signal for a fixed origin.
type TravelInfo struct {
	DistanceMeters int `json:"distance_meters"`
	ETAMinutes     int `json:"eta_minutes"`
}

func (t TravelInfo) Available() bool { return t.DistanceMeters > 0 }

// MenuItem is one room service menu entry. Price in COP.
type MenuItem struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// FaqTopic couples a topic key with its matching keywords and stored answer.
type FaqTopic struct {
	Key      string
	Keywords []string
	Answer   string
}
