package domain

import "time"

// Guest is owned by the front-desk/PMS side; the core only reads it after
// check-in creates or refreshes the record.
type Guest struct {
	ID          string
	Name        string
	RoomNumber  string
	ProfileTags []string // e.g. "foodie", "business", "cultura"
	CheckIn     *time.Time
	CheckOut    *time.Time
	Active      bool
}

// HasTag reports whether the guest profile carries the given tag.
func (g Guest) HasTag(tag string) bool {
	for _, t := range g.ProfileTags {
		if t == tag {
			return true
		}
	}
	return false
}
