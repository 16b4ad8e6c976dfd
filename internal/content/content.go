// Package content is the static hotel content store: FAQ entries, the room
// service menu, and the local place catalog around Hotel Aramé.
package content

import (
	"strings"

	"arame_concierge/internal/domain"
)

type Store struct {
	faqs   []domain.FaqTopic
	menu   []domain.MenuItem
	places []domain.Place
}

func New() *Store {
	return &Store{faqs: faqTopics, menu: menuItems, places: placeCatalog}
}

func (s *Store) FaqTopics() []domain.FaqTopic { return s.faqs }

func (s *Store) FaqAnswer(topic string) (string, bool) {
	for _, f := range s.faqs {
		if f.Key == topic {
			return f.Answer, true
		}
	}
	return "", false
}

func (s *Store) Menu() []domain.MenuItem { return s.menu }

func (s *Store) Places() []domain.Place { return s.places }

var accentFold = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
)

func fold(s string) string { return accentFold.Replace(strings.ToLower(strings.TrimSpace(s))) }

// MatchMenuItem resolves a guest-typed item name against the menu: exact
// match first, then substring in either direction. Accents are folded and
// plural forms drop a trailing "s" before matching ("hamburguesas" ->
// "hamburguesa").
func (s *Store) MatchMenuItem(name string) (domain.MenuItem, bool) {
	n := fold(name)
	singular := strings.TrimSuffix(n, "s")
	for _, it := range s.menu {
		if fold(it.Name) == n || fold(it.Name) == singular {
			return it, true
		}
	}
	for _, it := range s.menu {
		low := fold(it.Name)
		if strings.Contains(low, n) || strings.Contains(n, low) ||
			strings.Contains(low, singular) || strings.Contains(singular, low) {
			return it, true
		}
	}
	return domain.MenuItem{}, false
}
