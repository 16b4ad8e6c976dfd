package app

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"arame_concierge/internal/content"
	"arame_concierge/internal/domain"
)

// rule is one global intent pattern set. Score = number of patterns that
// match; highest score wins, ties broken by declaration order.
type rule struct {
	tag      domain.IntentTag
	patterns []*regexp.Regexp
}

func pats(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

var globalRules = []rule{
	{domain.IntentFarewell, pats(`\badios\b`, `\bchao\b`, `\bnos vemos\b`, `\bhasta luego\b`, `\bhasta pronto\b`)},
	{domain.IntentThanks, pats(`\bgracias\b`, `\bte agradezco\b`, `\bmuy amable\b`)},
	{domain.IntentHelp, pats(`\bayuda\b`, `\bayudame\b`, `\bque puedes hacer\b`, `\bcomo funciona\b`, `\bcomo te uso\b`)},
	{domain.IntentRoomServiceStart, pats(
		`\bservicio a la habitacion\b`, `\broom service\b`, `\bordenar\b.*\bcomida\b`,
		`\bcomer\b.*\bhabitacion\b`, `\bpedir\b.*\bcomer\b`, `\bquiero\b.*\bordenar\b`,
		`\bhambre\b`, `\btraer\b.*\bcomida\b`, `\bdesayuno\b.*\bhabitacion\b`, `\bver el menu\b`, `\bel menu\b`)},
	{domain.IntentTransportRequest, pats(
		`\btaxi\b`, `\btransporte\b`, `\buber\b`, `\bvehiculo\b`, `\btraslado\b`,
		`\bir\b.*\baeropuerto\b`, `\bnecesito\b.*\bcarro\b`, `\bmovilizarme\b`)},
	{domain.IntentWeather, pats(
		`\bclima\b`, `\btiempo\b.*\bhoy\b`, `\bllover\b`, `\blluvia\b`, `\btemperatura\b`, `\bpronostico\b`)},
	{domain.IntentRecommend, pats(
		`\brecomienda\b`, `\brecomiendas\b`, `\bsugieres\b`, `\bdonde\b.*\bcomer\b`,
		`\bdonde\b.*\bvisitar\b`, `\brestaurante\b`, `\bbar\b`, `\bcafe\b`, `\bmuseo\b`,
		`\bparque\b`, `\batraccion\b`, `\bturismo\b`, `\bactividad\b`, `\bconocer\b`)},
	{domain.IntentWelcome, pats(`\bhola\b`, `\bbuenos dias\b`, `\bbuenas tardes\b`, `\bbuenas noches\b`, `^hey\b`, `\bsaludos\b`)},
}

var (
	cancelRe      = regexp.MustCompile(`\bcancelar?\b|\banular?\b|\bolvidalo\b|\bya no\b|\bdejalo\b`)
	affirmativeRe = regexp.MustCompile(`^(si|sí)\b|\bconfirmo\b|\bconfirmar\b|\bdale\b|\bde acuerdo\b|\bcorrecto\b|\bperfecto\b|\besta bien\b|^ok\b|^listo\b`)
	negativeRe    = regexp.MustCompile(`^no\b|\bcambiar\b|\botra cosa\b|\bmejor no\b`)
	menuRe        = regexp.MustCompile(`\bmenu\b|\bla carta\b`)
	qtyTailRe     = regexp.MustCompile(`(\d+)\s*$`)
	passengersRe  = regexp.MustCompile(`para\s+(\d+)\s+personas`)
)

var categoryRules = []struct {
	cat domain.PlaceCategory
	re  *regexp.Regexp
}{
	{domain.CategoryRestaurant, regexp.MustCompile(`\brestaurante\b|\bcomer\b|\bcomida\b|\bgastronomia\b`)},
	{domain.CategoryBar, regexp.MustCompile(`\bbar\b|\bbeber\b|\btrago\b|\bcoctel\b|\bcerveza\b`)},
	{domain.CategoryCafe, regexp.MustCompile(`\bcafe\b|\bcafeteria\b`)},
	{domain.CategoryMuseum, regexp.MustCompile(`\bmuseo\b|\barte\b|\bcultura\b`)},
	{domain.CategoryPark, regexp.MustCompile(`\bparque\b|\bplaza\b|\bjardin\b`)},
	{domain.CategoryAttraction, regexp.MustCompile(`\bturismo\b|\batraccion\b|\bvisitar\b`)},
	{domain.CategoryShopping, regexp.MustCompile(`\btienda\b|\bcomprar\b|\bshopping\b|\bcentro comercial\b|\bmercado\b`)},
}

// order item vocabulary, multi-word terms first so they claim their span
// before the generic single words do.
var itemVocab = []string{
	"desayuno americano", "desayuno continental", "huevos benedictinos",
	"club sandwich", "sandwich vegetariano", "ensalada cesar", "ensalada de quinoa",
	"sopa del dia", "limonada de coco", "seleccion de frutas",
	"hamburguesa", "sandwich", "ensalada", "risotto", "salmon", "filete", "sopa",
	"pollo", "pescado", "carne", "huevos", "desayuno", "fruta", "tiramisu",
	"cheesecake", "postre", "helado", "agua", "jugo", "limonada", "cafe",
	"cerveza", "vino", "refresco", "gaseosa",
}

// Classifier maps a raw utterance plus the current conversation context onto
// one intent. Mid-flow slot interpretation takes precedence over the global
// rules so confirmations are never swallowed by unrelated patterns.
type Classifier struct {
	store *content.Store
}

func NewClassifier(store *content.Store) *Classifier {
	return &Classifier{store: store}
}

func (c *Classifier) Classify(text string, conv domain.ConversationContext) domain.Intent {
	norm := normalize(text)
	if norm == "" {
		return domain.Intent{Tag: domain.IntentUnknown}
	}

	if conv.InFlow() {
		return c.classifyInFlow(norm, conv)
	}

	// A guest we have never greeted gets the welcome regardless of wording.
	if !conv.Greeted {
		return domain.Intent{Tag: domain.IntentWelcome}
	}

	bestScore := 0
	best := domain.Intent{Tag: domain.IntentUnknown}
	for _, r := range globalRules {
		score := 0
		for _, p := range r.patterns {
			if p.MatchString(norm) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = domain.Intent{Tag: r.tag}
		}
	}

	// FAQ topics compete with the verb rules on the same specificity basis.
	if topic, score := c.matchFaq(norm); score > bestScore {
		return domain.Intent{Tag: domain.IntentFAQ, FaqTopic: topic}
	}

	switch best.Tag {
	case domain.IntentRecommend:
		best.Category = matchCategory(norm)
	case domain.IntentRoomServiceStart:
		best.WantsMenu = menuRe.MatchString(norm)
		if !best.WantsMenu {
			best.Items = c.parseOrderItems(norm)
		}
	case domain.IntentTransportRequest:
		best.Destination = cleanDestination(norm)
		best.VehicleType = matchVehicle(norm)
		best.Passengers = matchPassengers(norm)
	}
	return best
}

func (c *Classifier) classifyInFlow(norm string, conv domain.ConversationContext) domain.Intent {
	if cancelRe.MatchString(norm) {
		return domain.Intent{Tag: domain.IntentCancel}
	}

	if conv.State == domain.StateConfirming {
		tag := domain.IntentRoomServiceConfirm
		if conv.Flow == domain.FlowTransport {
			tag = domain.IntentTransportConfirm
		}
		switch {
		case affirmativeRe.MatchString(norm):
			return domain.Intent{Tag: tag, Affirmative: true}
		case negativeRe.MatchString(norm):
			return domain.Intent{Tag: tag, Affirmative: false}
		}
		// Neither yes nor no: flag it so the flow re-asks instead of guessing.
		return domain.Intent{Tag: tag, Unclear: true}
	}

	switch conv.PendingSlot {
	case domain.SlotItem:
		if menuRe.MatchString(norm) {
			return domain.Intent{Tag: domain.IntentRoomServiceItem, WantsMenu: true}
		}
		return domain.Intent{Tag: domain.IntentRoomServiceItem, Items: c.parseOrderItems(norm)}
	case domain.SlotDestination:
		return domain.Intent{
			Tag:         domain.IntentTransportRequest,
			Destination: cleanDestination(norm),
			VehicleType: matchVehicle(norm),
			Passengers:  matchPassengers(norm),
		}
	case domain.SlotPickupTime:
		return domain.Intent{Tag: domain.IntentTransportTime, PickupText: norm}
	}
	return domain.Intent{Tag: domain.IntentUnknown}
}

func (c *Classifier) matchFaq(norm string) (string, int) {
	bestTopic, bestScore := "", 0
	for _, t := range c.store.FaqTopics() {
		score := 0
		for _, kw := range t.Keywords {
			if strings.Contains(norm, normalize(kw)) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestTopic = t.Key
		}
	}
	return bestTopic, bestScore
}

// parseOrderItems extracts item mentions with quantities ("2 hamburguesas").
// Longer vocabulary terms claim their span first so "desayuno americano" is
// one item, not two.
func (c *Classifier) parseOrderItems(norm string) []domain.OrderItem {
	type match struct {
		from, to int
		term     string
	}
	var found []match
	overlaps := func(from, to int) bool {
		for _, m := range found {
			if from < m.to && to > m.from {
				return true
			}
		}
		return false
	}

	for _, term := range itemVocab {
		idx := strings.Index(norm, term)
		if idx < 0 || overlaps(idx, idx+len(term)) {
			continue
		}
		found = append(found, match{idx, idx + len(term), term})
	}
	// Items come back in utterance order, not vocabulary order.
	sort.Slice(found, func(i, j int) bool { return found[i].from < found[j].from })

	var out []domain.OrderItem
	for _, m := range found {
		qty := 1
		if qm := qtyTailRe.FindStringSubmatch(strings.TrimSpace(norm[:m.from])); qm != nil {
			if n, err := strconv.Atoi(qm[1]); err == nil && n > 0 && n < 100 {
				qty = n
			}
		}

		name, price := m.term, 0
		if mi, ok := c.store.MatchMenuItem(m.term); ok {
			name, price = mi.Name, mi.Price
		}
		out = append(out, domain.OrderItem{Name: name, Quantity: qty, Price: price})
	}
	return out
}

func matchCategory(norm string) domain.PlaceCategory {
	for _, cr := range categoryRules {
		if cr.re.MatchString(norm) {
			return cr.cat
		}
	}
	return ""
}

func matchVehicle(norm string) string {
	switch {
	case strings.Contains(norm, "uber"):
		return "uber"
	case strings.Contains(norm, "carro privado") || strings.Contains(norm, "vehiculo privado"):
		return "private_car"
	case strings.Contains(norm, "taxi"):
		return "taxi"
	}
	return ""
}

func matchPassengers(norm string) int {
	if m := passengersRe.FindStringSubmatch(norm); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 0
}

var destPrefixes = []string{
	"quiero ir a la", "quiero ir al", "quiero ir a",
	"necesito ir a la", "necesito ir al", "necesito ir a",
	"un taxi para ir al", "un taxi para ir a", "taxi para ir al", "taxi para ir a",
	"necesito un taxi al", "necesito un taxi a", "necesito un taxi",
	"ir a la", "ir al", "ir a", "voy a la", "voy al", "voy a",
	"para el", "para la", "para", "hacia el", "hacia la", "hacia", "hasta",
	"al", "a la", "a",
}

var ambiguousDest = map[string]bool{"ahi": true, "alla": true, "aca": true, "aqui": true}

var destTimeTailRe = regexp.MustCompile(`\s+(a las|para las|manana|hoy|en \d+).*$`)

// cleanDestination strips request boilerplate and trailing time expressions,
// returning "" when nothing usable remains.
func cleanDestination(norm string) string {
	d := destTimeTailRe.ReplaceAllString(norm, "")
	d = strings.TrimSpace(d)
	for changed := true; changed; {
		changed = false
		for _, p := range destPrefixes {
			if d == p {
				return ""
			}
			if strings.HasPrefix(d, p+" ") {
				d = strings.TrimSpace(d[len(p):])
				changed = true
			}
		}
	}
	for _, art := range []string{"el ", "la ", "los ", "las "} {
		d = strings.TrimPrefix(d, art)
	}
	if len(d) < 3 || ambiguousDest[d] {
		return ""
	}
	// A request that only names the vehicle carries no destination.
	switch d {
	case "taxi", "un taxi", "uber", "un uber", "transporte", "un transporte":
		return ""
	}
	return d
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ñ", "n",
)

func normalize(s string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}
