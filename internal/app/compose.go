package app

import (
	"fmt"
	"strings"
	"time"

	"arame_concierge/internal/domain"
)

// Composer renders every guest-facing message. Pure string building; all
// signal fetching happens before a template is picked, so a template never
// blocks.
type Composer struct {
	hotelName string
}

func NewComposer(hotelName string) *Composer {
	if hotelName == "" {
		hotelName = "Hotel Aramé"
	}
	return &Composer{hotelName: hotelName}
}

func (c *Composer) Welcome(guest domain.Guest, now time.Time) string {
	greeting := "Buenas noches"
	switch {
	case now.Hour() < 12:
		greeting = "Buenos días"
	case now.Hour() < 18:
		greeting = "Buenas tardes"
	}
	name := firstName(guest.Name)
	if name == "" {
		return fmt.Sprintf("%s, bienvenido(a) al %s. Soy Lina, su asistente virtual. Puedo ayudarle con servicio a la habitación, transporte, recomendaciones locales y preguntas sobre el hotel.", greeting, c.hotelName)
	}
	return fmt.Sprintf("%s, %s. Bienvenido(a) al %s. Soy Lina, su asistente virtual. Puedo ayudarle con servicio a la habitación, transporte, recomendaciones locales y preguntas sobre el hotel. ¿En qué puedo ayudarle?", greeting, name, c.hotelName)
}

func (c *Composer) Farewell(guest domain.Guest) string {
	name := firstName(guest.Name)
	if name == "" {
		return "¡Hasta pronto! Estoy aquí cuando me necesite."
	}
	return fmt.Sprintf("¡Hasta pronto, %s! Estoy aquí cuando me necesite.", name)
}

func (c *Composer) Thanks() string {
	return "¡Con mucho gusto! ¿Hay algo más en lo que pueda ayudarle?"
}

func (c *Composer) Help() string {
	return strings.Join([]string{
		"Puedo ayudarle con:",
		"• Servicio a la habitación: \"quiero ordenar comida\"",
		"• Transporte: \"necesito un taxi al aeropuerto\"",
		"• Recomendaciones: \"¿qué restaurante me recomiendas?\"",
		"• El clima: \"¿cómo está el clima?\"",
		"• Preguntas del hotel: WiFi, desayuno, piscina, spa, check-out...",
	}, "\n")
}

func (c *Composer) WeatherReply(w domain.Weather) string {
	if !w.Available() {
		return "En este momento no puedo consultar el clima. Inténtelo de nuevo en unos minutos."
	}
	reply := fmt.Sprintf("Ahora mismo en Medellín: %s, %.0f°C.", conditionES(w.Condition), w.Temperature)
	if w.Raining() {
		reply += " Le recomiendo llevar paraguas si va a salir."
	}
	return reply
}

func (c *Composer) Faq(answer string) string { return answer }

func (c *Composer) Unknown() string {
	return "Disculpe, no le entendí. Puedo ayudarle con servicio a la habitación, transporte, recomendaciones o preguntas sobre el hotel. ¿Qué necesita?"
}

func (c *Composer) Menu(items []domain.MenuItem) string {
	var b strings.Builder
	b.WriteString("Con gusto. Este es nuestro menú de servicio a la habitación:\n")
	category := ""
	for _, it := range items {
		if it.Category != category {
			category = it.Category
			fmt.Fprintf(&b, "\n%s\n", category)
		}
		fmt.Fprintf(&b, "• %s — %s\n", it.Name, FormatCOP(it.Price))
	}
	b.WriteString("\n¿Qué le gustaría ordenar?")
	return b.String()
}

func (c *Composer) PromptItem() string {
	return "¿Qué le gustaría ordenar? Puede pedir el menú escribiendo \"ver el menú\"."
}

func (c *Composer) NoItemsMatched() string {
	return "No encontré ese plato en nuestro menú. ¿Quiere ver el menú o pedir otra cosa?"
}

func (c *Composer) ConfirmOrder(items []domain.OrderItem, room string) string {
	var b strings.Builder
	b.WriteString("Perfecto, su pedido:\n")
	for _, it := range items {
		fmt.Fprintf(&b, "• %dx %s — %s\n", it.Quantity, it.Name, FormatCOP(it.Price*it.Quantity))
	}
	fmt.Fprintf(&b, "Total: %s, para la habitación %s.\n¿Confirma el pedido? (sí/no)", FormatCOP(orderTotal(items)), room)
	return b.String()
}

func (c *Composer) OrderCreated(o domain.RoomServiceOrder) string {
	return fmt.Sprintf("¡Pedido confirmado! Orden #%d por %s. Llegará a la habitación %s en aproximadamente 30 minutos.", o.ID, FormatCOP(o.Total), o.RoomNumber)
}

func (c *Composer) PromptDestination() string {
	return "Con gusto le organizo el transporte. ¿A dónde se dirige?"
}

func (c *Composer) PromptPickupTime(destination string) string {
	return fmt.Sprintf("Perfecto, transporte hacia %s. ¿A qué hora lo necesita?", destination)
}

func (c *Composer) RetryPickupTime() string {
	return "No entendí la hora. Puede decir por ejemplo \"a las 3 pm\" o \"en 30 minutos\"."
}

func (c *Composer) ConfirmTransport(conv domain.ConversationContext) string {
	when := "por confirmar"
	if conv.PickupAt != nil {
		when = conv.PickupAt.Format("3:04 PM")
	}
	vehicle := conv.VehicleType
	if vehicle == "" || vehicle == "taxi" {
		vehicle = "taxi"
	}
	msg := fmt.Sprintf("Resumen: %s hacia %s, recogida a las %s", vehicle, conv.Destination, when)
	if conv.Passengers > 1 {
		msg += fmt.Sprintf(", para %d personas", conv.Passengers)
	}
	return msg + ".\n¿Confirma la solicitud? (sí/no)"
}

func (c *Composer) TransportCreated(r domain.TransportRequest) string {
	return fmt.Sprintf("¡Listo! Su transporte hacia %s está agendado para las %s. Le avisaremos cuando el vehículo esté en la puerta.", r.Destination, r.PickupAt.Format("3:04 PM"))
}

func (c *Composer) RepeatConfirm(summary string) string {
	return "Disculpe, no le entendí. Responda sí o no, por favor.\n" + summary
}

func (c *Composer) AlreadyCompleted() string {
	return "Esa solicitud ya quedó registrada, no se duplicó. ¿Le ayudo con algo más?"
}

func (c *Composer) RetryPersist() string {
	return "Tuvimos un inconveniente registrando su solicitud. Sus datos siguen guardados; por favor confirme de nuevo en un momento."
}

func (c *Composer) Cancelled() string {
	return "Listo, cancelado. ¿Le ayudo con algo más?"
}

func (c *Composer) Recommendations(cands []domain.PlaceCandidate, w domain.Weather, category domain.PlaceCategory) string {
	if len(cands) == 0 {
		return "Por ahora no tengo recomendaciones en esa categoría. ¿Quiere que le sugiera restaurantes o cafés cercanos?"
	}
	var b strings.Builder
	if category != "" {
		b.WriteString("Estas son mis recomendaciones:\n")
	} else {
		b.WriteString("Estas son mis recomendaciones para este momento del día:\n")
	}
	for i, cand := range cands {
		fmt.Fprintf(&b, "\n%d. %s (%s) — %s\n   %s\n", i+1, cand.Place.Name, categoryES(cand.Place.Category), cand.Place.Address, cand.Place.Description)
		if cand.DistanceMeters == domain.DistanceUnknown {
			fmt.Fprintf(&b, "   %s.\n", FormatDistance(cand.DistanceMeters))
		} else {
			fmt.Fprintf(&b, "   A %s del hotel (%d min aprox).\n", FormatDistance(cand.DistanceMeters), cand.ETAMinutes)
		}
		if cand.Tip != "" {
			fmt.Fprintf(&b, "   %s\n", cand.Tip)
		}
	}
	if w.Available() && w.Raining() {
		b.WriteString("\nNota: está lloviendo, prioricé planes bajo techo.")
	}
	return b.String()
}

// FormatCOP renders a Colombian peso amount with dot thousand separators.
func FormatCOP(v int) string {
	if v == 0 {
		return "precio por confirmar"
	}
	s := fmt.Sprintf("%d", v)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "$" + strings.Join(parts, ".") + " COP"
}

func firstName(full string) string {
	full = strings.TrimSpace(full)
	if full == "" {
		return ""
	}
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}

func categoryES(c domain.PlaceCategory) string {
	switch c {
	case domain.CategoryRestaurant:
		return "restaurante"
	case domain.CategoryBar:
		return "bar"
	case domain.CategoryCafe:
		return "café"
	case domain.CategoryMuseum:
		return "museo"
	case domain.CategoryPark:
		return "parque"
	case domain.CategoryAttraction:
		return "atracción"
	case domain.CategoryShopping:
		return "compras"
	}
	return string(c)
}

func conditionES(cond string) string {
	switch cond {
	case "Clear":
		return "despejado"
	case "Clouds":
		return "nublado"
	case "Rain", "Drizzle":
		return "lluvioso"
	case "Thunderstorm":
		return "tormenta eléctrica"
	case "Mist", "Fog":
		return "neblina"
	}
	return cond
}
