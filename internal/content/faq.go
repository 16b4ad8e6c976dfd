package content

import "arame_concierge/internal/domain"

var faqTopics = []domain.FaqTopic{
	{
		Key:      "wifi",
		Keywords: []string{"wifi", "wi-fi", "internet", "clave", "contraseña", "red"},
		Answer:   "Ofrecemos WiFi gratuito en todo el hotel. El nombre de la red es Arame_Guest y la contraseña se encuentra en su tarjeta de bienvenida.",
	},
	{
		Key:      "breakfast",
		Keywords: []string{"desayuno", "desayunar", "buffet"},
		Answer:   "El desayuno se sirve de 6:30 AM a 10:30 AM en el restaurante principal, primer piso. Desayuno buffet completo incluido en su tarifa, con opciones vegetarianas y veganas.",
	},
	{
		Key:      "checkout",
		Keywords: []string{"check-out", "checkout", "check out", "salida", "dejar la habitacion", "dejar la habitación"},
		Answer:   "El check-out es a las 12:00 PM. Late check-out disponible hasta las 4:00 PM con cargo adicional del 50% de la tarifa por noche, sujeto a disponibilidad.",
	},
	{
		Key:      "pool",
		Keywords: []string{"piscina", "nadar"},
		Answer:   "Nuestra piscina climatizada está en la terraza del piso 10, abierta de 6:00 AM a 10:00 PM. Toallas disponibles en el área de la piscina.",
	},
	{
		Key:      "spa",
		Keywords: []string{"spa", "masaje", "tratamiento"},
		Answer:   "El spa está abierto de 9:00 AM a 9:00 PM en el piso 9. Reserve su tratamiento con 2 horas de anticipación.",
	},
	{
		Key:      "gym",
		Keywords: []string{"gimnasio", "gym", "ejercicio", "pesas"},
		Answer:   "El gimnasio del piso 8 está disponible las 24 horas, con equipamiento completo de cardio y pesas. Instructor disponible de 7:00 AM a 8:00 PM.",
	},
	{
		Key:      "parking",
		Keywords: []string{"estacionamiento", "parqueadero", "parking", "valet", "estacionar"},
		Answer:   "Servicio de valet parking disponible sin costo adicional para huéspedes.",
	},
	{
		Key:      "restaurants",
		Keywords: []string{"restaurante del hotel", "cenar en el hotel", "restaurantes del hotel"},
		Answer:   "El Hotel Aramé cuenta con dos restaurantes: Aramé Gourmet (cocina internacional, 6:30 AM a 11:00 PM) y Azafrán (cocina mediterránea, cenas de 6:00 PM a 11:00 PM, se recomienda reservación).",
	},
	{
		Key:      "business_center",
		Keywords: []string{"centro de negocios", "imprimir", "sala de reuniones", "computadora"},
		Answer:   "Nuestro centro de negocios en el lobby está disponible las 24 horas, con computadoras, impresora y sala de reuniones. Reserve la sala con anticipación.",
	},
	{
		Key:      "room_service_hours",
		Keywords: []string{"hasta que hora", "hasta qué hora", "horario del servicio a la habitacion", "horario del servicio a la habitación"},
		Answer:   "Ofrecemos servicio a la habitación las 24 horas, con tiempo estimado de entrega de 30 minutos. Puede pedirlo aquí mismo o marcando el 1 desde su habitación.",
	},
}
