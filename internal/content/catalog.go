package content

import "arame_concierge/internal/domain"

func coords(lat, lon float64) *domain.Coords { return &domain.Coords{Lat: lat, Lon: lon} }

var placeCatalog = []domain.Place{
	{
		Name:        "Restaurante El Cielo",
		Category:    domain.CategoryRestaurant,
		Description: "Alta cocina con menú degustación multisensorial.",
		Address:     "Calle 7D #43C-130, El Poblado",
		Coords:      coords(6.2098, -75.5713),
		Tags:        []string{"indoor", "fine dining", "romantic"},
		IdealWindow: []domain.TimeOfDay{domain.Evening},
	},
	{
		Name:        "Mondongo's El Poblado",
		Category:    domain.CategoryRestaurant,
		Description: "Cocina tradicional paisa en ambiente casual.",
		Address:     "Calle 10 #38-38, El Poblado",
		Coords:      coords(6.2105, -75.5689),
		Tags:        []string{"indoor", "traditional", "family-friendly"},
		IdealWindow: []domain.TimeOfDay{domain.Afternoon},
	},
	{
		Name:        "Carmen Restaurant",
		Category:    domain.CategoryRestaurant,
		Description: "Cocina colombiana contemporánea con ingredientes locales.",
		Address:     "Carrera 36 #10A-27, El Poblado",
		Coords:      coords(6.2102, -75.5672),
		Tags:        []string{"indoor", "fine dining", "romantic"},
		IdealWindow: []domain.TimeOfDay{domain.Evening},
	},
	{
		Name:        "Pergamino Café",
		Category:    domain.CategoryCafe,
		Description: "Café de especialidad con granos de origen local.",
		Address:     "Carrera 37 #8A-37, El Poblado",
		Coords:      coords(6.2118, -75.5674),
		Tags:        []string{"indoor", "coffee", "cozy"},
		IdealWindow: []domain.TimeOfDay{domain.Morning, domain.Afternoon},
	},
	{
		Name:        "Café Velvet",
		Category:    domain.CategoryCafe,
		Description: "Café con ambiente europeo y opciones de brunch.",
		Address:     "Carrera 37 #8A-21, El Poblado",
		Coords:      coords(6.2119, -75.5673),
		Tags:        []string{"indoor", "coffee", "brunch"},
		IdealWindow: []domain.TimeOfDay{domain.Morning},
	},
	{
		Name:        "Plaza Botero",
		Category:    domain.CategoryAttraction,
		Description: "23 esculturas monumentales de Fernando Botero al aire libre.",
		Address:     "Carrera 52 #52-01, La Candelaria",
		Coords:      coords(6.2518, -75.5693),
		Tags:        []string{"outdoor", "art", "free"},
		IdealWindow: []domain.TimeOfDay{domain.Morning, domain.Afternoon},
	},
	{
		Name:        "Parque Arví",
		Category:    domain.CategoryPark,
		Description: "Parque ecológico en las montañas, accesible por metrocable.",
		Address:     "Corregimiento Santa Elena",
		Coords:      coords(6.2768, -75.4985),
		Tags:        []string{"outdoor", "nature", "hiking"},
		IdealWindow: []domain.TimeOfDay{domain.Morning},
	},
	{
		Name:        "Museo de Antioquia",
		Category:    domain.CategoryMuseum,
		Description: "Colección de arte colombiano con obras de Botero.",
		Address:     "Calle 52 #52-43, La Candelaria",
		Coords:      coords(6.2518, -75.5692),
		Tags:        []string{"indoor", "art", "culture"},
		IdealWindow: []domain.TimeOfDay{domain.Afternoon},
	},
	{
		Name:        "Envy Rooftop",
		Category:    domain.CategoryBar,
		Description: "Cócteles artesanales con vistas panorámicas de la ciudad.",
		Address:     "Calle 10 #36-09, El Poblado",
		Coords:      coords(6.2107, -75.5673),
		Tags:        []string{"outdoor", "cocktails", "views"},
		IdealWindow: []domain.TimeOfDay{domain.Evening},
	},
	{
		Name:        "El Social Bar",
		Category:    domain.CategoryBar,
		Description: "Ambiente vintage, cócteles clásicos y cerveza artesanal.",
		Address:     "Carrera 36 #10A-22, El Poblado",
		Coords:      coords(6.2102, -75.5669),
		Tags:        []string{"indoor", "cocktails", "casual"},
		IdealWindow: []domain.TimeOfDay{domain.Evening},
	},
	{
		Name:        "El Tesoro Parque Comercial",
		Category:    domain.CategoryShopping,
		Description: "Centro comercial al aire libre con tiendas y restaurantes.",
		Address:     "Carrera 25A #1A Sur-45, El Tesoro",
		Coords:      coords(6.1981, -75.5599),
		Tags:        []string{"outdoor", "shopping", "views"},
		IdealWindow: []domain.TimeOfDay{domain.Afternoon},
	},
	{
		Name:        "Mercado del Río",
		Category:    domain.CategoryShopping,
		Description: "Mercado gastronómico con cocinas de todo el mundo.",
		Address:     "Calle 24 #48-28, Ciudad del Río",
		// coordinates pending a catalog refresh; distance shows as unavailable
		Tags:        []string{"indoor", "food market", "foodie"},
		IdealWindow: []domain.TimeOfDay{domain.Afternoon, domain.Evening},
	},
}
