// Package catalog holds the static Florianópolis directory and the lookups
// built on top of it.
package catalog

import "floripa_guide/internal/domain"

const (
	DefaultBookingURL = "https://www.booking.com/city/br/florianopolis.pt-br.html"
	DefaultAirbnbURL  = "https://www.airbnb.com/s/Florianopolis--Brazil/homes"
)

type options struct {
	bookingURL, airbnbURL string
}

type Option func(*options)

// WithAffiliateURLs overrides the lodging affiliate links. Empty values keep
// the defaults.
func WithAffiliateURLs(booking, airbnb string) Option {
	return func(o *options) {
		if booking != "" {
			o.bookingURL = booking
		}
		if airbnb != "" {
			o.airbnbURL = airbnb
		}
	}
}

// Default returns the built-in catalog. Every call allocates fresh slices and
// maps, so callers own what they get.
func Default(opts ...Option) domain.Catalog {
	o := options{bookingURL: DefaultBookingURL, airbnbURL: DefaultAirbnbURL}
	for _, fn := range opts {
		fn(&o)
	}
	return domain.Catalog{
		Spots:       spots(),
		Restaurants: restaurants(),
		Events:      events(),
		Coupons:     coupons(),
		Drivers:     drivers(),
		Stays:       stays(o.bookingURL, o.airbnbURL),
		Coords:      coordTables(),
	}
}

func spots() []domain.Spot {
	return []domain.Spot{
		{ID: 1, NameKey: domain.SpotJoaquina, Category: domain.SpotBeach, Rating: 4.8, Reviews: 1245, Description: "Uma das praias mais famosas de Floripa, ideal para surf e contemplação.", BestTime: "Manhã", Difficulty: "Fácil", Popular: true},
		{ID: 2, NameKey: domain.SpotPraiaMole, Category: domain.SpotBeach, Rating: 4.7, Reviews: 987, Description: "Praia badalada, perfeita para quem gosta de agito e esportes aquáticos.", BestTime: "Tarde", Difficulty: "Fácil", Popular: true},
		{ID: 3, NameKey: domain.SpotLagoinhaLeste, Category: domain.SpotTrail, Rating: 4.9, Reviews: 654, Description: "Praia paradisíaca acessível apenas por trilha. Uma das mais bonitas de SC.", BestTime: "Dia todo", Difficulty: "Difícil"},
		{ID: 4, NameKey: domain.SpotMorroCruz, Category: domain.SpotViewpoint, Rating: 4.6, Reviews: 432, Description: "Vista 360° de Florianópolis. Melhor pôr do sol da cidade.", BestTime: "Pôr do sol", Difficulty: "Fácil", Popular: true},
		{ID: 5, NameKey: domain.SpotCampeche, Category: domain.SpotBeach, Rating: 4.7, Reviews: 891, Description: "Praia extensa com águas cristalinas e ótima infraestrutura.", BestTime: "Manhã", Difficulty: "Fácil"},
		{ID: 6, NameKey: domain.SpotCostaLagoa, Category: domain.SpotTrail, Rating: 4.5, Reviews: 321, Description: "Trilha plana à beira da Lagoa da Conceição com restaurantes no caminho.", BestTime: "Manhã", Difficulty: "Médio"},
	}
}

func restaurants() []domain.Restaurant {
	return []domain.Restaurant{
		{ID: 1, Name: "Ostradamus", Category: domain.RestaurantSeafood, Rating: 4.9, Reviews: 892, Description: "Especializado em ostras frescas e frutos do mar da região. Vista para o mar.", PriceRange: "$$$", Phone: "(48) 3232-1234", Address: "Lagoa da Conceição", HasCoupon: true, Plan: domain.PlanPremium},
		{ID: 2, Name: "Churrascaria Bonanza", Category: domain.RestaurantBrazilian, Rating: 4.7, Reviews: 654, Description: "Rodízio de carnes premium com buffet completo. Ambiente familiar.", PriceRange: "$$", Phone: "(48) 3232-5678", Address: "Centro", Plan: domain.PlanFeatured},
		{ID: 3, Name: "Pizzaria Bella Vista", Category: domain.RestaurantItalian, Rating: 4.6, Reviews: 543, Description: "Pizzas artesanais no forno a lenha. Massa fermentada naturalmente.", PriceRange: "$$", Phone: "(48) 3232-9876", Address: "Ingleses", HasCoupon: true, Plan: domain.PlanFree},
		{ID: 4, Name: "Sushi Master", Category: domain.RestaurantJapanese, Rating: 4.8, Reviews: 421, Description: "Rodízio japonês com peixes frescos e preparos tradicionais.", PriceRange: "$$$", Phone: "(48) 3232-4321", Address: "Lagoa da Conceição", HasCoupon: true, Plan: domain.PlanPremium},
		{ID: 5, Name: "Burger Lab", Category: domain.RestaurantBurgers, Rating: 4.5, Reviews: 789, Description: "Hambúrgueres artesanais com blend especial da casa. Craft beers.", PriceRange: "$$", Phone: "(48) 3232-7890", Address: "Campeche", Plan: domain.PlanFeatured},
		{ID: 6, Name: "Veg Garden", Category: domain.RestaurantVegetarian, Rating: 4.6, Reviews: 412, Description: "Opções vegetarianas e veganas com ingredientes locais.", PriceRange: "$$", Phone: "(48) 3232-6543", Address: "Trindade", HasCoupon: true, Plan: domain.PlanFree},
		{ID: 7, Name: "Bar do Pescador", Category: domain.RestaurantBars, Rating: 4.4, Reviews: 305, Description: "Bar à beira mar com petiscos e drinks autorais.", PriceRange: "$$", Phone: "(48) 3232-1122", Address: "Santo Antônio de Lisboa", Plan: domain.PlanFree},
		{ID: 8, Name: "Fast & Tasty", Category: domain.RestaurantFastFood, Rating: 4.2, Reviews: 518, Description: "Sanduíches e wraps rápidos com opções saudáveis.", PriceRange: "$", Phone: "(48) 3232-7788", Address: "Centro", HasCoupon: true, Plan: domain.PlanFeatured},
	}
}

func events() []domain.Event {
	return []domain.Event{
		{ID: 1, NameKey: "festaLagoa", Date: "2025-02-15", Time: "22:00", Location: "Lagoa da Conceição", Category: domain.EventParty, Description: "A melhor festa de verão da Lagoa com DJs internacionais e open bar.", Price: "R$ 80", Trending: true, Nightlife: true},
		{ID: 2, NameKey: "showMusica", Date: "2025-02-18", Time: "20:00", Location: "Jurerê Internacional", Category: domain.EventShow, Description: "Apresentação de artistas locais em um ambiente à beira-mar.", Price: "R$ 50"},
		{ID: 3, NameKey: "feiraArtesanato", Date: "2025-02-20", Time: "10:00", Location: "Centro Histórico", Category: domain.EventFair, Description: "Produtos artesanais locais, comidas típicas e música ao vivo.", Price: "Grátis"},
		{ID: 4, NameKey: "campeonatoSurf", Date: "2025-02-22", Time: "08:00", Location: "Praia da Joaquina", Category: domain.EventSport, Description: "Competição de surf com atletas profissionais de todo o Brasil.", Price: "Grátis", Trending: true},
		{ID: 5, NameKey: "festivalGastronomico", Date: "2025-02-25", Time: "12:00", Location: "Beira-Mar Norte", Category: domain.EventGastronomy, Description: "Degustação de pratos dos melhores restaurantes da ilha.", Price: "R$ 120", Trending: true},
		{ID: 6, NameKey: "porDoSolTrapiche", Date: "2025-02-28", Time: "18:00", Location: "Lagoa da Conceição", Category: domain.EventFamily, Description: "Evento familiar com música ao vivo e food trucks.", Price: "Grátis"},
	}
}

func coupons() []domain.Coupon {
	return []domain.Coupon{
		{ID: 1, Title: "10% Off no Cardápio", Business: "Ostradamus", Category: domain.CouponRestaurant, Discount: "10%", Code: "FG2025-OSTRA", ValidUntil: "2025-03-31", Description: "Desconto em pratos selecionados. Válido de segunda a quinta.", Featured: true},
		{ID: 2, Title: "Ingresso 2x1", Business: "Festa na Lagoa", Category: domain.CouponEvent, Discount: "50%", Code: "FG2025-LAGOA", ValidUntil: "2025-02-28", Description: "Na compra de um ingresso, ganhe outro. Limitado a 1 por CPF."},
		{ID: 3, Title: "Passeio Ilha do Campeche", Business: "Tour Floripa", Category: domain.CouponTour, Discount: "15%", Code: "FG2025-CAMP", ValidUntil: "2025-04-15", Description: "Desconto válido para saídas às 9h e 13h."},
		{ID: 4, Title: "Diária com 20% Off", Business: "Hotel Beira-Mar", Category: domain.CouponHotel, Discount: "20%", Code: "FG2025-HOTEL", ValidUntil: "2025-05-01", Description: "Desconto válido para reservas de domingo a quinta."},
		{ID: 5, Title: "Combo Burgers", Business: "Burger Lab", Category: domain.CouponRestaurant, Discount: "12%", Code: "FG2025-BURGER", ValidUntil: "2025-03-10", Description: "Desconto no combo com 2 burgers e 2 bebidas."},
		{ID: 6, Title: "Show Ao Vivo", Business: "Jurerê Live", Category: domain.CouponEvent, Discount: "30%", Code: "FG2025-LIVE", ValidUntil: "2025-02-20", Description: "Válido somente para pista. Sujeito à lotação."},
		{ID: 7, Title: "Drinks 2x1", Business: "Bar do Pescador", Category: domain.CouponBars, Discount: "50%", Code: "FG2025-BAR", ValidUntil: "2025-03-05", Description: "Na compra de um drink, ganhe outro. Sexta a domingo."},
		{ID: 8, Title: "Café + Croissant", Business: "Café Lagoa", Category: domain.CouponCafes, Discount: "20%", Code: "FG2025-CAFE", ValidUntil: "2025-03-15", Description: "Combo da manhã com desconto especial."},
	}
}

func drivers() []domain.Driver {
	return []domain.Driver{
		{ID: "drv-1", Name: "Carlos Silva", Type: domain.DriverRideshare, AvgPrice: "R$ 40", WhatsApp: "5548999991111", Rating: 4.8, AreasServed: []string{"Centro", "Lagoa", "Campeche"}},
		{ID: "drv-2", Name: "Ana Souza", Type: domain.DriverVan, AvgPrice: "R$ 120", WhatsApp: "5548999992222", Rating: 4.6, AreasServed: []string{"Ingleses", "Canasvieiras", "Jurerê"}},
		{ID: "drv-3", Name: "Rafael Costa", Type: domain.DriverTransfer, AvgPrice: "R$ 150", WhatsApp: "5548999993333", Rating: 4.7, AreasServed: []string{"Aeroporto", "Centro", "Lagoa"}},
		{ID: "drv-4", Name: "Joana Pereira", Type: domain.DriverOffroad, AvgPrice: "R$ 200", WhatsApp: "5548999994444", Rating: 4.9, AreasServed: []string{"Lagoinha do Leste", "Saquinho", "Pântano do Sul"}},
		{ID: "drv-5", Name: "Miguel Andrade", Type: domain.DriverTour, AvgPrice: "R$ 180", WhatsApp: "5548999995555", Rating: 4.5, AreasServed: []string{"Ilha do Campeche", "Praia Mole", "Barra da Lagoa"}},
	}
}

func stays(bookingURL, airbnbURL string) domain.StayTips {
	link := func(kind string) string {
		if kind == "airbnb" {
			return airbnbURL
		}
		return bookingURL
	}
	best := []domain.Stay{
		{Name: "Pousada Vista da Lagoa", Area: "Lagoa da Conceição", Price: "R$ 300+", Rating: 4.6, Affiliate: "booking"},
		{Name: "Suites Campeche Sul", Area: "Campeche", Price: "R$ 280+", Rating: 4.5, Affiliate: "airbnb"},
		{Name: "Hotel Centro Light", Area: "Centro", Price: "R$ 260+", Rating: 4.3, Affiliate: "booking"},
	}
	for i := range best {
		best[i].AffiliateLink = link(best[i].Affiliate)
	}
	return domain.StayTips{
		Neighborhoods: []domain.NeighborhoodTip{
			{Name: "Lagoa da Conceição", Vibe: "Vida noturna, esportes aquáticos", Why: "Centro gastronômico, acesso fácil a praias do leste"},
			{Name: "Campeche", Vibe: "Praias, família", Why: "Boa estrutura, proximidade da Ilha do Campeche"},
			{Name: "Centro", Vibe: "Praticidade, negócios", Why: "Acesso a serviços, transporte e comércio"},
			{Name: "Jurerê", Vibe: "Luxo, beach clubs", Why: "Boa infraestrutura e praias calmas"},
			{Name: "Ingleses", Vibe: "Mais econômico, família", Why: "Muitas opções de hospedagem e restaurantes"},
		},
		PriceRanges: []domain.SeasonPrices{
			{Season: "Baixa temporada", Budget: "R$ 150–250", Mid: "R$ 250–450", Premium: "R$ 450+"},
			{Season: "Alta temporada", Budget: "R$ 250–400", Mid: "R$ 400–700", Premium: "R$ 700+"},
		},
		BestValue:  best,
		BookingURL: bookingURL,
		AirbnbURL:  airbnbURL,
	}
}

func coordTables() domain.CoordTables {
	return domain.CoordTables{
		Spots: map[string]domain.Coords{
			"joaquina":      {Lat: -27.5977, Lon: -48.4695},
			"praiaMole":     {Lat: -27.5918, Lon: -48.4302},
			"lagoinhaLeste": {Lat: -27.7654, Lon: -48.5103},
			"morroCruz":     {Lat: -27.5890, Lon: -48.5460},
			"campeche":      {Lat: -27.6585, Lon: -48.4950},
			"costaLagoa":    {Lat: -27.5880, Lon: -48.4770},
		},
		Restaurants: map[string]domain.Coords{
			"Ostradamus":           {Lat: -27.5827, Lon: -48.5141},
			"Churrascaria Bonanza": {Lat: -27.5950, Lon: -48.5480},
			"Pizzaria Bella Vista": {Lat: -27.4800, Lon: -48.4100},
			"Sushi Master":         {Lat: -27.5835, Lon: -48.5150},
			"Burger Lab":           {Lat: -27.6600, Lon: -48.5000},
			"Veg Garden":           {Lat: -27.6000, Lon: -48.5000},
			"Bar do Pescador":      {Lat: -27.4960, Lon: -48.5520},
			"Fast & Tasty":         {Lat: -27.5965, Lon: -48.5490},
		},
		Events: map[string]domain.Coords{
			"festaLagoa":           {Lat: -27.5885, Lon: -48.5079},
			"campeonatoSurf":       {Lat: -27.5977, Lon: -48.4695},
			"showMusica":           {Lat: -27.4330, Lon: -48.4200},
			"feiraArtesanato":      {Lat: -27.5954, Lon: -48.5480},
			"festivalGastronomico": {Lat: -27.5960, Lon: -48.5485},
			"porDoSolTrapiche":     {Lat: -27.5885, Lon: -48.5079},
		},
	}
}
