package domain

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}

type SpotKey string

const (
	SpotJoaquina      SpotKey = "joaquina"
	SpotPraiaMole     SpotKey = "praiaMole"
	SpotLagoinhaLeste SpotKey = "lagoinhaLeste"
	SpotMorroCruz     SpotKey = "morroCruz"
	SpotCampeche      SpotKey = "campeche"
	SpotCostaLagoa    SpotKey = "costaLagoa"
)

type SpotCategory string

const (
	SpotBeach     SpotCategory = "praia"
	SpotTrail     SpotCategory = "trilha"
	SpotViewpoint SpotCategory = "mirante"
	SpotPark      SpotCategory = "parque"
	SpotHistoric  SpotCategory = "historico"
)

var spotCategories = []SpotCategory{SpotBeach, SpotTrail, SpotViewpoint, SpotPark, SpotHistoric}

type Spot struct {
	ID          int          `json:"id"`
	NameKey     SpotKey      `json:"name_key"`
	Category    SpotCategory `json:"category"`
	Rating      float64      `json:"rating"`
	Reviews     int          `json:"reviews"`
	Description string       `json:"description"`
	BestTime    string       `json:"best_time"`
	Difficulty  string       `json:"difficulty"`
	Popular     bool         `json:"popular"`
}

type RestaurantCategory string

const (
	RestaurantSeafood    RestaurantCategory = "frutos-mar"
	RestaurantBrazilian  RestaurantCategory = "brasileira"
	RestaurantItalian    RestaurantCategory = "italiana"
	RestaurantJapanese   RestaurantCategory = "japonesa"
	RestaurantBurgers    RestaurantCategory = "hamburgueria"
	RestaurantFastFood   RestaurantCategory = "fast-food"
	RestaurantVegetarian RestaurantCategory = "vegetariana"
	RestaurantBars       RestaurantCategory = "bares"
)

var restaurantCategories = []RestaurantCategory{
	RestaurantSeafood, RestaurantBrazilian, RestaurantItalian, RestaurantJapanese,
	RestaurantBurgers, RestaurantFastFood, RestaurantVegetarian, RestaurantBars,
}

// Plan is a partner listing tier. Restaurants carry the plan of their owner.
type Plan string

const (
	PlanPremium  Plan = "premium"
	PlanFeatured Plan = "destaque"
	PlanFree     Plan = "free"
)

// Rank orders plans premium first. Unknown plans sort last.
func (p Plan) Rank() int {
	switch p {
	case PlanPremium:
		return 0
	case PlanFeatured:
		return 1
	case PlanFree:
		return 2
	}
	return 3
}

type Restaurant struct {
	ID          int                `json:"id"`
	Name        string             `json:"name"`
	Category    RestaurantCategory `json:"category"`
	Rating      float64            `json:"rating"`
	Reviews     int                `json:"reviews"`
	Description string             `json:"description"`
	PriceRange  string             `json:"price_range"`
	Phone       string             `json:"phone"`
	Address     string             `json:"address"`
	HasCoupon   bool               `json:"has_coupon"`
	Plan        Plan               `json:"plan"`
}

type EventCategory string

const (
	EventParty      EventCategory = "Balada"
	EventShow       EventCategory = "Show"
	EventFair       EventCategory = "Feira"
	EventSport      EventCategory = "Esporte"
	EventGastronomy EventCategory = "Gastronomia"
	EventFamily     EventCategory = "Família"
)

type Event struct {
	ID          int           `json:"id"`
	NameKey     string        `json:"name_key"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Location    string        `json:"location"`
	Category    EventCategory `json:"category"`
	Description string        `json:"description"`
	Price       string        `json:"price"`
	Trending    bool          `json:"trending"`
	// Nightlife marks events offered in the itinerary night slot.
	Nightlife bool `json:"nightlife"`
}

type CouponCategory string

const (
	CouponRestaurant CouponCategory = "restaurante"
	CouponEvent      CouponCategory = "evento"
	CouponTour       CouponCategory = "passeio"
	CouponHotel      CouponCategory = "hotel"
	CouponBars       CouponCategory = "bares"
	CouponCafes      CouponCategory = "cafes"
)

var couponCategories = []CouponCategory{CouponRestaurant, CouponEvent, CouponTour, CouponHotel, CouponBars, CouponCafes}

type Coupon struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Business    string         `json:"business"`
	Category    CouponCategory `json:"category"`
	Discount    string         `json:"discount"`
	Code        string         `json:"code"`
	ValidUntil  string         `json:"valid_until"`
	Description string         `json:"description"`
	Featured    bool           `json:"featured"`
}

type DriverType string

const (
	DriverRideshare DriverType = "Uber"
	DriverOffroad   DriverType = "4x4"
	DriverVan       DriverType = "van"
	DriverTransfer  DriverType = "transfer"
	DriverTour      DriverType = "passeio"
)

var driverTypes = []DriverType{DriverRideshare, DriverOffroad, DriverVan, DriverTransfer, DriverTour}

type Driver struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        DriverType `json:"type"`
	AvgPrice    string     `json:"avg_price"`
	WhatsApp    string     `json:"whatsapp"`
	Rating      float64    `json:"rating"`
	AreasServed []string   `json:"areas_served"`
	PhotoURL    string     `json:"photo_url,omitempty"`
}

type NeighborhoodTip struct {
	Name string `json:"name"`
	Vibe string `json:"vibe"`
	Why  string `json:"why"`
}

type SeasonPrices struct {
	Season  string `json:"season"`
	Budget  string `json:"budget"`
	Mid     string `json:"mid"`
	Premium string `json:"premium"`
}

type Stay struct {
	Name          string  `json:"name"`
	Area          string  `json:"area"`
	Price         string  `json:"price"`
	Rating        float64 `json:"rating"`
	Affiliate     string  `json:"affiliate"` // booking|airbnb
	AffiliateLink string  `json:"affiliate_link,omitempty"`
}

type StayTips struct {
	Neighborhoods []NeighborhoodTip `json:"neighborhoods"`
	PriceRanges   []SeasonPrices    `json:"price_ranges"`
	BestValue     []Stay            `json:"best_value"`
	BookingURL    string            `json:"booking_url"`
	AirbnbURL     string            `json:"airbnb_url"`
}

// CoordTables maps catalog keys to fixed coordinates. Spots and events are
// keyed by name key, restaurants by display name.
type CoordTables struct {
	Spots       map[string]Coords
	Restaurants map[string]Coords
	Events      map[string]Coords
}

type Catalog struct {
	Spots       []Spot
	Restaurants []Restaurant
	Events      []Event
	Coupons     []Coupon
	Drivers     []Driver
	Stays       StayTips
	Coords      CoordTables
}

func ParseSpotCategory(s string) (SpotCategory, error) {
	for _, c := range spotCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalidFilter
}

func ParseRestaurantCategory(s string) (RestaurantCategory, error) {
	for _, c := range restaurantCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalidFilter
}

func ParseCouponCategory(s string) (CouponCategory, error) {
	for _, c := range couponCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalidFilter
}

func ParseDriverType(s string) (DriverType, error) {
	for _, t := range driverTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", ErrInvalidFilter
}
