package plan

import (
	"errors"
	"strconv"
)

// ErrUnknownPlan is returned when a slug names no plan.
var ErrUnknownPlan = errors.New("membership plan not found")

// Plan is a membership tier offered on the landing page.
type Plan struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Price    int      `json:"price"` // dollars per month
	Features []string `json:"features"`
	Featured bool     `json:"featured"`
}

// PriceLabel renders the price the way the pricing cards show it.
func (p Plan) PriceLabel() string {
	return "$" + strconv.Itoa(p.Price) + "/mes"
}

// All returns the plans in display order.
func All() []Plan {
	return []Plan{
		{
			Slug:  "basico",
			Name:  "Básico",
			Price: 50,
			Features: []string{
				"Acceso a pistas en horario estándar",
				"Reserva con 3 días de antelación",
				"Acceso a vestuarios",
			},
		},
		{
			Slug:  "premium",
			Name:  "Premium",
			Price: 100,
			Features: []string{
				"Acceso a pistas 24/7",
				"Reserva con 7 días de antelación",
				"Acceso a vestuarios y spa",
				"2 clases grupales al mes",
			},
			Featured: true,
		},
		{
			Slug:  "vip",
			Name:  "VIP",
			Price: 200,
			Features: []string{
				"Acceso ilimitado a todas las instalaciones",
				"Reserva con 14 días de antelación",
				"Entrenador personal",
				"Acceso a eventos exclusivos",
			},
		},
	}
}

// Find returns the plan with the given slug.
// PRE: none
// POST: Returns ErrUnknownPlan if slug is not listed
func Find(slug string) (Plan, error) {
	for _, p := range All() {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Plan{}, ErrUnknownPlan
}
