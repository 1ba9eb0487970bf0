package projections

import "padelcygnus/internal/domain/plan"

// Feature is one card in the landing page features grid.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// LandingResult is the marketing content of the landing page.
// The *Markdown fields are rendered to HTML by the view layer.
type LandingResult struct {
	Headline        string      `json:"headline"`
	Tagline         string      `json:"tagline"`
	Features        []Feature   `json:"features"`
	Plans           []plan.Plan `json:"plans"`
	AboutMarkdown   string      `json:"aboutMarkdown"`
	InfoMarkdown    string      `json:"infoMarkdown"`
	ContactFeatures []string    `json:"contactFeatures"`
}

const aboutMarkdown = `PadelCygnus nació de la pasión por el pádel y el deseo de crear una comunidad vibrante de jugadores. Nuestro objetivo es proporcionar las mejores instalaciones y experiencias para todos los amantes de este deporte.`

const infoMarkdown = `PadelCygnus es tu destino definitivo para el pádel en **Madrid**. Ofrecemos:

- Canchas de última generación
- Clases para todos los niveles
- Torneos regulares
- Comunidad activa de jugadores
- Equipamiento de alta calidad

Únete a nosotros y lleva tu juego al siguiente nivel.`

// QueryLanding returns the landing page content.
// PRE: none
// POST: Plans are in price order
func QueryLanding() LandingResult {
	return LandingResult{
		Headline: "Bienvenido a PadelCygnus",
		Tagline:  "Descubre la experiencia definitiva de pádel. Reserva canchas, únete a torneos y mejora tu juego con nosotros.",
		Features: []Feature{
			{Title: "Gestión de Reservas", Description: "Sistema intuitivo para reservar pistas y gestionar horarios", Icon: "calendar"},
			{Title: "Torneos y Eventos", Description: "Organiza y participa en torneos y eventos especiales", Icon: "trophy"},
			{Title: "Comunicación Directa", Description: "Chat integrado para comunicación con el equipo", Icon: "message"},
		},
		Plans:         plan.All(),
		AboutMarkdown: aboutMarkdown,
		InfoMarkdown:  infoMarkdown,
		ContactFeatures: []string{
			"Chat en vivo para soporte inmediato",
			"Horario extendido de atención",
			"Equipo profesional dedicado",
		},
	}
}
