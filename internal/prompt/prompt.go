// Package prompt renders the generation prompts and recovers the JSON
// payload from raw model output. All prompt text is French, the application's
// display language, with prices in euros.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/govasco/go-trip-backend/internal/domain"
)

var budgetLabels = map[domain.Budget]string{
	domain.BudgetEconomic: "économique (petit budget, hostels, street food)",
	domain.BudgetBalanced: "équilibré (bon rapport qualité-prix)",
	domain.BudgetComfort:  "confort (hôtels 4*, bons restaurants)",
}

var paceLabels = map[domain.Pace]string{
	domain.PaceRelaxed:  "tranquille (2-3 activités par jour, temps libre)",
	domain.PaceBalanced: "équilibré (4-5 activités par jour)",
	domain.PaceIntense:  "intense (journées bien remplies, maximum de découvertes)",
}

var interestLabels = map[domain.Interest]string{
	domain.InterestCulture:    "culture et musées",
	domain.InterestNature:     "nature et randonnées",
	domain.InterestGastronomy: "gastronomie et cuisine locale",
	domain.InterestHistory:    "sites historiques et patrimoine",
	domain.InterestBeach:      "plages et activités nautiques",
	domain.InterestAdventure:  "aventure et adrénaline",
	domain.InterestShopping:   "shopping et marchés",
	domain.InterestRelaxation: "spa et détente",
	domain.InterestOffbeat:    "expériences insolites et hors des sentiers battus",
	domain.InterestSport:      "sport et activités physiques",
	domain.InterestNightlife:  "vie nocturne et bars",
	domain.InterestFamily:     "activités familiales",
}

// System returns the system prompt: persona, output rules, and the strict
// JSON response format the itinerary validator expects.
func System() string {
	return `Tu es Vasco, un expert en planification de voyages. Tu génères des itinéraires de voyage personnalisés, détaillés et réalistes.

RÈGLES IMPORTANTES :
1. Réponds UNIQUEMENT en JSON valide, sans texte avant ou après
2. Tous les textes doivent être en français
3. Les estimations de prix sont en euros (€)
4. Les horaires sont au format "HH:MM" ou descriptif ("Matin", "Après-midi")
5. Sois réaliste sur les temps de trajet et les horaires d'ouverture
6. Propose des alternatives locales et authentiques, pas que des spots touristiques
7. Adapte les activités au budget et au rythme demandés
8. Inclus des recommandations pratiques et des tips locaux

FORMAT DE RÉPONSE (JSON strict) :
{
  "destination": "Ville, Pays",
  "days": [
    {
      "day": 1,
      "theme": "Titre du jour",
      "activities": [
        {
          "time": "09:00",
          "title": "Nom de l'activité",
          "description": "Description détaillée",
          "location": "Adresse ou quartier",
          "duration": "2h",
          "costEstimate": "10-15€",
          "tips": "Conseil pratique (optionnel)"
        }
      ],
      "meals": {
        "breakfast": {
          "name": "Nom du lieu",
          "type": "Type de cuisine",
          "costEstimate": "5-10€"
        },
        "lunch": { ... },
        "dinner": { ... }
      },
      "accommodation": {
        "name": "Nom de l'hébergement",
        "type": "Type (hôtel, auberge, etc.)",
        "priceRange": "50-80€/nuit",
        "neighborhood": "Quartier"
      },
      "transportTip": "Conseil transport du jour"
    }
  ],
  "budgetSummary": {
    "accommodation": "XXX-XXX€",
    "food": "XXX-XXX€",
    "activities": "XXX-XXX€",
    "transport": "XXX-XXX€",
    "total": "XXX-XXX€"
  },
  "tips": [
    "Conseil général 1",
    "Conseil général 2",
    "Conseil général 3"
  ],
  "bestTimeToVisit": "Meilleure période pour visiter",
  "packingEssentials": ["Élément 1", "Élément 2"]
}`
}

// User renders the user prompt for a validated request.
func User(req *domain.TripRequest) string {
	labels := make([]string, 0, len(req.Interests))
	for _, in := range req.Interests {
		if l, ok := interestLabels[in]; ok {
			labels = append(labels, l)
		} else {
			labels = append(labels, string(in))
		}
	}

	travelers := 1
	if req.Travelers != nil {
		travelers = *req.Travelers
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Génère un itinéraire de voyage complet pour :

📍 DESTINATION : %s
📅 DURÉE : %d jour%s
👥 VOYAGEURS : %d personne%s
💰 BUDGET : %s
🏃 RYTHME : %s
❤️ INTÉRÊTS : %s`,
		req.Destination,
		req.Days, plural(req.Days),
		travelers, plural(travelers),
		budgetLabels[req.Budget],
		paceLabels[req.Pace],
		strings.Join(labels, ", "),
	)

	if req.StartDate != "" {
		fmt.Fprintf(&b, "\n📆 DATE DE DÉPART : %s", req.StartDate)
	}

	fmt.Fprintf(&b, `

INSTRUCTIONS SPÉCIFIQUES :
- Propose des activités variées correspondant aux intérêts mentionnés
- Inclus un hébergement recommandé pour chaque nuit
- Suggère des restaurants locaux pour chaque repas
- Adapte le nombre d'activités au rythme demandé
- Donne des estimations de prix réalistes pour %s
- Ajoute des tips pratiques et locaux
- Le budget total doit couvrir : hébergement + repas + activités + transport local

Génère le JSON de l'itinéraire complet.`, budgetPhrase(req.Budget))

	return b.String()
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

func budgetPhrase(b domain.Budget) string {
	switch b {
	case domain.BudgetEconomic:
		return "un petit budget"
	case domain.BudgetComfort:
		return "un budget confortable"
	default:
		return "un budget moyen"
	}
}

// ExtractJSON recovers the JSON object from raw model output. It first tries
// the output as-is, then falls back to the outermost '{'..'}' block, which
// tolerates prose or code fences around the payload.
func ExtractJSON(raw string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(raw)
	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return json.RawMessage(trimmed), nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model output")
	}
	candidate := trimmed[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return nil, fmt.Errorf("model output contains malformed JSON")
	}
	return json.RawMessage(candidate), nil
}
