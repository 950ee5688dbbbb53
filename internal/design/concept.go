package design

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ConceptPrompt wraps a free-form user description into the JSON-contract
// instruction used by the text model to produce a full design concept.
func ConceptPrompt(userPrompt string) string {
	return fmt.Sprintf(`You are a world-class interior designer and architect. Based on the following user description, create a comprehensive and professional interior design concept.

USER'S VISION:
"%s"

Please provide a detailed design concept in the following JSON format (respond ONLY with valid JSON, no markdown):
{
  "title": "A creative, catchy title for this design concept (max 50 chars)",
  "subtitle": "A brief professional summary of the design approach (max 150 chars)",
  "description": "Detailed description of the overall design vision and atmosphere (2-3 sentences)",
  "style": "The primary interior design style (e.g., Modern, Scandinavian, Industrial, etc.)",
  "colorPalette": {
    "primary": "Main color with hex code",
    "secondary": "Secondary color with hex code",
    "accent": "Accent color with hex code",
    "neutral": "Neutral/base color with hex code"
  },
  "materials": ["List of 4-5 key materials to be used"],
  "furniture": ["List of 5-6 essential furniture pieces with brief descriptions"],
  "lighting": {
    "natural": "Description of natural lighting approach",
    "artificial": "Description of artificial lighting plan",
    "ambient": "Ambient/mood lighting suggestions"
  },
  "zones": ["List of 3-4 functional zones in the space"],
  "focalPoints": ["2-3 main focal points or statement pieces"],
  "mood": "The overall mood/atmosphere (e.g., Cozy & Warm, Sleek & Modern, etc.)",
  "tags": ["5-6 relevant design tags"],
  "tips": ["3-4 professional tips for implementing this design"]
}

Important guidelines:
- Be specific and practical in your recommendations
- Consider functionality alongside aesthetics
- Suggest realistic, achievable design elements
- Maintain coherence between all design elements
- Use professional interior design terminology`, strings.TrimSpace(userPrompt))
}

// ColorPalette holds the four concept colors.
type ColorPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Neutral   string `json:"neutral"`
}

// LightingPlan describes the three lighting layers of a concept.
type LightingPlan struct {
	Natural    string `json:"natural"`
	Artificial string `json:"artificial"`
	Ambient    string `json:"ambient"`
}

// Concept is the structured design concept returned by the text model.
type Concept struct {
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle"`
	Description  string       `json:"description"`
	Style        string       `json:"style"`
	ColorPalette ColorPalette `json:"colorPalette"`
	Materials    []string     `json:"materials"`
	Furniture    []string     `json:"furniture"`
	Lighting     LightingPlan `json:"lighting"`
	Zones        []string     `json:"zones"`
	FocalPoints  []string     `json:"focalPoints"`
	Mood         string       `json:"mood"`
	Tags         []string     `json:"tags"`
	Tips         []string     `json:"tips"`
}

// ParseConcept decodes the model's reply into a Concept, tolerating markdown
// code fences around the JSON. Because the model sometimes replies with prose
// instead of the requested JSON, a parse failure falls back to a generic
// concept built from the user's prompt and the raw text rather than erroring.
func ParseConcept(raw, userPrompt string) Concept {
	cleaned := StripCodeFence(raw)
	var concept Concept
	if err := json.Unmarshal([]byte(cleaned), &concept); err == nil && concept.Title != "" {
		return concept
	}
	return fallbackConcept(raw, userPrompt)
}

// StripCodeFence removes a surrounding ```json ... ``` (or plain ```) fence.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func fallbackConcept(raw, userPrompt string) Concept {
	title := strings.TrimSpace(userPrompt)
	if len(title) > 50 {
		title = title[:50]
	}
	description := strings.TrimSpace(raw)
	if len(description) > 300 {
		description = description[:300]
	}
	return Concept{
		Title:       title,
		Subtitle:    "AI-generated design concept",
		Description: description,
		Style:       "Modern",
		ColorPalette: ColorPalette{
			Primary:   "#2C3E50",
			Secondary: "#ECF0F1",
			Accent:    "#E74C3C",
			Neutral:   "#BDC3C7",
		},
		Materials: []string{"Natural wood", "Metal", "Glass", "Fabric"},
		Furniture: []string{"Main seating", "Coffee table", "Storage units"},
		Lighting: LightingPlan{
			Natural:    "Maximize daylight through large windows",
			Artificial: "Layered LED lighting system",
			Ambient:    "Concealed LED strips",
		},
		Zones:       []string{"Seating zone", "Work zone", "Relaxation zone"},
		FocalPoints: []string{"Feature wall", "Statement lighting"},
		Mood:        "Contemporary and comfortable",
		Tags:        []string{"Modern", "Minimal", "Functional", "Comfortable"},
		Tips:        []string{"Make use of natural light", "Keep the color palette coherent"},
	}
}
