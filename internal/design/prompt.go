// Package design renders the natural-language instructions sent to the image
// model. Every function here is pure: lookup tables plus string assembly, no
// I/O, so the same input always produces the same prompt.
package design

import (
	"fmt"
	"strconv"
	"strings"
)

// FloorPlanParams carries the structured input of the 2D floor plan tool.
type FloorPlanParams struct {
	RoomType        string
	RoomName        string
	Width           float64
	Height          float64
	Doors           int
	Windows         int
	Style           string
	AdditionalNotes string
}

// FloorPlanPrompt renders the full instruction for generating a 2D floor plan
// from scratch. Dimensions are interpolated verbatim, the area is derived with
// one-decimal formatting, and non-blank notes are appended inside a delimited
// requirements section.
func FloorPlanPrompt(p FloorPlanParams) string {
	roomDesc := RoomDescription(p.RoomType)
	styleDesc := LayoutStyleDescription(p.Style)

	var b strings.Builder
	fmt.Fprintf(&b, `You are a professional architect and interior designer specializing in 2D floor plan creation.

CREATE A DETAILED 2D FLOOR PLAN with the following specifications:

ROOM DETAILS:
- Room Type: %s
- Dimensions: %s meters (width) × %s meters (length)
- Total Area: %.1f square meters
- Number of Doors: %d
- Number of Windows: %d
- Design Style: %s (%s)

ROOM DESCRIPTION:
This should be a %s.

CRITICAL REQUIREMENTS FOR THE 2D PLAN:
1. Draw a TOP-DOWN VIEW floor plan (bird's eye view)
2. Use CLEAN BLACK LINES on WHITE/LIGHT BACKGROUND
3. Show WALLS as THICK BLACK LINES
4. Mark DOORS with standard architectural door swing symbols
5. Mark WINDOWS with standard architectural window symbols (parallel lines)
6. Include FURNITURE LAYOUT appropriate for the room type
7. Add DIMENSION LINES showing %sm × %sm
8. Use PROPER ARCHITECTURAL SYMBOLS and conventions
9. Label key furniture and features
10. Maintain ACCURATE SCALE and PROPORTIONS

STYLE GUIDELINES:
- Professional architectural drawing style
- Clean, minimalist line work
- Clear labeling
- Proper spacing and circulation paths
- Furniture sized appropriately for the room dimensions

The output should look like a professional architectural 2D floor plan that could be used for construction or interior design purposes.`,
		p.RoomName, formatMeters(p.Width), formatMeters(p.Height), p.Width*p.Height,
		p.Doors, p.Windows, p.Style, styleDesc, roomDesc,
		formatMeters(p.Width), formatMeters(p.Height))

	appendNotes(&b, p.AdditionalNotes)

	b.WriteString("\n\nGenerate a single, high-quality 2D floor plan image.")
	return b.String()
}

// RestylePrompt renders the instruction for redesigning a photographed room in
// a given style while preserving its dimensions and architecture.
func RestylePrompt(style, roomType string) string {
	stylePrompt := StylePrompt(style)
	roomTypePrompt := RoomTypePrompt(roomType)

	var b strings.Builder
	b.WriteString(`You are a world-class interior designer. Transform this room photo into a stunning interior design visualization.

DESIGN STYLE TO APPLY:
`)
	b.WriteString(stylePrompt)
	b.WriteString("\n\n")
	if roomTypePrompt != "" {
		b.WriteString(roomTypePrompt)
		b.WriteString("\n\n")
	}
	b.WriteString(`CRITICAL INSTRUCTIONS:
1. PRESERVE THE EXACT ROOM DIMENSIONS - Keep the same room size, shape, walls, ceiling height
2. PRESERVE THE EXACT POSITIONS of windows, doors, and architectural features
3. The room must look IDENTICAL in size and structure - only the interior design changes
4. Apply the specified design style with appropriate furniture and decor
5. Use the style's color palette, materials, and lighting
6. Make it photorealistic with proper lighting and shadows
7. The result should look like a professional interior design magazine photo

IMPORTANT: The room dimensions and architecture must remain EXACTLY the same. Only redesign the interior elements (furniture, colors, materials, decor) while keeping the room structure identical.

Generate a single, photorealistic interior design image.`)
	return b.String()
}

// ConvertTo3DPrompt renders the fixed instruction for converting a 2D floor
// plan into a 3D visualization.
func ConvertTo3DPrompt() string {
	return "Convert this 2D floor plan into a realistic 3D architectural floor plan visualization. " +
		"Create a photorealistic 3D perspective view showing the interior with modern furniture, lighting, and materials. " +
		"Keep the same layout but transform it into a beautiful 3D render with depth, shadows, and realistic textures. " +
		"Generate a single image."
}

// FurnishPrompt renders the instruction for adding furniture symbols to an
// empty 2D floor plan.
func FurnishPrompt(style string) string {
	stylePrompt := "Use modern, functional furniture."
	if s := strings.TrimSpace(style); s != "" {
		stylePrompt = fmt.Sprintf("The furniture style should be %s.", s)
	}

	return fmt.Sprintf(`You are an expert interior designer and architect. I'm providing an empty 2D floor plan.

Please generate a new 2D floor plan image that shows furniture placement. The output should be:
1. A clean, professional 2D architectural floor plan
2. Show furniture symbols/icons in their proper positions (beds, sofas, tables, chairs, desks, wardrobes, etc.)
3. Keep the same room layout, walls, doors, and windows from the original
4. Add appropriate furniture for each room type (bedroom gets bed + nightstands, living room gets sofa + coffee table, etc.)
5. Use standard architectural symbols for furniture
6. Maintain proper scale and proportions
7. Include furniture labels if helpful
%s

Generate a single, clean, black and white 2D floor plan image with furniture layout. The style should be professional architectural drawing.`, stylePrompt)
}

// ReferenceTransferPrompt renders the fixed two-image instruction: the first
// image is the room to redesign, the second is the style reference. The
// wording encodes that ordering, so it must match how the parts are assembled.
func ReferenceTransferPrompt() string {
	return `You are an expert interior designer. I'm providing two images:
1. First image: This is the room I want to redesign
2. Second image: This is a reference room with the style/mood I want to achieve

Please generate a new image that shows my room (first image) redesigned to match the style, mood, colors, materials, and aesthetic of the reference room (second image). Keep the basic layout and structure of my room, but transform the interior design elements (furniture style, color palette, lighting, textures, decorations) to match the reference.

Generate a single photorealistic interior design visualization that blends my room's layout with the reference room's aesthetic.`
}

// DesignType selects between the interior and exterior branches of the
// free-form visualization tool.
type DesignType string

const (
	DesignInterior DesignType = "interior"
	DesignExterior DesignType = "exterior"
)

// NormalizeDesignType maps free-form input onto a supported design type,
// defaulting to interior.
func NormalizeDesignType(s string) DesignType {
	if strings.ToLower(strings.TrimSpace(s)) == string(DesignExterior) {
		return DesignExterior
	}
	return DesignInterior
}

// VisionPrompt wraps a free-form user prompt for the visualization tool. The
// wording branches on whether a reference image accompanies the request and on
// the interior/exterior design type.
func VisionPrompt(userPrompt string, hasReference bool, designType DesignType) string {
	userPrompt = strings.TrimSpace(userPrompt)
	isExterior := designType == DesignExterior

	if hasReference {
		if isExterior {
			return fmt.Sprintf(`You are a world-class architectural designer and visualization artist. Based on the user's prompt and the reference image provided, create a stunning photorealistic exterior architectural visualization.

USER'S VISION:
"%s"

CRITICAL INSTRUCTIONS:
1. Use the reference image as inspiration for the design
2. Create a photorealistic exterior architectural rendering
3. Apply professional lighting with realistic sky and sunlight
4. The result should look like a high-end architectural visualization
5. Include appropriate landscaping, outdoor furniture, and styling based on the prompt
6. Ensure the exterior feels cohesive and professionally designed
7. Pay attention to materials, textures, and architectural details
8. Include realistic environment elements like trees, plants, pathways

Generate a single, stunning exterior design image that brings the user's vision to life.`, userPrompt)
		}

		return fmt.Sprintf(`You are a world-class interior designer and visualization artist. Based on the user's prompt and the reference image provided, create a stunning photorealistic interior design visualization.

USER'S VISION:
"%s"

CRITICAL INSTRUCTIONS:
1. Use the reference image as inspiration for the design
2. Create a photorealistic interior design rendering
3. Apply professional lighting, materials, and textures
4. The result should look like a high-end architectural visualization
5. Include appropriate furniture, decor, and styling based on the prompt
6. Ensure the space feels cohesive and professionally designed
7. Pay attention to color harmony, spatial balance, and visual flow

Generate a single, stunning interior design image that brings the user's vision to life.`, userPrompt)
	}

	if isExterior {
		return fmt.Sprintf(`You are a world-class architectural designer and visualization artist. Based on the user's description, create a stunning photorealistic exterior architectural visualization.

USER'S VISION:
"%s"

CRITICAL INSTRUCTIONS:
1. Create a photorealistic exterior architectural rendering
2. Apply professional lighting with realistic sky, sunlight, and shadows
3. Use high-quality materials and textures for building facades
4. The result should look like a high-end architectural magazine photo
5. Include appropriate landscaping, outdoor elements, and styling
6. Ensure the exterior feels cohesive, balanced, and professionally designed
7. Pay attention to architectural proportions, materials, and details
8. Add realistic environment elements like vegetation, water features, outdoor lighting

Generate a single, stunning exterior design image that brings the user's vision to life.`, userPrompt)
	}

	return fmt.Sprintf(`You are a world-class interior designer and visualization artist. Based on the user's description, create a stunning photorealistic interior design visualization.

USER'S VISION:
"%s"

CRITICAL INSTRUCTIONS:
1. Create a photorealistic interior design rendering
2. Apply professional lighting with natural and artificial light sources
3. Use high-quality materials and textures
4. The result should look like a high-end architectural magazine photo
5. Include appropriate furniture, decor, and styling
6. Ensure the space feels cohesive, balanced, and professionally designed
7. Pay attention to color harmony, spatial balance, and visual flow
8. Add subtle details like plants, books, art pieces to make it feel lived-in

Generate a single, stunning interior design image that brings the user's vision to life.`, userPrompt)
}

// appendNotes writes the delimited user requirements section when notes are
// non-blank. Whitespace-only notes leave the prompt untouched: no empty
// section markers.
func appendNotes(b *strings.Builder, notes string) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return
	}
	fmt.Fprintf(b, "\n\nUSER'S ADDITIONAL REQUIREMENTS:\n\"%s\"\n\nPlease incorporate these specific requests into the floor plan design.", notes)
}

// formatMeters renders a dimension the way a person typed it: no trailing
// zeros, so 4 stays "4" and 3.5 stays "3.5".
func formatMeters(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
