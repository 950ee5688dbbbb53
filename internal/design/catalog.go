package design

// Floor plan room descriptions keyed by room type. Unknown room types fall
// back to "custom" rather than failing; the provider copes better with a
// generic description than the caller does with a 400.
var roomDescriptions = map[string]string{
	"bedroom":  "bedroom with bed placement area, wardrobe space, nightstands, and proper circulation paths",
	"living":   "living room with sofa arrangement, coffee table, TV unit area, and comfortable seating layout",
	"kitchen":  "kitchen with countertops, cooking area, sink, refrigerator space, and storage cabinets",
	"bathroom": "bathroom with toilet, sink/vanity, shower or bathtub area, and proper drainage locations",
	"office":   "home office with desk placement, chair space, bookshelf area, and computer setup zone",
	"kids":     "children's room with bed, play area, study desk, and toy storage space",
	"gym":      "home gym with exercise equipment zones, free weights area, and proper spacing for movement",
	"garage":   "garage with vehicle parking space, storage areas, and workbench zone",
	"garden":   "garden/terrace layout with plant beds, seating area, and pathway planning",
	"custom":   "custom room with flexible furniture arrangement and functional zones",
}

// Layout style descriptions for floor plans. Unknown styles fall back to
// "modern".
var layoutStyleDescriptions = map[string]string{
	"modern":       "clean lines, open spaces, contemporary furniture placement",
	"minimalist":   "essential furniture only, maximum open space, simple layout",
	"classic":      "traditional furniture arrangement, symmetrical design, elegant spacing",
	"scandinavian": "functional layout, cozy corners, natural flow between areas",
	"industrial":   "open plan feel, practical zones, raw aesthetic spacing",
	"luxury":       "spacious arrangement, premium furniture placement, grand proportions",
}

// Interior design style paragraphs used by the photo restyle tool. Unknown
// styles fall back to "modern".
var stylePrompts = map[string]string{
	"modern": `Modern Interior Design Style:
- Clean lines and geometric shapes
- Neutral color palette with bold accent colors
- Open floor plans and minimal clutter
- Materials: glass, steel, concrete, polished surfaces
- Furniture: sleek, low-profile, functional
- Lighting: recessed, track lighting, statement pendants`,

	"minimalist": `Minimalist Interior Design Style:
- "Less is more" philosophy
- Monochromatic or very limited color palette (whites, grays, blacks)
- Essential furniture only, no decorative clutter
- Clean, unadorned surfaces
- Hidden storage solutions
- Natural light emphasis, simple window treatments`,

	"scandinavian": `Scandinavian Interior Design Style:
- Light, airy, and cozy (hygge)
- White walls with warm wood accents
- Neutral colors with soft pastels
- Natural materials: light wood, wool, linen, leather
- Functional yet beautiful furniture
- Plants and natural elements
- Soft, layered textiles`,

	"industrial": `Industrial Interior Design Style:
- Exposed brick, concrete, and ductwork
- Raw, unfinished look
- Metal and wood combinations
- Dark color palette with metallic accents
- Vintage and repurposed furniture
- Edison bulbs and metal pendant lights
- Open spaces with high ceilings`,

	"bohemian": `Bohemian Interior Design Style:
- Eclectic mix of patterns, colors, and textures
- Rich, warm colors (reds, oranges, purples, greens)
- Layered textiles: rugs, throws, pillows
- Global and vintage influences
- Plants everywhere
- Artistic and handcrafted items
- Relaxed, collected-over-time aesthetic`,

	"contemporary": `Contemporary Interior Design Style:
- Current trends and modern aesthetics
- Neutral base with bold color accents
- Curved furniture and organic shapes
- Mix of textures and materials
- Statement art pieces
- Open, flowing spaces
- Sustainable and eco-friendly elements`,

	"traditional": `Traditional Interior Design Style:
- Classic European influences
- Rich, warm colors (burgundy, navy, forest green)
- Ornate furniture with curved lines
- Symmetrical arrangements
- Luxurious fabrics: velvet, silk, brocade
- Crown moldings and wainscoting
- Antiques and heirlooms`,

	"japandi": `Japandi Interior Design Style:
- Fusion of Japanese and Scandinavian design
- Wabi-sabi philosophy (beauty in imperfection)
- Neutral, earthy color palette
- Natural materials: wood, bamboo, stone, paper
- Minimalist but warm
- Craftsmanship and quality over quantity
- Zen-like calm and simplicity`,

	"midcentury": `Mid-Century Modern Interior Design Style:
- 1950s-1960s aesthetic
- Organic curves and clean lines
- Bold colors and graphic patterns
- Iconic furniture pieces (Eames, Noguchi)
- Wood paneling and teak furniture
- Large windows and indoor-outdoor connection
- Retro-futuristic elements`,

	"coastal": `Coastal Interior Design Style:
- Beach-inspired, relaxed atmosphere
- Light, breezy color palette (blues, whites, sandy tones)
- Natural textures: rattan, jute, driftwood
- Nautical accents (subtle, not themed)
- Light, airy fabrics
- Indoor-outdoor living
- Casual, comfortable furniture`,

	"farmhouse": `Modern Farmhouse Interior Design Style:
- Rustic meets contemporary
- Neutral colors with black accents
- Shiplap walls and barn doors
- Reclaimed wood and vintage finds
- Comfortable, lived-in feel
- Apron sinks and open shelving
- Mix of old and new`,

	"artdeco": `Art Deco Interior Design Style:
- 1920s-1930s glamour
- Bold geometric patterns
- Rich colors: gold, black, emerald, navy
- Luxurious materials: velvet, lacquer, mirrors
- Symmetry and repetition
- Statement lighting fixtures
- Opulent and theatrical`,
}

// Room-specific furniture and layout guidance for the photo restyle tool.
// Unlike the style tables there is no default: an unknown room type simply
// omits the section.
var roomTypePrompts = map[string]string{
	"bedroom": `ROOM TYPE: Bedroom
Essential furniture to include:
- Bed (appropriate size for room)
- Nightstands on both sides
- Dresser or chest of drawers
- Wardrobe or closet organization
- Bedside lamps
- Optional: vanity, reading chair, bench at foot of bed
Layout: Bed as focal point, symmetrical nightstand placement`,

	"livingroom": `ROOM TYPE: Living Room
Essential furniture to include:
- Sofa or sectional as main seating
- Coffee table
- TV unit or entertainment center
- Armchairs or accent chairs
- Side tables
- Floor or table lamps
- Optional: bookshelf, console table
Layout: Conversation-friendly arrangement, TV viewing angles considered`,

	"kitchen": `ROOM TYPE: Kitchen
Essential elements to include:
- Cabinets (upper and lower)
- Countertops
- Sink and faucet
- Stove/cooktop and oven
- Refrigerator
- Kitchen island or breakfast bar (if space allows)
- Pendant lights over island/counter
- Optional: open shelving, bar stools
Layout: Work triangle (sink-stove-fridge) efficiency`,

	"bathroom": `ROOM TYPE: Bathroom
Essential elements to include:
- Vanity with sink
- Mirror (large, well-lit)
- Toilet
- Shower or bathtub (or both)
- Towel racks/hooks
- Storage cabinets or shelving
- Proper lighting (vanity lights)
Layout: Functional flow, privacy considerations`,

	"diningroom": `ROOM TYPE: Dining Room
Essential furniture to include:
- Dining table (appropriate size)
- Dining chairs (matching or complementary)
- Sideboard or buffet
- Chandelier or pendant light over table
- Optional: bar cart, display cabinet
Layout: Table centered, adequate space for chair movement`,

	"office": `ROOM TYPE: Home Office
Essential furniture to include:
- Desk (appropriate size for work)
- Ergonomic office chair
- Bookshelves or storage units
- Task lighting (desk lamp)
- Filing cabinet or storage
- Optional: guest chair, credenza
Layout: Desk positioned for natural light, organized workspace`,

	"kidsroom": `ROOM TYPE: Kids Room
Essential furniture to include:
- Bed (age-appropriate)
- Desk and chair for study
- Wardrobe or closet
- Toy storage (bins, shelves)
- Bookshelf
- Playful lighting
- Optional: reading nook, play area
Layout: Safe, functional, room to play`,

	"nursery": `ROOM TYPE: Nursery
Essential furniture to include:
- Crib
- Changing table/dresser
- Comfortable nursing/rocking chair
- Storage for baby items
- Soft lighting (dimmable)
- Bookshelf for books and toys
Layout: Crib away from windows, easy access to essentials`,

	"guestroom": `ROOM TYPE: Guest Room
Essential furniture to include:
- Comfortable bed (queen preferred)
- Nightstands with lamps
- Dresser or luggage rack
- Mirror
- Comfortable seating
- Adequate closet space
Layout: Welcoming, hotel-like comfort`,

	"studio": `ROOM TYPE: Studio Apartment
Essential elements to include:
- Multi-functional furniture
- Bed or sofa bed
- Dining area
- Workspace
- Storage solutions
- Room dividers or zoning
Layout: Clear zones for sleeping, living, working`,
}

// RoomDescription returns the floor plan description for a room type, falling
// back to the custom entry.
func RoomDescription(roomType string) string {
	if desc, ok := roomDescriptions[roomType]; ok {
		return desc
	}
	return roomDescriptions["custom"]
}

// LayoutStyleDescription returns the layout description for a style, falling
// back to modern.
func LayoutStyleDescription(style string) string {
	if desc, ok := layoutStyleDescriptions[style]; ok {
		return desc
	}
	return layoutStyleDescriptions["modern"]
}

// StylePrompt returns the interior design style paragraph, falling back to
// modern.
func StylePrompt(style string) string {
	if p, ok := stylePrompts[style]; ok {
		return p
	}
	return stylePrompts["modern"]
}

// RoomTypePrompt returns the furniture guidance for a room type, or the empty
// string when the room type is unknown.
func RoomTypePrompt(roomType string) string {
	return roomTypePrompts[roomType]
}
