package booking

// Package is one bookable session type. The same slice drives the
// pricing cards and the request form's package selector, so the choices
// a visitor sees priced are exactly the choices they can request.
type Package struct {
	Name     string
	Price    string
	Duration string
	Blurb    string
	Icon     string
	Color    string
}

func Packages() []Package {
	return []Package{
		{
			Name:     "Portrait",
			Price:    "$350",
			Duration: "1 hour session",
			Blurb:    "A relaxed one-on-one session in the studio or on location. Includes 25 fully edited images delivered in an online gallery.",
			Icon:     "lucide--user",
			Color:    "primary",
		},
		{
			Name:     "Couple",
			Price:    "$450",
			Duration: "90 minute session",
			Blurb:    "Engagement, anniversary, or just because. Two locations, wardrobe change, and 40 edited images to share.",
			Icon:     "lucide--heart",
			Color:    "secondary",
		},
		{
			Name:     "Event Half-day",
			Price:    "$1,200",
			Duration: "Up to 4 hours",
			Blurb:    "Candid coverage of your gathering, launch, or ceremony. Full gallery of edited highlights within one week.",
			Icon:     "lucide--calendar",
			Color:    "accent",
		},
		{
			Name:     "Event Full-day",
			Price:    "$2,000",
			Duration: "Up to 8 hours",
			Blurb:    "Start-to-finish coverage with a second shooter available. Complete edited gallery plus a printed highlight book.",
			Icon:     "lucide--sun",
			Color:    "primary",
		},
	}
}
