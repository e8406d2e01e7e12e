package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type portfolioImage struct {
	URL string
	Alt string
}

func portfolioImages() []portfolioImage {
	return []portfolioImage{
		{"https://images.unsplash.com/photo-1529626455594-4ff0802cfb7e?auto=format&fit=crop&w=900&q=80", "Studio portrait of a woman in warm window light"},
		{"https://images.unsplash.com/photo-1511285560929-80b456fea0bc?auto=format&fit=crop&w=900&q=80", "Couple walking through confetti outside the ceremony"},
		{"https://images.unsplash.com/photo-1519225421980-715cb0215aed?auto=format&fit=crop&w=900&q=80", "Reception toast under string lights"},
		{"https://images.unsplash.com/photo-1516035069371-29a1b244cc32?auto=format&fit=crop&w=900&q=80", "Photographer adjusting a medium format camera"},
		{"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=900&q=80", "Black and white portrait of a man against a plain wall"},
		{"https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6?auto=format&fit=crop&w=900&q=80", "First dance on a dim dance floor"},
		{"https://images.unsplash.com/photo-1522673607200-164d1b6ce486?auto=format&fit=crop&w=900&q=80", "Hands exchanging rings in soft focus"},
		{"https://images.unsplash.com/photo-1502920917128-1aa500764cbd?auto=format&fit=crop&w=900&q=80", "Golden hour field session with a couple"},
	}
}

func Portfolio() g.Node {
	return Div(
		Class("py-8 md:py-12 2xl:py-24 xl:py-16 container"),

		Div(
			Class("text-center"),
			IconBadge("lucide--image", "secondary"),
			P(
				ID("portfolio"),
				Class("mt-4 font-semibold text-2xl sm:text-3xl"),
				g.Text("Recent Work"),
			),
			P(
				Class("inline-block mt-3 max-w-2xl max-sm:text-sm text-base-content/70"),
				g.Text("A few frames from the last season of sessions and celebrations."),
			),
		),

		Div(
			Class("gap-4 grid grid-cols-2 lg:grid-cols-4 mt-12 xl:mt-16"),
			g.Group(g.Map(portfolioImages(), func(img portfolioImage) g.Node {
				return Div(
					Class("overflow-hidden rounded-box border border-base-300"),
					Img(
						Src(img.URL),
						Alt(img.Alt),
						Class("w-full aspect-[4/5] object-cover hover:scale-105 transition-transform duration-500"),
						g.Attr("loading", "lazy"),
					),
				)
			})),
		),
	)
}
