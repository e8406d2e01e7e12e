package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northlightstudio/website/internal/booking"
)

func Pricing() g.Node {
	return Div(
		Class("py-8 md:py-12 2xl:py-24 xl:py-16 container"),

		Div(
			Class("text-center"),
			IconBadge("lucide--tags", "primary"),
			P(
				ID("pricing"),
				Class("mt-4 font-semibold text-2xl sm:text-3xl"),
				g.Text("Sessions & Pricing"),
			),
			P(
				Class("inline-block mt-3 max-w-2xl max-sm:text-sm text-base-content/70"),
				g.Text("Every package includes a pre-session call, full-resolution downloads, and a private online gallery. Travel within the city is always free."),
			),
		),

		Div(
			Class("gap-6 2xl:gap-8 grid grid-cols-1 md:grid-cols-2 xl:grid-cols-4 mt-12 2xl:mt-24 xl:mt-16"),
			g.Group(g.Map(booking.Packages(), func(p booking.Package) g.Node {
				return Div(
					Class("hover:bg-base-200/40 border border-base-300 hover:border-base-300/60 transition-all duration-300 card"),
					Div(
						Class("card-body"),
						IconBadge(p.Icon, p.Color),
						P(Class("mt-4 font-semibold text-xl"), g.Text(p.Name)),
						P(
							Class("mt-1"),
							Span(Class("font-bold text-2xl"), g.Text(p.Price)),
							Span(Class("ms-2 text-sm text-base-content/60"), g.Text(p.Duration)),
						),
						P(Class("mt-2 text-sm text-base-content/80 leading-relaxed"), g.Text(p.Blurb)),
						Div(
							Class("card-actions mt-4"),
							A(
								Href("#booking"),
								Class("btn btn-ghost btn-sm gap-2"),
								Icon("lucide--arrow-right", "Book"),
								g.Text("Book this"),
							),
						),
					),
				)
			})),
		),
	)
}
