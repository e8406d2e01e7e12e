package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return g.Group([]g.Node{
		Div(
			Class("relative z-2 overflow-hidden lg:h-screen"),
			ID("hero"),

			Div(
				Class("absolute inset-0 -z-1"),
				Img(
					Src("https://images.unsplash.com/photo-1452587925148-ce544e77e70d?auto=format&fit=crop&w=2000&q=80"),
					Alt(""),
					Class("w-full h-full object-cover opacity-25"),
					g.Attr("loading", "eager"),
				),
			),

			Div(
				Class("container flex items-center justify-center pt-20 md:pt-28 xl:pt-36 2xl:pt-48 pb-20 md:pb-28 xl:pb-36 2xl:pb-48"),
				Div(
					Class("w-100 text-center md:w-120 xl:w-160 2xl:w-200"),

					Div(
						Class("flex justify-center"),
						A(
							Class("inline-flex items-center rounded-full border border-white/60 bg-white/40 hover:bg-white/60 py-0.5 ps-1 pe-2 text-sm transition-all"),
							Href("#booking"),

							Div(
								Class("flex justify-center items-center bg-primary/10 px-1.5 py-0 border border-primary/10 rounded-full font-medium text-primary text-xs"),
								g.Text("NOW BOOKING"),
							),
							g.Text(" Autumn sessions are open"),
						),
					),

					P(
						Class("mt-3 text-2xl leading-tight font-extrabold tracking-[-0.5px] md:text-4xl xl:text-5xl 2xl:text-6xl"),
						g.Text("Photographs That Feel"),
						Br(),
						Span(
							Class("from-secondary via-accent to-primary bg-linear-to-r bg-clip-text text-transparent"),
							g.Text("Like the Day Itself"),
						),
					),

					P(
						Class("text-base-content/80 mt-5 xl:text-lg"),
						g.Text("Northlight Studio shoots portraits, couples, and events across the city in natural light and honest color. No stiff posing, no over-edited skin, just the day the way you remember it."),
					),

					Div(
						Class("mt-8 inline-flex justify-center gap-3"),
						A(
							Href("#booking"),
							Class("btn btn-primary shadow-primary/20 shadow-xl"),
							Span(Class("iconify size-4"), g.Attr("data-icon", "lucide:calendar-check")),
							g.Text("Book a Session"),
						),
						A(
							Href("#portfolio"),
							Class("btn btn-ghost"),
							Span(Class("iconify size-4"), g.Attr("data-icon", "lucide:arrow-down")),
							g.Text("See the Work"),
						),
					),
				),
			),
		),

		Div(Class("from-secondary via-accent to-primary mb-8 h-1 w-full bg-linear-to-r max-xl:mt-6 md:mb-12 xl:mb-16 2xl:mb-28")),
	})
}
