package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter() g.Node {
	currentYear := "2026"

	return Div(
		Class("relative"),

		Div(
			Class("z-[2] relative pt-8 md:pt-12 2xl:pt-24 xl:pt-16 container"),

			Div(
				Class("gap-6 grid grid-cols-2 md:grid-cols-5"),

				Div(
					Class("col-span-2"),
					Logo(),

					P(
						Class("mt-3 max-sm:text-sm text-base-content/80"),
						g.Text("A small photography studio shooting portraits, couples, and events in natural light. Based in Portland, travelling anywhere the light is good."),
					),

					Div(
						Class("flex items-center gap-2.5 mt-6 xl:mt-16"),
						A(Class("btn btn-sm btn-circle"), Href("https://instagram.com/northlightstudio"), g.Attr("target", "_blank"),
							Icon("lucide--instagram", "Instagram"),
						),
						A(Class("btn btn-sm btn-circle"), Href("https://pinterest.com/northlightstudio"), g.Attr("target", "_blank"),
							Icon("lucide--pin", "Pinterest"),
						),
						A(Class("btn btn-sm btn-circle"), Href("mailto:hello@northlightstudio.com"),
							Icon("lucide--mail", "Email"),
						),
					),
				),

				Div(Class("max-md:hidden xl:col-span-1")),

				Div(
					Class("col-span-1"),
					P(Class("font-medium"), g.Text("Studio")),
					Div(
						Class("flex flex-col space-y-1.5 mt-5 text-base-content/80"),
						A(Href("#pricing"), g.Text("Pricing")),
						A(Href("#portfolio"), g.Text("Portfolio")),
						A(Href("#booking"), g.Text("Booking")),
					),
				),

				Div(
					Class("col-span-1"),
					P(Class("font-medium"), g.Text("Contact")),
					Div(
						Class("flex flex-col space-y-1.5 mt-5 text-base-content/80"),
						A(Href("mailto:hello@northlightstudio.com"), g.Text("hello@northlightstudio.com")),
						A(Href("tel:+15550142368"), g.Text("(555) 014-2368")),
						P(g.Text("1214 NW Flanders St")),
						P(g.Text("Portland, OR 97209")),
					),
				),
			),

			Div(
				Class("flex flex-wrap justify-between items-center gap-3 mt-12 py-6 border-t border-base-300"),
				P(g.Text(fmt.Sprintf("© %s Northlight Studio. All rights reserved.", currentYear))),
				P(Class("text-sm text-base-content/60"), g.Text("Photographs on this page are from real client sessions.")),
			),
		),

		P(
			Class("max-lg:hidden flex justify-center -mt-12 h-[195px] overflow-hidden font-black text-[200px] text-base-content/5 tracking-[12px] whitespace-nowrap select-none"),
			g.Text("NORTHLIGHT"),
		),
	)
}
