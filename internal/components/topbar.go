package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	Href  string
	Label string
}

func navLinks() []navLink {
	return []navLink{
		{"#pricing", "Pricing"},
		{"#portfolio", "Portfolio"},
		{"#booking", "Booking"},
	}
}

func Topbar() g.Node {
	return Div(
		Class("fixed inset-x-0 top-0 z-[60] flex justify-center bg-base-100/80 backdrop-blur shadow-sm"),

		Div(
			Class("flex justify-between items-center px-3 sm:px-6 py-3 lg:py-1.5 w-full container"),

			Div(
				Class("flex items-center gap-2"),

				Div(
					Class("lg:hidden flex-none"),
					Div(
						Class("drawer"),
						Input(
							ID("landing-menu-drawer"),
							Type("checkbox"),
							Class("drawer-toggle"),
						),
						Div(
							Class("drawer-content"),
							Label(
								g.Attr("for", "landing-menu-drawer"),
								Class("btn drawer-button btn-ghost btn-square btn-sm"),
								Span(
									Class("size-4.5"),
									Span(Class("iconify size-4.5"), g.Attr("data-icon", "lucide:menu"), g.Attr("aria-hidden", "true")),
								),
							),
						),
						Div(
							Class("z-[50] drawer-side"),
							Label(
								g.Attr("for", "landing-menu-drawer"),
								g.Attr("aria-label", "close sidebar"),
								Class("drawer-overlay"),
							),
							Ul(
								Class("bg-base-100 p-4 w-80 min-h-full text-base-content menu"),
								g.Group(g.Map(navLinks(), func(link navLink) g.Node {
									return Li(
										A(Href(link.Href), g.Text(link.Label)),
									)
								})),
							),
						),
					),
				),

				A(
					Href("/"),
					Logo(),
				),
			),

			Ul(
				Class("hidden lg:inline-flex gap-2 px-0 menu menu-horizontal"),
				g.Group(g.Map(navLinks(), func(link navLink) g.Node {
					return Li(
						A(Href(link.Href), g.Text(link.Label)),
					)
				})),
			),

			Div(
				Class("inline-flex items-center gap-3"),

				A(
					Href("#booking"),
					Class("gap-2 bg-linear-to-r from-primary to-secondary border-0 text-primary-content text-sm btn btn-sm max-sm:btn-square"),
					Span(Class("iconify size-4"), g.Attr("data-icon", "lucide:calendar-plus"), g.Attr("aria-hidden", "true")),
					Span(Class("max-sm:hidden"), g.Text("Book a Session")),
				),
			),
		),
	)
}
