package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	Theme       string
	OGImage     string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Theme == "" {
		config.Theme = "northlight"
	}

	if config.Title == "" {
		config.Title = "Northlight Studio - Photography in Portland"
	}

	if config.Description == "" {
		config.Description = "Portrait, couple, and event photography with natural light and honest color. Book a session online or request a custom quote."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", config.Theme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				Link(Rel("icon"), Href("/static/images/favicon.svg")),

				Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/daisyui@4.12.14/dist/full.min.css")),
				Script(Src("https://cdn.tailwindcss.com")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Script(Src("https://unpkg.com/htmx.org@1.9.12"), Defer()),
			),
			Body(
				Class("bg-base-100 text-base-content"),
				g.Group(content),

				Script(Type("module"), Src("/static/js/booking-toggle.js")),
				Script(Type("module"), Src("/static/js/mobile-menu.js")),
			),
		),
	})
}
