package handlers

import (
	"net/http"

	"github.com/northlightstudio/website/internal/booking"
	"github.com/northlightstudio/website/internal/components"
	"github.com/northlightstudio/website/internal/config"
)

// LandingPage renders the whole site. The booking query parameter picks
// which booking pane is in the document; everything else is static.
func LandingPage(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := booking.ParseMode(r.URL.Query().Get("booking"))

		page := components.Layout(
			components.PageConfig{
				Title:       "Northlight Studio - Photography in Portland",
				Description: "Portrait, couple, and event photography with natural light and honest color. Book a session online or request a custom quote.",
				OGImage:     "https://images.unsplash.com/photo-1452587925148-ce544e77e70d?auto=format&fit=crop&w=1200&q=80",
			},
			components.Topbar(),
			components.Hero(),
			components.Pricing(),
			components.Portfolio(),
			components.BookingSection(components.BookingProps{
				Mode:         mode,
				SchedulerURL: cfg.SchedulerURL,
				FormAction:   cfg.FormAction,
			}),
			components.PageFooter(),
		)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = page.Render(w)
	}
}

// BookingPane returns just the booking section, used by the toggle
// controls to swap panes in place without a full page load.
func BookingPane(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := booking.ParseMode(r.URL.Query().Get("mode"))

		section := components.BookingSection(components.BookingProps{
			Mode:         mode,
			SchedulerURL: cfg.SchedulerURL,
			FormAction:   cfg.FormAction,
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = section.Render(w)
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
