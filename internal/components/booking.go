package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northlightstudio/website/internal/booking"
)

type BookingProps struct {
	Mode booking.Mode

	// SchedulerURL is the fixed embed URL of the external scheduling
	// widget, shown when Mode is instant.
	SchedulerURL string

	// FormAction is the fixed POST target of the quote form, shown when
	// Mode is request.
	FormAction string
}

// BookingSection renders the toggle controls and exactly one of the two
// booking panes. The whole section is swapped on toggle, so the quote
// form is rebuilt empty every time the visitor switches modes.
func BookingSection(p BookingProps) g.Node {
	return Div(
		ID("booking"),
		Class("py-8 md:py-12 2xl:py-24 xl:py-16 container scroll-mt-20"),

		Div(
			Class("text-center"),
			IconBadge("lucide--calendar-heart", "accent"),
			P(
				Class("mt-4 font-semibold text-2xl sm:text-3xl"),
				g.Text("Book Your Session"),
			),
			P(
				Class("inline-block mt-3 max-w-2xl max-sm:text-sm text-base-content/70"),
				g.Text("Grab an open slot on the calendar, or send a few details and get a custom quote within one business day."),
			),
		),

		bookingToggle(p.Mode),

		bookingPane(p),
	)
}

func bookingToggle(active booking.Mode) g.Node {
	return Div(
		Class("flex justify-center mt-6"),
		Div(
			Class("join"),
			g.Attr("role", "group"),
			g.Attr("aria-label", "Booking mode"),
			toggleControl(active, booking.ModeInstant, "lucide--calendar-clock", "Book instantly"),
			toggleControl(active, booking.ModeRequest, "lucide--mail-question", "Request a quote"),
		),
	)
}

func toggleControl(active, mode booking.Mode, icon, label string) g.Node {
	classes := "join-item btn btn-sm gap-2"
	if mode == active {
		classes += " btn-primary"
	}

	pressed := "false"
	if mode == active {
		pressed = "true"
	}

	return A(
		Class(classes),
		Href("/?booking="+mode.String()+"#booking"),
		g.Attr("hx-get", "/booking/pane?mode="+mode.String()),
		g.Attr("hx-target", "#booking"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-push-url", "/?booking="+mode.String()),
		g.Attr("aria-pressed", pressed),
		Icon(icon, ""),
		g.Text(label),
	)
}

func bookingPane(p BookingProps) g.Node {
	switch p.Mode {
	case booking.ModeRequest:
		return quoteForm(p.FormAction)
	default:
		return schedulerFrame(p.SchedulerURL)
	}
}

func schedulerFrame(url string) g.Node {
	return Div(
		Class("mx-auto mt-8 max-w-3xl"),
		IFrame(
			Src(url),
			g.Attr("title", "Pick a session time"),
			Class("w-full h-[640px] rounded-box border border-base-300 bg-base-100"),
			g.Attr("loading", "lazy"),
		),
	)
}

func quoteForm(action string) g.Node {
	return Form(
		Class("mx-auto mt-8 max-w-xl space-y-4"),
		Method("post"),
		Action(action),
		Name(booking.FormName),

		Input(Type("hidden"), Name(booking.FieldFormName), Value(booking.FormName)),

		// Honeypot. Never visible; the form backend drops any submission
		// where it is filled in.
		P(
			Class("hidden"),
			g.Attr("aria-hidden", "true"),
			Label(
				g.Attr("for", "booking-bot-field"),
				g.Text("Don't fill this out if you're human"),
			),
			Input(
				ID("booking-bot-field"),
				Type("text"),
				Name(booking.FieldHoneypot),
				g.Attr("tabindex", "-1"),
				g.Attr("autocomplete", "off"),
			),
		),

		Div(
			Class("grid grid-cols-1 sm:grid-cols-2 gap-4"),
			formField("Full name", booking.FieldName, "text", "Sam Rivera"),
			formField("Email", booking.FieldEmail, "email", "sam@example.com"),
			formField("Phone", booking.FieldPhone, "tel", "(555) 014-2368"),
			formField("Preferred date", booking.FieldDate, "date", ""),
		),

		packageSelect(),

		Div(
			Class("form-control"),
			Label(
				g.Attr("for", "booking-message"),
				Class("label label-text"),
				g.Text("Anything else? (optional)"),
			),
			Textarea(
				ID("booking-message"),
				Name(booking.FieldMessage),
				Class("textarea textarea-bordered w-full"),
				Rows("4"),
				Placeholder("Venue, headcount, the shots you care about most..."),
			),
		),

		Button(
			Type("submit"),
			Class("btn btn-primary w-full gap-2"),
			Icon("lucide--send", ""),
			g.Text("Send Request"),
		),
	)
}

func formField(label, name, typ, placeholder string) g.Node {
	id := "booking-" + name
	return Div(
		Class("form-control"),
		Label(
			g.Attr("for", id),
			Class("label label-text"),
			g.Text(label),
		),
		Input(
			ID(id),
			Type(typ),
			Name(name),
			Class("input input-bordered w-full"),
			g.If(placeholder != "", Placeholder(placeholder)),
			Required(),
		),
	)
}

func packageSelect() g.Node {
	return Div(
		Class("form-control"),
		Label(
			g.Attr("for", "booking-package"),
			Class("label label-text"),
			g.Text("Package"),
		),
		Select(
			ID("booking-package"),
			Name(booking.FieldPackage),
			Class("select select-bordered w-full"),
			Required(),
			Option(Value(""), Selected(), g.Text("Choose a package")),
			g.Group(g.Map(booking.Packages(), func(p booking.Package) g.Node {
				return Option(Value(p.Name), g.Text(p.Name+" — "+p.Price))
			})),
		),
	)
}
