package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northlightstudio/website/internal/booking"
)

func renderBooking(t *testing.T, mode booking.Mode) string {
	t.Helper()

	var sb strings.Builder
	err := BookingSection(BookingProps{
		Mode:         mode,
		SchedulerURL: "https://cal.example/northlight?embed=true",
		FormAction:   "/",
	}).Render(&sb)
	require.NoError(t, err)

	return sb.String()
}

// Exactly one pane is ever in the markup, never both and never neither.
func TestBookingSectionRendersOnePane(t *testing.T) {
	instant := renderBooking(t, booking.ModeInstant)
	assert.Contains(t, instant, "<iframe")
	assert.Contains(t, instant, "https://cal.example/northlight?embed=true")
	assert.NotContains(t, instant, "<form")

	request := renderBooking(t, booking.ModeRequest)
	assert.Contains(t, request, "<form")
	assert.NotContains(t, request, "<iframe")
}

func TestQuoteFormContract(t *testing.T) {
	html := renderBooking(t, booking.ModeRequest)

	assert.Contains(t, html, `method="post"`)
	assert.Contains(t, html, `action="/"`)

	// The full field set the form backend matches on.
	for _, name := range []string{
		booking.FieldFormName,
		booking.FieldHoneypot,
		booking.FieldName,
		booking.FieldEmail,
		booking.FieldPhone,
		booking.FieldDate,
		booking.FieldPackage,
		booking.FieldMessage,
	} {
		assert.Contains(t, html, `name="`+name+`"`, "missing field %q", name)
	}

	// Hidden form identifier carries its fixed value; the honeypot
	// carries none.
	assert.Contains(t, html, `type="hidden" name="form-name" value="booking-request"`)
	assert.Contains(t, html, `type="text" name="bot-field" tabindex="-1" autocomplete="off"`)

	// Native validation attributes on the required fields.
	assert.Contains(t, html, `type="email" name="email"`)
	assert.Contains(t, html, `type="tel" name="phone"`)
	assert.Contains(t, html, `type="date" name="date"`)
	assert.Regexp(t, `name="name"[^>]*required`, html)
	assert.Regexp(t, `name="package"[^>]*required`, html)

	// The select opens on the empty placeholder, which required blocks
	// from being submitted.
	assert.Contains(t, html, `<option value="" selected>Choose a package</option>`)
	for _, p := range booking.Packages() {
		assert.Contains(t, html, `<option value="`+p.Name+`">`)
	}
}

// Every render of the form starts empty: no visible field carries a
// value attribute. The only value in the pane belongs to the hidden
// form-name input and the select options.
func TestQuoteFormStartsEmpty(t *testing.T) {
	html := renderBooking(t, booking.ModeRequest)

	for _, name := range []string{booking.FieldName, booking.FieldEmail, booking.FieldPhone, booking.FieldDate} {
		assert.Regexp(t, `name="`+name+`" class="[^"]*"(?: placeholder="[^"]*")? required`, html)
	}
	assert.NotRegexp(t, `name="message"[^>]*value=`, html)
}

func TestToggleControls(t *testing.T) {
	for _, mode := range []booking.Mode{booking.ModeInstant, booking.ModeRequest} {
		html := renderBooking(t, mode)

		assert.Contains(t, html, `href="/?booking=instant#booking"`)
		assert.Contains(t, html, `href="/?booking=request#booking"`)
		assert.Contains(t, html, `hx-get="/booking/pane?mode=instant"`)
		assert.Contains(t, html, `hx-get="/booking/pane?mode=request"`)
		assert.Contains(t, html, `hx-target="#booking"`)

		// Exactly one control is marked active.
		assert.Equal(t, 1, strings.Count(html, "btn-sm gap-2 btn-primary"),
			"mode %s should mark exactly one control active", mode)
		assert.Equal(t, 1, strings.Count(html, `aria-pressed="true"`))
	}
}
