// Package booking holds the page's only piece of state, the visitor's
// choice between the two booking flows, plus the fixed contract the
// request form shares with the external form backend.
package booking

// Mode selects which booking pane is rendered. Exactly one pane is ever
// shown; ModeInstant is the default on first load.
type Mode string

const (
	ModeInstant Mode = "instant"
	ModeRequest Mode = "request"
)

// ParseMode maps a raw query value to a Mode. Anything that is not
// exactly "request" falls back to ModeInstant, so repeated or malformed
// selections still resolve to a single valid mode.
func ParseMode(raw string) Mode {
	if raw == string(ModeRequest) {
		return ModeRequest
	}
	return ModeInstant
}

func (m Mode) String() string {
	return string(m)
}
