package booking

// Field names submitted to the external form backend. The backend
// matches on these exact names; renaming any of them silently breaks
// spam filtering and notification routing.
const (
	FormName = "booking-request"

	FieldFormName = "form-name"
	FieldHoneypot = "bot-field"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldDate     = "date"
	FieldPackage  = "package"
	FieldMessage  = "message"
)
