package signup

import "log/slog"

// Registration is the payload handed off when the form is submitted.
type Registration struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Username string `yaml:"username"`
}

// SubmitFunc receives the completed registration.
type SubmitFunc func(Registration)

// Form holds the state of one registration form: the three raw values and
// the set of fields that have been left at least once.
//
// A field is shown as invalid only after it has been touched, while
// CanSubmit depends on validity alone. No operation fails: every string is
// a legal in-progress value.
type Form struct {
	values  [3]string
	touched TouchedSet
	submit  SubmitFunc
	log     *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithSubmit sets the function that receives the registration on Submit.
func WithSubmit(fn SubmitFunc) Option {
	return func(f *Form) { f.submit = fn }
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) { f.log = l }
}

// New returns an empty, untouched form.
func New(opts ...Option) *Form {
	f := &Form{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Set replaces the value of field. It never changes the touched set.
func (f *Form) Set(field Field, v string) {
	if !field.known() {
		return
	}
	f.values[field] = v
}

// Value returns the current value of field.
func (f *Form) Value(field Field) string {
	if !field.known() {
		return ""
	}
	return f.values[field]
}

// Touch marks field as left by the user. Repeated calls have no further effect.
func (f *Form) Touch(field Field) {
	if !field.known() || f.touched.Has(field) {
		return
	}
	f.touched.Add(field)
	f.log.Debug("field touched", "field", field.String())
}

// Touched reports whether field has been touched.
func (f *Form) Touched(field Field) bool {
	return f.touched.Has(field)
}

// TouchedFields returns the touched fields in display order.
func (f *Form) TouchedFields() []Field {
	return f.touched.Members()
}

// Valid reports whether the current value of field passes its predicate.
func (f *Form) Valid(field Field) bool {
	return Valid(field, f.Value(field))
}

// Invalid reports whether field should be displayed as erroneous:
// it has been touched and its value is not valid.
func (f *Form) Invalid(field Field) bool {
	return f.touched.Has(field) && !f.Valid(field)
}

// CanSubmit reports whether every field is valid, touched or not.
func (f *Form) CanSubmit() bool {
	return f.Valid(Email) && f.Valid(Password) && f.Valid(Username)
}

// Registration returns the current values as a payload.
func (f *Form) Registration() Registration {
	return Registration{
		Email:    f.values[Email],
		Password: f.values[Password],
		Username: f.values[Username],
	}
}

// Submit hands the registration to the submit function when CanSubmit is
// true and reports whether it did. It does not modify the form.
func (f *Form) Submit() bool {
	if !f.CanSubmit() {
		f.log.Debug("submit ignored", "touched", len(f.TouchedFields()))
		return false
	}
	reg := f.Registration()
	f.log.Debug("registration submitted", "email", reg.Email, "username", reg.Username)
	if f.submit != nil {
		f.submit(reg)
	}
	return true
}
