package validation

import "regexp"

const maxNameLength = 100

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError reports a single invalid field. Handlers fail fast on the first
// one and surface it as a 400 response.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Reason
}

// NameForRegistration validates the name supplied at registration: required,
// at most 100 characters.
func NameForRegistration(name string) error {
	if name == "" {
		return &FieldError{Field: "name", Reason: "Name is required and must be a string with a maximum length of 100 characters."}
	}
	if len(name) > maxNameLength {
		return &FieldError{Field: "name", Reason: "Name is required and must be a string with a maximum length of 100 characters."}
	}
	return nil
}

// NameForResource validates the name supplied on user create/update:
// non-empty, at most 100 characters. Kept separate from the registration rule
// because the two call sites never shared a minimum bound.
func NameForResource(name string) error {
	if name == "" {
		return &FieldError{Field: "name", Reason: "name must not be empty"}
	}
	if len(name) > maxNameLength {
		return &FieldError{Field: "name", Reason: "name must be at most 100 characters"}
	}
	return nil
}

// Email validates presence and shape of an email address. The pattern check
// applies uniformly on every server path.
func Email(email string) error {
	if email == "" {
		return &FieldError{Field: "email", Reason: "A valid email is required."}
	}
	if !emailPattern.MatchString(email) {
		return &FieldError{Field: "email", Reason: "A valid email is required."}
	}
	return nil
}

// UserForm validates a full user payload in one pass and returns every
// failing field, mirroring the form-side validator: name between 3 and 100
// characters, email matching the pattern. An empty map means the payload is
// valid.
func UserForm(name, email string) map[string]string {
	errs := make(map[string]string)
	if len(name) < 3 || len(name) > maxNameLength {
		errs["name"] = "Name must be between 3 and 100 characters."
	}
	if !emailPattern.MatchString(email) {
		errs["email"] = "Please enter a valid email address."
	}
	return errs
}
