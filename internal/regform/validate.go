package regform

import (
	"regexp"
	"unicode/utf8"
)

// Validation error codes surfaced per field.
const (
	ErrCodeRequired            = "required"
	ErrCodeMinLength           = "minLength"
	ErrCodeMaxLength           = "maxLength"
	ErrCodePattern             = "pattern"
	ErrCodeEmail               = "email"
	ErrCodePasswordWeak        = "passwordWeak"
	ErrCodeRequiredTrue        = "requiredTrue"
	ErrCodeUsernameTaken       = "usernameTaken"
	ErrCodeUsernameCheckFailed = "usernameCheckFailed"
)

const (
	nameMinLength     = 3
	usernameMinLength = 3
	usernameMaxLength = 24
	passwordMinLength = 8
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	uppercaseRune   = regexp.MustCompile(`[A-Z]`)
	lowercaseRune   = regexp.MustCompile(`[a-z]`)
	// Special means neither a word character nor whitespace, so
	// underscores do not count.
	specialRune = regexp.MustCompile(`[^\w\s]`)
)

// validate recomputes a field's error codes. Caller holds f.mu.
func (f *Form) validate(field Field) {
	state := f.fields[field]
	var errs []string

	switch field {
	case FieldName:
		if state.text == "" {
			errs = append(errs, ErrCodeRequired)
		} else if utf8.RuneCountInString(state.text) < nameMinLength {
			errs = append(errs, ErrCodeMinLength)
		}

	case FieldUsername:
		switch {
		case state.text == "":
			errs = append(errs, ErrCodeRequired)
		case utf8.RuneCountInString(state.text) < usernameMinLength:
			errs = append(errs, ErrCodeMinLength)
		case utf8.RuneCountInString(state.text) > usernameMaxLength:
			errs = append(errs, ErrCodeMaxLength)
		}
		if state.text != "" && !usernamePattern.MatchString(state.text) {
			errs = append(errs, ErrCodePattern)
		}
		switch f.availability {
		case AvailabilityUnavailable:
			errs = append(errs, ErrCodeUsernameTaken)
		case AvailabilityError:
			errs = append(errs, ErrCodeUsernameCheckFailed)
		}

	case FieldEmail:
		if state.text == "" {
			errs = append(errs, ErrCodeRequired)
		} else if !emailPattern.MatchString(state.text) {
			errs = append(errs, ErrCodeEmail)
		}

	case FieldPassword:
		if state.text == "" {
			errs = append(errs, ErrCodeRequired)
		} else {
			if utf8.RuneCountInString(state.text) < passwordMinLength {
				errs = append(errs, ErrCodeMinLength)
			}
			if !passwordStrong(state.text) {
				errs = append(errs, ErrCodePasswordWeak)
			}
		}

	case FieldConfirmPassword:
		if state.text == "" {
			errs = append(errs, ErrCodeRequired)
		}

	case FieldAcceptTerms:
		if !state.checked {
			errs = append(errs, ErrCodeRequiredTrue)
		}
	}

	state.errs = errs
}

// passwordStrong requires at least one uppercase letter, one lowercase
// letter, and one special character.
func passwordStrong(value string) bool {
	return uppercaseRune.MatchString(value) &&
		lowercaseRune.MatchString(value) &&
		specialRune.MatchString(value)
}
