package regform

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/carson-networks/banking-server/internal/auth"
	"github.com/carson-networks/banking-server/internal/ledger"
)

// Field names the controls of the registration form in their dependency
// order.
type Field string

const (
	FieldName            Field = "name"
	FieldUsername        Field = "username"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldAcceptTerms     Field = "acceptTerms"
)

// fieldOrder is the left-to-right dependency chain: a field is enabled
// only while its predecessor is valid.
var fieldOrder = []Field{
	FieldName,
	FieldUsername,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
	FieldAcceptTerms,
}

// AvailabilityState tracks the debounced username check.
type AvailabilityState string

const (
	AvailabilityIdle        AvailabilityState = "idle"
	AvailabilityChecking    AvailabilityState = "checking"
	AvailabilityAvailable   AvailabilityState = "available"
	AvailabilityUnavailable AvailabilityState = "unavailable"
	AvailabilityError       AvailabilityState = "error"
)

const defaultDebounce = 300 * time.Millisecond

var (
	// ErrFormInvalid is returned by Submit when any field or the
	// cross-field password rule fails. All fields are marked touched so
	// validation messages render.
	ErrFormInvalid = errors.New("registration form is not valid")

	// ErrSubmissionInFlight is returned while an earlier Submit has not
	// completed.
	ErrSubmissionInFlight = errors.New("registration already in progress")

	// ErrFieldDisabled is returned when a value is written to a field
	// whose predecessor is not yet valid.
	ErrFieldDisabled = errors.New("field is disabled")
)

// UsernameChecker is the availability collaborator.
type UsernameChecker interface {
	CheckUsernameAvailability(ctx context.Context, username string) (bool, error)
}

// Registrar is the registration collaborator.
type Registrar interface {
	Register(ctx context.Context, payload auth.RegistrationPayload) (*ledger.UserProfile, error)
}

type fieldState struct {
	text    string
	checked bool
	enabled bool
	touched bool
	errs    []string
}

// Form is the progressive registration validator: fields enable one at
// a time left to right, a field going invalid resets and disables the
// whole downstream chain, and the username runs a debounced, cancellable
// availability check where only the newest request may land.
type Form struct {
	mu     sync.Mutex
	fields map[Field]*fieldState

	availability AvailabilityState
	generation   uint64
	pendingTimer *time.Timer
	debounce     time.Duration

	checker   UsernameChecker
	registrar Registrar

	submitting       bool
	passwordMismatch bool
	successMessage   string
	errorMessage     string
}

// Option configures a Form.
type Option func(*Form)

// WithDebounce overrides the availability check debounce window.
func WithDebounce(d time.Duration) Option {
	return func(f *Form) { f.debounce = d }
}

// New creates a form with only the name field enabled.
func New(checker UsernameChecker, registrar Registrar, opts ...Option) *Form {
	f := &Form{
		fields:       make(map[Field]*fieldState, len(fieldOrder)),
		availability: AvailabilityIdle,
		debounce:     defaultDebounce,
		checker:      checker,
		registrar:    registrar,
	}
	for _, opt := range opts {
		opt(f)
	}

	for _, field := range fieldOrder {
		f.fields[field] = &fieldState{}
	}
	f.fields[FieldName].enabled = true
	f.validate(FieldName)

	return f
}

// SetValue writes a text field. Writes to a disabled field are
// rejected; the value is otherwise accepted as-is and revalidated, and
// the downstream chain is refreshed.
func (f *Form) SetValue(field Field, value string) error {
	if field == FieldAcceptTerms {
		return errors.New("acceptTerms is a boolean field")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	state, ok := f.fields[field]
	if !ok {
		return errors.New("unknown field " + string(field))
	}
	if !state.enabled {
		return ErrFieldDisabled
	}

	state.text = value
	state.touched = true
	f.successMessage = ""

	if field == FieldUsername {
		// Last request wins: any pending or in-flight check is
		// superseded before the new debounce window opens.
		f.generation++
		f.stopPendingCheck()
		f.availability = AvailabilityIdle
	}

	f.validate(field)

	if field == FieldUsername {
		candidate := strings.TrimSpace(value)
		if candidate != "" && len(state.errs) == 0 {
			f.scheduleCheck(f.generation, candidate)
		}
	}

	if field == FieldPassword && f.fields[FieldConfirmPassword].enabled {
		f.validate(FieldConfirmPassword)
	}

	f.refreshChain()
	return nil
}

// SetAcceptTerms writes the terms checkbox.
func (f *Form) SetAcceptTerms(accepted bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.fields[FieldAcceptTerms]
	if !state.enabled {
		return ErrFieldDisabled
	}

	state.checked = accepted
	state.touched = true
	f.successMessage = ""

	f.validate(FieldAcceptTerms)
	f.refreshChain()
	return nil
}

// Submit validates the whole form and invokes the registrar. Invalid
// state touches every field and aborts without calling the registrar;
// only one submission may be in flight at a time.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if !f.valid() {
		for _, state := range f.fields {
			state.touched = true
		}
		f.mu.Unlock()
		return ErrFormInvalid
	}

	payload := auth.RegistrationPayload{
		Name:     strings.TrimSpace(f.fields[FieldName].text),
		Username: strings.TrimSpace(f.fields[FieldUsername].text),
		Email:    strings.ToLower(strings.TrimSpace(f.fields[FieldEmail].text)),
		Password: f.fields[FieldPassword].text,
	}
	f.submitting = true
	f.errorMessage = ""
	f.successMessage = ""
	f.mu.Unlock()

	_, err := f.registrar.Register(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.errorMessage = err.Error()
		return err
	}
	f.successMessage = "Account created successfully. You can now sign in."
	return nil
}

// Valid reports whole-form validity: every field valid and no
// cross-field error.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valid()
}

// Enabled reports whether a field currently accepts input.
func (f *Form) Enabled(field Field) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[field].enabled
}

// Touched reports whether a field has been interacted with.
func (f *Form) Touched(field Field) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[field].touched
}

// Value returns a text field's current value.
func (f *Form) Value(field Field) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[field].text
}

// TermsAccepted returns the terms checkbox value.
func (f *Form) TermsAccepted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[FieldAcceptTerms].checked
}

// Errors returns a field's current validation error codes.
func (f *Form) Errors(field Field) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fields[field].errs...)
}

// Availability returns the username check state.
func (f *Form) Availability() AvailabilityState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.availability
}

// ShowPasswordMismatch reports whether the cross-field mismatch error
// should render: the confirm field must be enabled and touched.
func (f *Form) ShowPasswordMismatch() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	confirm := f.fields[FieldConfirmPassword]
	return confirm.enabled && confirm.touched && f.passwordMismatch
}

// PasswordMismatch reports the raw cross-field error.
func (f *Form) PasswordMismatch() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.passwordMismatch
}

// SuccessMessage returns the message from the last successful submit.
// Cleared by any later edit.
func (f *Form) SuccessMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.successMessage
}

// ErrorMessage returns the message from the last failed submit.
func (f *Form) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorMessage
}

// StatusLabel renders the availability state as user-facing text. The
// unavailable and error states block submission with distinct wording.
func (f *Form) StatusLabel() string {
	switch f.Availability() {
	case AvailabilityChecking:
		return "Checking availability…"
	case AvailabilityAvailable:
		return "User ID is available"
	case AvailabilityUnavailable:
		return "User ID is not available"
	case AvailabilityError:
		return "We couldn’t verify availability. Try again soon."
	default:
		return ""
	}
}

// Close cancels any pending availability check.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generation++
	f.stopPendingCheck()
}

// -- internals, callers hold f.mu --

func (f *Form) valid() bool {
	for _, field := range fieldOrder {
		if !f.fieldValid(field) {
			return false
		}
	}
	return !f.passwordMismatch
}

// fieldValid treats a username with a pending or unresolved
// availability check as not yet valid, so the downstream chain stays
// closed until the check lands.
func (f *Form) fieldValid(field Field) bool {
	state := f.fields[field]
	if !state.enabled || len(state.errs) > 0 {
		return false
	}
	if field == FieldUsername && strings.TrimSpace(state.text) != "" && f.availability != AvailabilityAvailable {
		return false
	}
	return true
}

// refreshChain walks the full dependency chain: each field enables
// while its predecessor is valid and resets to its default, disabled
// state otherwise. Walking the whole chain makes the cascading reset an
// explicit invariant rather than a side effect of evaluation order.
func (f *Form) refreshChain() {
	for i := 1; i < len(fieldOrder); i++ {
		current := f.fields[fieldOrder[i]]
		if f.fieldValid(fieldOrder[i-1]) {
			if !current.enabled {
				current.enabled = true
				f.validate(fieldOrder[i])
			}
		} else {
			f.resetField(fieldOrder[i])
		}
	}
	f.evalMismatch()
}

func (f *Form) resetField(field Field) {
	state := f.fields[field]
	state.text = ""
	state.checked = false
	state.touched = false
	state.errs = nil
	state.enabled = false

	if field == FieldUsername {
		f.generation++
		f.stopPendingCheck()
		f.availability = AvailabilityIdle
	}
}

func (f *Form) evalMismatch() {
	password := f.fields[FieldPassword].text
	confirm := f.fields[FieldConfirmPassword].text
	f.passwordMismatch = password != "" && confirm != "" && password != confirm
}

func (f *Form) stopPendingCheck() {
	if f.pendingTimer != nil {
		f.pendingTimer.Stop()
		f.pendingTimer = nil
	}
}

// scheduleCheck opens the debounce window. The captured generation
// invalidates the result if the field changes before it lands.
func (f *Form) scheduleCheck(generation uint64, candidate string) {
	f.pendingTimer = time.AfterFunc(f.debounce, func() {
		f.runCheck(generation, candidate)
	})
}

func (f *Form) runCheck(generation uint64, candidate string) {
	f.mu.Lock()
	if generation != f.generation {
		f.mu.Unlock()
		return
	}
	f.availability = AvailabilityChecking
	f.mu.Unlock()

	available, err := f.checker.CheckUsernameAvailability(context.Background(), candidate)

	f.mu.Lock()
	defer f.mu.Unlock()
	if generation != f.generation {
		// A newer edit superseded this request; its result must not land.
		return
	}

	switch {
	case err != nil:
		f.availability = AvailabilityError
	case available:
		f.availability = AvailabilityAvailable
	default:
		f.availability = AvailabilityUnavailable
	}

	f.validate(FieldUsername)
	f.refreshChain()
}
