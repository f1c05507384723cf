package usecase

import (
	"context"
	"sync"
	"time"

	"cleanpro-web/internal/domain"
	"cleanpro-web/pkg/logger"
	"cleanpro-web/pkg/validation"
)

// TimestampLayout renders the submission time the way the inbox template expects.
const TimestampLayout = "Monday, January 2, 2006 at 03:04 PM MST"

// PhoneNotProvided replaces an empty phone in the delivered payload.
const PhoneNotProvided = "Not provided"

// FormConfig carries the relay routing and timing shared by every form instance.
type FormConfig struct {
	ServiceID      string
	TemplateID     string
	PublicKey      string
	SimulatedDelay time.Duration
	Location       *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

// Simulated reports whether delivery is skipped because routing is incomplete.
func (c FormConfig) Simulated() bool {
	return c.ServiceID == "" || c.TemplateID == "" || c.PublicKey == ""
}

func (c FormConfig) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// ContactForm is a single visitor's contact form: idle, submitting, success or error.
type ContactForm struct {
	mu        sync.Mutex
	cfg       FormConfig
	delivery  domain.DeliveryClient
	validator *validation.Validator

	outcome  domain.SubmissionOutcome
	values   domain.ContactRequest
	lastSeen time.Time
	holds    int
}

func NewContactForm(cfg FormConfig, delivery domain.DeliveryClient, v *validation.Validator) *ContactForm {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &ContactForm{
		cfg:       cfg,
		delivery:  delivery,
		validator: v,
		outcome:   domain.SubmissionOutcome{Status: domain.StatusIdle},
		lastSeen:  cfg.now(),
	}
}

// Submit validates req and, if valid, delivers it.
//
// A second Submit while one is running returns domain.ErrSubmissionInFlight without
// touching state. Field errors are returned as validation.FieldErrors and leave the
// form idle. A relay failure yields the error outcome and domain.ErrDeliveryFailed.
func (f *ContactForm) Submit(ctx context.Context, req domain.ContactRequest) (domain.SubmissionOutcome, error) {
	f.mu.Lock()
	f.lastSeen = f.cfg.now()
	if f.outcome.Status == domain.StatusSubmitting {
		out := f.outcome
		f.mu.Unlock()
		return out, domain.ErrSubmissionInFlight
	}
	f.values = req
	if errs := f.validator.Validate(req); errs != nil {
		f.outcome = domain.SubmissionOutcome{Status: domain.StatusIdle}
		out := f.outcome
		f.mu.Unlock()
		return out, errs
	}
	f.outcome = domain.SubmissionOutcome{Status: domain.StatusSubmitting}
	f.mu.Unlock()

	if f.Simulated() {
		return f.simulate(req)
	}

	// Once handed to the relay the send runs to completion even if the caller goes away.
	err := f.delivery.Send(context.WithoutCancel(ctx), f.cfg.ServiceID, f.cfg.TemplateID, f.payload(req), f.cfg.PublicKey)
	if err != nil {
		logger.Log.Error("contact delivery failed", "error", err, "service", req.Service)
		return f.finish(domain.SubmissionOutcome{Status: domain.StatusError, Reason: domain.DeliveryFailureReason}), domain.ErrDeliveryFailed
	}
	return f.finish(domain.SubmissionOutcome{Status: domain.StatusSuccess}), nil
}

// simulate stands in for the relay when routing is incomplete. Like a real send it
// runs to completion; the caller's context is not consulted.
func (f *ContactForm) simulate(req domain.ContactRequest) (domain.SubmissionOutcome, error) {
	logger.Log.Info("EmailJS not configured, simulating delivery", "service", req.Service)
	timer := time.NewTimer(f.cfg.SimulatedDelay)
	defer timer.Stop()
	<-timer.C
	return f.finish(domain.SubmissionOutcome{Status: domain.StatusSuccess}), nil
}

func (f *ContactForm) finish(out domain.SubmissionOutcome) domain.SubmissionOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSeen = f.cfg.now()
	f.outcome = out
	if out.Status == domain.StatusSuccess {
		f.values = domain.ContactRequest{}
	}
	return out
}

func (f *ContactForm) payload(req domain.ContactRequest) map[string]string {
	phone := req.Phone
	if phone == "" {
		phone = PhoneNotProvided
	}
	return map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   phone,
		"service": req.Service,
		"message": req.Message,
		"time":    f.cfg.now().In(f.cfg.Location).Format(TimestampLayout),
	}
}

// Reset returns a finished form to idle. Idle and submitting forms are left alone.
func (f *ContactForm) Reset() domain.SubmissionOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSeen = f.cfg.now()
	if f.outcome.Status == domain.StatusSuccess || f.outcome.Status == domain.StatusError {
		f.outcome = domain.SubmissionOutcome{Status: domain.StatusIdle}
	}
	return f.outcome
}

// Simulated reports whether this form skips the relay.
func (f *ContactForm) Simulated() bool {
	return f.cfg.Simulated() || f.delivery == nil
}

func (f *ContactForm) Outcome() domain.SubmissionOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outcome
}

// Values are the fields as last submitted; cleared after a successful delivery.
func (f *ContactForm) Values() domain.ContactRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// touch marks the form as seen now. pin > 0 holds it, pin < 0 releases a hold.
func (f *ContactForm) touch(pin int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastSeen = f.cfg.now()
	f.holds += pin
}

// idleSince reports when the form was last touched, and false while a submission
// runs or someone holds the form.
func (f *ContactForm) idleSince() (time.Time, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastSeen, f.outcome.Status != domain.StatusSubmitting && f.holds == 0
}
