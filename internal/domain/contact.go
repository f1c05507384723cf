package domain

import (
	"context"
	"errors"
)

// DeliveryFailureReason is the only failure text a visitor ever sees.
const DeliveryFailureReason = "Failed to send message. Please try again or contact us directly."

var (
	// ErrSubmissionInFlight is returned when a form already has a submission in progress.
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	// ErrDeliveryFailed hides the relay error from callers; the cause is logged.
	ErrDeliveryFailed = errors.New(DeliveryFailureReason)
)

// GeneralInquiry is the service choice that is always accepted.
const GeneralInquiry = "general"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"omitempty,min=10,max=20"`
	Service string `json:"service" form:"service" validate:"required,contact_service"`
	Message string `json:"message" form:"message" validate:"required,min=10,max=2000"`
}

// SubmissionStatus is the lifecycle state of one contact form instance.
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSuccess    SubmissionStatus = "success"
	StatusError      SubmissionStatus = "error"
)

// SubmissionOutcome is the observable state of a form. Reason is only set for StatusError.
type SubmissionOutcome struct {
	Status SubmissionStatus `json:"status"`
	Reason string           `json:"reason,omitempty"`
}

// ServiceChoice is one option of the contact form service select.
type ServiceChoice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ContactState is what a client needs to redraw its form.
type ContactState struct {
	Outcome SubmissionOutcome `json:"outcome"`
	Values  ContactRequest    `json:"values"`
}

// DeliveryClient is the external email relay. Routing identifiers are opaque to the caller.
type DeliveryClient interface {
	Send(ctx context.Context, serviceID, templateID string, params map[string]string, publicKey string) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Submit validates and delivers a message for the given form instance.
	Submit(ctx context.Context, formID string, req ContactRequest) (SubmissionOutcome, error)
	// Reset returns a finished form to idle.
	Reset(ctx context.Context, formID string) SubmissionOutcome
	// State returns the current outcome and retained field values.
	State(ctx context.Context, formID string) ContactState
	// ServiceChoices lists the values accepted by the service field.
	ServiceChoices() []ServiceChoice
}
