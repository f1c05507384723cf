package usecase

import (
	"context"
	"errors"

	"cleanpro-web/internal/domain"
	"cleanpro-web/pkg/apperror"
	"cleanpro-web/pkg/audit"
	"cleanpro-web/pkg/validation"
)

type contactUsecase struct {
	forms   *FormStore
	choices []domain.ServiceChoice
}

// NewContactUsecase serves contact forms from store; choices back the service select.
func NewContactUsecase(store *FormStore, choices []domain.ServiceChoice) domain.ContactUsecase {
	return &contactUsecase{
		forms:   store,
		choices: choices,
	}
}

// Submit maps form errors onto AppErrors: field errors 422, in-flight 409, relay failure 502.
func (uc *contactUsecase) Submit(ctx context.Context, formID string, req domain.ContactRequest) (domain.SubmissionOutcome, error) {
	if formID == "" {
		return domain.SubmissionOutcome{Status: domain.StatusIdle}, apperror.BadRequest("Missing form session")
	}

	form, release := uc.forms.Acquire(formID)
	defer release()
	out, err := form.Submit(ctx, req)
	if err == nil {
		event := audit.EventContactDelivered
		if form.Simulated() {
			event = audit.EventContactSimulated
		}
		audit.Default().LogContact(ctx, event, formID, req.Email, req.Service)
		return out, nil
	}

	var fieldErrs validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return out, apperror.Unprocessable("Please correct the highlighted fields", fieldErrs)
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return out, apperror.Conflict("Your message is already being sent")
	case errors.Is(err, domain.ErrDeliveryFailed):
		audit.Default().LogContact(ctx, audit.EventContactFailed, formID, req.Email, req.Service)
		return out, apperror.BadGateway(domain.DeliveryFailureReason, err)
	default:
		return out, err
	}
}

func (uc *contactUsecase) Reset(ctx context.Context, formID string) domain.SubmissionOutcome {
	f, ok := uc.forms.Lookup(formID)
	if !ok {
		return domain.SubmissionOutcome{Status: domain.StatusIdle}
	}
	return f.Reset()
}

func (uc *contactUsecase) State(ctx context.Context, formID string) domain.ContactState {
	f, ok := uc.forms.Lookup(formID)
	if !ok {
		return domain.ContactState{Outcome: domain.SubmissionOutcome{Status: domain.StatusIdle}}
	}
	return domain.ContactState{Outcome: f.Outcome(), Values: f.Values()}
}

func (uc *contactUsecase) ServiceChoices() []domain.ServiceChoice {
	out := make([]domain.ServiceChoice, len(uc.choices))
	copy(out, uc.choices)
	return out
}
