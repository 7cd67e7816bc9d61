package notification

import (
	"context"
	"fmt"

	"obleafusion/internal/application/notification/dto"
	"obleafusion/internal/shared/errors"
	"obleafusion/internal/shared/logger"
	"obleafusion/internal/shared/utils"
	"obleafusion/internal/shared/utils/logutil"
)

// maxLoggedFieldLen caps free-text request fields copied into log entries.
const maxLoggedFieldLen = 64

// Service validates form submissions, composes their notifications and
// dispatches them through the gateway.
type Service struct {
	composer *Composer
	gateway  *Gateway
	logger   logger.Interface
}

func NewService(composer *Composer, gateway *Gateway, logger logger.Interface) *Service {
	return &Service{
		composer: composer,
		gateway:  gateway,
		logger:   logger,
	}
}

// SendBooking returns whether the owner notification was delivered. A
// validation AppError is returned before anything is composed when name or
// email is missing.
func (s *Service) SendBooking(ctx context.Context, req *dto.BookingRequest) (bool, error) {
	if req == nil {
		return false, errors.NewValidationError("Validation failed", "request body is required")
	}
	req.Normalize()

	if err := utils.ValidateStruct(req); err != nil {
		s.logger.Warnw("rejected booking request", "error", err)
		return false, err
	}

	s.logger.Infow("processing booking request",
		"client", utils.MaskEmail(req.Email),
		"event_type", logutil.TruncateForLog(req.EventType, maxLoggedFieldLen),
		"language", req.Language,
	)

	msg, err := s.composer.ComposeBooking(req)
	if err != nil {
		s.logger.Errorw("failed to compose booking notification", "error", err)
		return false, fmt.Errorf("failed to compose booking notification: %w", err)
	}

	// A client disconnect must not abort a notification already accepted.
	return s.gateway.Send(context.WithoutCancel(ctx), msg), nil
}

// SendContact is the contact-form counterpart of SendBooking.
func (s *Service) SendContact(ctx context.Context, req *dto.ContactRequest) (bool, error) {
	if req == nil {
		return false, errors.NewValidationError("Validation failed", "request body is required")
	}
	req.Normalize()

	if err := utils.ValidateStruct(req); err != nil {
		s.logger.Warnw("rejected contact request", "error", err)
		return false, err
	}

	s.logger.Infow("processing contact request",
		"client", utils.MaskEmail(req.Email),
		"referral", logutil.TruncateForLog(req.ReferralSource, maxLoggedFieldLen),
		"language", req.Language,
	)

	msg, err := s.composer.ComposeContact(req)
	if err != nil {
		s.logger.Errorw("failed to compose contact notification", "error", err)
		return false, fmt.Errorf("failed to compose contact notification: %w", err)
	}

	return s.gateway.Send(context.WithoutCancel(ctx), msg), nil
}
