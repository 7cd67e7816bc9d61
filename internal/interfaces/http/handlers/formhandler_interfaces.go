package handlers

import (
	"context"

	appDto "obleafusion/internal/application/notification/dto"
)

// formService is the subset of notification.Service used by FormHandler.
type formService interface {
	SendBooking(ctx context.Context, req *appDto.BookingRequest) (bool, error)
	SendContact(ctx context.Context, req *appDto.ContactRequest) (bool, error)
}
