package usecase

import (
	"context"

	"github.com/google/uuid"

	"chief-of-staff-api/internal/notification"
	repo "chief-of-staff-api/internal/notification/repository"
	"chief-of-staff-api/pkg/log"
)

// implUseCase is the private implementation of notification.UseCase.
type implUseCase struct {
	repo repo.Repository
	l    log.Logger
}

// New creates a new notification UseCase implementation.
func New(r repo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: r, l: l}
}

// Subscribe registers a device for notifications. Registration is keyed
// by endpoint, so a device re-subscribing after key rotation updates in
// place rather than piling up rows.
func (uc *implUseCase) Subscribe(ctx context.Context, input notification.SubscribeInput) (notification.SubscribeOutput, error) {
	if input.Endpoint == "" || input.P256dh == "" || input.Auth == "" {
		return notification.SubscribeOutput{}, notification.ErrInvalidSubscription
	}

	deviceName := input.DeviceName
	if deviceName == "" {
		deviceName = "Unknown Device"
	}

	sub, err := uc.repo.UpsertSubscription(ctx, notification.Subscription{
		ID:         uuid.NewString(),
		Endpoint:   input.Endpoint,
		P256dh:     input.P256dh,
		Auth:       input.Auth,
		DeviceName: deviceName,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Subscribe UpsertSubscription: %v", err)
		return notification.SubscribeOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Subscribe: device %q registered (%s)", sub.DeviceName, sub.ID)
	return notification.SubscribeOutput{Subscription: sub}, nil
}
