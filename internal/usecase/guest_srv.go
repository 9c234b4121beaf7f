package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/hotelerr"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type GuestService interface {
	RegisterGuest(ctx context.Context, req *request.RegisterGuestRequest) (*response.GuestResponse, error)
	GetGuest(ctx context.Context, guestID string) (*response.GuestResponse, error)
	ListGuests(ctx context.Context) ([]*response.GuestResponse, error)
}

type guestService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGuestService(repo *repository.Repository, log *zap.Logger) GuestService {
	return &guestService{
		repo: repo,
		log:  log.With(zap.String("service", "guest")),
	}
}

func (s *guestService) RegisterGuest(ctx context.Context, req *request.RegisterGuestRequest) (*response.GuestResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register guest validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	guest := &entity.Guest{
		GuestID: req.GuestID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
	}

	if err := s.repo.Guest.Create(ctx, guest); err != nil {
		return nil, err
	}

	s.log.Info("Guest registered",
		zap.String("guest_id", guest.GuestID),
		zap.String("name", guest.Name),
	)

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) GetGuest(ctx context.Context, guestID string) (*response.GuestResponse, error) {
	guest, err := s.repo.Guest.FindByID(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, hotelerr.NotFoundf("guest %s not found", guestID)
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) ListGuests(ctx context.Context) ([]*response.GuestResponse, error) {
	guests, err := s.repo.Guest.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*response.GuestResponse, len(guests))
	for i, guest := range guests {
		resp := response.GuestToResponse(guest)
		responses[i] = &resp
	}

	return responses, nil
}
