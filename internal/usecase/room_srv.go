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

type RoomService interface {
	AddRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	RemoveRoom(ctx context.Context, roomNumber string) error
	GetRoom(ctx context.Context, roomNumber string) (*response.RoomResponse, error)
	ListRooms(ctx context.Context) ([]*response.RoomResponse, error)
	AvailableRooms(ctx context.Context, req *request.DateRangeRequest) ([]*response.RoomResponse, error)
	RoomAvailability(ctx context.Context, roomNumber string, req *request.DateRangeRequest) (*response.AvailabilityResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) AddRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	room := &entity.Room{
		RoomNumber:    req.RoomNumber,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		IsOccupied:    false,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("Room added",
		zap.String("room_number", room.RoomNumber),
		zap.String("room_type", room.RoomType),
		zap.Float64("price_per_night", room.PricePerNight),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) RemoveRoom(ctx context.Context, roomNumber string) error {
	if err := s.repo.Room.Delete(ctx, roomNumber); err != nil {
		return err
	}

	s.log.Info("Room removed", zap.String("room_number", roomNumber))
	return nil
}

func (s *roomService) GetRoom(ctx context.Context, roomNumber string) (*response.RoomResponse, error) {
	room, err := s.repo.Room.FindByNumber(ctx, roomNumber)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, hotelerr.NotFoundf("room %s not found", roomNumber)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) ListRooms(ctx context.Context) ([]*response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*response.RoomResponse, len(rooms))
	for i, room := range rooms {
		resp := response.RoomToResponse(room)
		responses[i] = &resp
	}

	return responses, nil
}

// AvailableRooms returns the rooms with no active booking overlapping the
// requested range.
func (s *roomService) AvailableRooms(ctx context.Context, req *request.DateRangeRequest) ([]*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Available rooms validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, hotelerr.InvalidDatesf("invalid check_in_date %s", req.CheckInDate)
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, hotelerr.InvalidDatesf("invalid check_out_date %s", req.CheckOutDate)
	}
	if !checkOut.After(checkIn) {
		return nil, hotelerr.InvalidDatesf("check_out_date must be after check_in_date")
	}

	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var available []*response.RoomResponse
	for _, room := range rooms {
		conflict, err := roomHasConflict(ctx, s.repo.Booking, room.RoomNumber, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if conflict {
			continue
		}
		resp := response.RoomToResponse(room)
		available = append(available, &resp)
	}

	s.log.Info("Available rooms retrieved",
		zap.String("check_in", req.CheckInDate),
		zap.String("check_out", req.CheckOutDate),
		zap.Int("count", len(available)),
	)

	return available, nil
}

// RoomAvailability answers whether one room is free for the requested range.
func (s *roomService) RoomAvailability(ctx context.Context, roomNumber string, req *request.DateRangeRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Room availability validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, hotelerr.InvalidDatesf("invalid check_in_date %s", req.CheckInDate)
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, hotelerr.InvalidDatesf("invalid check_out_date %s", req.CheckOutDate)
	}
	if !checkOut.After(checkIn) {
		return nil, hotelerr.InvalidDatesf("check_out_date must be after check_in_date")
	}

	room, err := s.repo.Room.FindByNumber(ctx, roomNumber)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, hotelerr.NotFoundf("room %s not found", roomNumber)
	}

	conflict, err := roomHasConflict(ctx, s.repo.Booking, roomNumber, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return &response.AvailabilityResponse{
		RoomNumber:   roomNumber,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Available:    !conflict,
	}, nil
}
