package service

import (
	"context"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/core/cache"
	"github.com/dancoopper/COMP3074-MobileApp/core/config"
	"github.com/dancoopper/COMP3074-MobileApp/core/constants"
	"github.com/dancoopper/COMP3074-MobileApp/core/errors"
	"github.com/dancoopper/COMP3074-MobileApp/core/logger"
	"github.com/dancoopper/COMP3074-MobileApp/modules/availability/dto"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/entity"
	authrepo "github.com/dancoopper/COMP3074-MobileApp/modules/auth/repository"
	eventrepo "github.com/dancoopper/COMP3074-MobileApp/modules/event/repository"
	eventsvc "github.com/dancoopper/COMP3074-MobileApp/modules/event/service"

	"github.com/google/uuid"
)

// Visible slot window of the availability grid.
const (
	DefaultStartHour = 8
	DefaultEndHour   = 20
)

type AvailabilityService interface {
	ParseText(text string) (*dto.ParsedAvailability, *errors.AppError)
	DaySlots(ctx context.Context, userID uuid.UUID, date time.Time) (*dto.DaySlotsResponse, *errors.AppError)
	BookingSlots(ctx context.Context, userID uuid.UUID, text string) (*dto.DaySlotsResponse, *errors.AppError)
	CreateShare(ctx context.Context, userID uuid.UUID, req *dto.ShareRequest) (*dto.ShareResponse, *errors.AppError)
	GetShare(ctx context.Context, slug string) (string, *errors.AppError)
}

type availabilityService struct {
	eventRepo eventrepo.EventRepositoryInterface
	authRepo  authrepo.AuthRepositoryInterface
	cache     cache.Cache
}

func NewAvailabilityService(eventRepo eventrepo.EventRepositoryInterface, authRepo authrepo.AuthRepositoryInterface, c cache.Cache) AvailabilityService {
	return &availabilityService{eventRepo: eventRepo, authRepo: authRepo, cache: c}
}

// ParseText wraps the parser's explicit failure into the error taxonomy:
// parse failures are invalid input, never internal errors.
func (s *availabilityService) ParseText(text string) (*dto.ParsedAvailability, *errors.AppError) {
	parsed, err := ParseAvailability(text)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "could not parse availability text: "+err.Error(), err)
	}
	return parsed, nil
}

// DaySlots classifies every hour of the visible window for the given date.
func (s *availabilityService) DaySlots(ctx context.Context, userID uuid.UUID, date time.Time) (*dto.DaySlotsResponse, *errors.AppError) {
	dayEvents, appErr := s.dayEvents(ctx, userID, date)
	if appErr != nil {
		return nil, appErr
	}

	slots := make([]dto.SlotResponse, 0, DefaultEndHour-DefaultStartHour+1)
	for hour := DefaultStartHour; hour <= DefaultEndHour; hour++ {
		status := StatusForHour(date, hour, dayEvents)
		slots = append(slots, dto.SlotResponse{
			Hour:              hour,
			Busy:              status.Busy,
			ConflictingTitles: conflictTitles(status),
			ImportedAvailable: true,
			Bookable:          !status.Busy,
		})
	}

	return &dto.DaySlotsResponse{Date: date.Format("2006-01-02"), Slots: slots}, nil
}

// BookingSlots parses imported third-party availability and cross-checks it
// against the local calendar for the parsed date: a slot is bookable only
// when locally free and inside an imported range.
func (s *availabilityService) BookingSlots(ctx context.Context, userID uuid.UUID, text string) (*dto.DaySlotsResponse, *errors.AppError) {
	parsed, appErr := s.ParseText(text)
	if appErr != nil {
		return nil, appErr
	}

	dayEvents, appErr := s.dayEvents(ctx, userID, parsed.Date)
	if appErr != nil {
		return nil, appErr
	}

	slots := make([]dto.SlotResponse, 0, DefaultEndHour-DefaultStartHour+1)
	for hour := DefaultStartHour; hour <= DefaultEndHour; hour++ {
		status := StatusForHour(parsed.Date, hour, dayEvents)
		imported := InImportedRanges(hour, parsed.TimeSlots)
		slots = append(slots, dto.SlotResponse{
			Hour:              hour,
			Busy:              status.Busy,
			ConflictingTitles: conflictTitles(status),
			ImportedAvailable: imported,
			Bookable:          Bookable(status, imported),
		})
	}

	return &dto.DaySlotsResponse{Date: parsed.Date.Format("2006-01-02"), Slots: slots}, nil
}

// CreateShare renders the selected slots to share text and stores the
// snapshot under a public slug with a bounded TTL. The slug is derived
// from the owner's display name so shared links stay human-readable.
func (s *availabilityService) CreateShare(ctx context.Context, userID uuid.UUID, req *dto.ShareRequest) (*dto.ShareResponse, *errors.AppError) {
	if len(req.Hours) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "at least one hour slot must be selected")
	}
	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, errors.New(errors.ErrInvalidInput, "date must be in YYYY-MM-DD format")
	}

	user, err := s.authRepo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("AvailabilityService:CreateShare:GetUserByID", "user_id", userID.String(), "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to resolve user", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrNotFound, "user not found")
	}

	text := FormatShareText(date, req.Hours, req.Booking)
	shareSlug := ShareSlug(user.DisplayName)

	if err := s.cache.SetShareSnapshot(ctx, shareSlug, text, constants.ShareSnapshotTTL); err != nil {
		logger.Error("AvailabilityService:CreateShare:SetShareSnapshot", "user_id", userID.String(), "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to store shared availability", err)
	}

	logger.Info("AvailabilityService:CreateShare", "user_id", userID.String(), "slug", shareSlug)
	return &dto.ShareResponse{
		Slug: shareSlug,
		URL:  config.GetSafe().Server.BaseURL + "/s/" + shareSlug,
		Text: text,
	}, nil
}

func (s *availabilityService) GetShare(ctx context.Context, slug string) (string, *errors.AppError) {
	text, found, err := s.cache.GetShareSnapshot(ctx, slug)
	if err != nil {
		logger.Error("AvailabilityService:GetShare", "slug", slug, "error", err)
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to load shared availability", err)
	}
	if !found {
		return "", errors.New(errors.ErrNotFound, "shared availability not found or expired")
	}
	return text, nil
}

func (s *availabilityService) dayEvents(ctx context.Context, userID uuid.UUID, date time.Time) ([]entity.Event, *errors.AppError) {
	events, err := s.eventRepo.GetAllEvents(ctx, userID)
	if err != nil {
		logger.Error("AvailabilityService:dayEvents", "date", date.Format("2006-01-02"), "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load events", err)
	}
	return eventsvc.EventsOnDate(events, date), nil
}

func conflictTitles(status SlotStatus) []string {
	if !status.Busy {
		return nil
	}
	titles := make([]string, 0, len(status.Conflicts))
	for _, ev := range status.Conflicts {
		titles = append(titles, ev.Title)
	}
	return titles
}
