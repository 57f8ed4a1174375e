package controller

import (
	"strconv"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/core/constants"
	"github.com/dancoopper/COMP3074-MobileApp/core/controller"
	"github.com/dancoopper/COMP3074-MobileApp/core/errors"
	"github.com/dancoopper/COMP3074-MobileApp/core/utils"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/dto"
	"github.com/dancoopper/COMP3074-MobileApp/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EventController handles calendar event HTTP requests
type EventController struct {
	controller.BaseController
	EventService service.EventService
}

func NewEventController(svc service.EventService) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// getUserIDFromContext extracts user ID from JWT context
func (c *EventController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

// CreateEvent handles POST /events
func (c *EventController) CreateEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	created, appErr := c.EventService.CreateEvent(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.NewEventResponse(created), "Event created successfully")
}

// GetEvents handles GET /events, returning the full collection in store order.
func (c *EventController) GetEvents(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	events, appErr := c.EventService.ListEvents(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.NewEventResponses(events), "Events retrieved successfully")
}

// GetDayEvents handles GET /events/day?date=YYYY-MM-DD
func (c *EventController) GetDayEvents(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	date, appErr := parseDateParam(ctx.QueryParam("date"))
	if appErr != nil {
		return c.BadRequest(appErr.Code, appErr.Message)
	}

	events, appErr := c.EventService.DayEvents(ctx.Request().Context(), userID, date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.NewEventResponses(events), "Events retrieved successfully")
}

// GetTimeline handles GET /events/timeline?date=YYYY-MM-DD&height=800
func (c *EventController) GetTimeline(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	date, appErr := parseDateParam(ctx.QueryParam("date"))
	if appErr != nil {
		return c.BadRequest(appErr.Code, appErr.Message)
	}

	height, err := strconv.ParseFloat(ctx.QueryParam("height"), 64)
	if err != nil || height <= 0 {
		return c.BadRequest(errors.ErrInvalidInput, "height must be a positive number")
	}

	timeline, appErr := c.EventService.Timeline(ctx.Request().Context(), userID, date, height, time.Now())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, timeline, "Timeline computed successfully")
}

// UpdateEvent handles PUT /events/:id
func (c *EventController) UpdateEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	updated, appErr := c.EventService.UpdateEvent(ctx.Request().Context(), userID, id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.NewEventResponse(updated), "Event updated successfully")
}

// DeleteEvent handles DELETE /events/:id
func (c *EventController) DeleteEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.EventService.DeleteEvent(ctx.Request().Context(), userID, id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}

func parseDateParam(raw string) (time.Time, *errors.AppError) {
	if raw == "" {
		return time.Time{}, errors.New(errors.ErrInvalidInput, "date query parameter is required")
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, errors.New(errors.ErrInvalidInput, "date must be in YYYY-MM-DD format")
	}
	return date, nil
}
