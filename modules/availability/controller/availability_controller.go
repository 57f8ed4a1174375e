package controller

import (
	"net/http"
	"time"

	"github.com/dancoopper/COMP3074-MobileApp/core/constants"
	"github.com/dancoopper/COMP3074-MobileApp/core/controller"
	"github.com/dancoopper/COMP3074-MobileApp/core/errors"
	"github.com/dancoopper/COMP3074-MobileApp/core/utils"
	"github.com/dancoopper/COMP3074-MobileApp/modules/availability/dto"
	"github.com/dancoopper/COMP3074-MobileApp/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// AvailabilityController handles availability HTTP requests
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityService
}

func NewAvailabilityController(svc service.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

func (c *AvailabilityController) getClaimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}
	return claims, nil
}

// ParseText handles POST /availability/parse
func (c *AvailabilityController) ParseText(ctx echo.Context) error {
	var req dto.ParseRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	parsed, appErr := c.AvailabilityService.ParseText(req.Text)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, parsed, "Availability parsed successfully")
}

// GetDaySlots handles GET /availability/slots?date=YYYY-MM-DD
func (c *AvailabilityController) GetDaySlots(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	date, appErr := parseDateParam(ctx.QueryParam("date"))
	if appErr != nil {
		return c.BadRequest(appErr.Code, appErr.Message)
	}

	slots, appErr := c.AvailabilityService.DaySlots(ctx.Request().Context(), claims.UserID, date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, slots, "Slots computed successfully")
}

// CheckBooking handles POST /availability/booking
func (c *AvailabilityController) CheckBooking(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.BookingCheckRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	slots, appErr := c.AvailabilityService.BookingSlots(ctx.Request().Context(), claims.UserID, req.Text)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, slots, "Booking slots computed successfully")
}

// CreateShare handles POST /availability/share
func (c *AvailabilityController) CreateShare(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.ShareRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	share, appErr := c.AvailabilityService.CreateShare(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, share, "Availability shared successfully")
}

// PublicShare handles GET /s/:slug, serving the plain text snapshot without auth.
func (c *AvailabilityController) PublicShare(ctx echo.Context) error {
	slug := ctx.Param("slug")

	text, appErr := c.AvailabilityService.GetShare(ctx.Request().Context(), slug)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.String(http.StatusOK, text)
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
