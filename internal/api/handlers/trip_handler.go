package handlers

import (
	"Packlist-API/domain"
	"Packlist-API/internal/api/presenters"
	"Packlist-API/pkg/trip"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TripHandler interface {
		CreateTrip(c *fiber.Ctx) error
		GetTrips(c *fiber.Ctx) error
		GetTripDetails(c *fiber.Ctx) error
		DeleteTrip(c *fiber.Ctx) error
		ToggleComplete(c *fiber.Ctx) error
		AddTripItem(c *fiber.Ctx) error
		UpdateTripItem(c *fiber.Ctx) error
		DeleteTripItem(c *fiber.Ctx) error
		PromoteTripItem(c *fiber.Ctx) error
		GetProgress(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
	}

	tripHandler struct {
		tripService trip.TripService
		validator   *validator.Validate
	}
)

func NewTripHandler(tripService trip.TripService, validator *validator.Validate) TripHandler {
	return &tripHandler{
		tripService: tripService,
		validator:   validator,
	}
}

func tripErrStatus(err error) int {
	if errors.Is(err, domain.ErrTripNotFound) ||
		errors.Is(err, domain.ErrTripItemNotFound) ||
		errors.Is(err, domain.ErrCategoryNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (h *tripHandler) CreateTrip(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateTripRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTrip, err)
	}

	res, err := h.tripService.CreateTrip(c.Context(), *req, userID)
	if err != nil {
		// An unknown template trip is a 404; an unowned category in the
		// selection is a validation failure, so it stays 400.
		if errors.Is(err, domain.ErrTripNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateTrip, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTrip, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTrip)
}

func (h *tripHandler) GetTrips(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.tripService.GetTrips(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTrips, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTrips)
}

func (h *tripHandler) GetTripDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tripID := c.Params("id")

	res, err := h.tripService.GetTripByID(c.Context(), tripID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, tripErrStatus(err), domain.MessageFailedGetTrip, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTrip)
}

func (h *tripHandler) DeleteTrip(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tripID := c.Params("id")

	if err := h.tripService.DeleteTrip(c.Context(), tripID, userID); err != nil {
		return presenters.ErrorResponse(c, tripErrStatus(err), domain.MessageFailedDeleteTrip, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTrip)
}

func (h *tripHandler) ToggleComplete(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tripID := c.Params("id")

	res, err := h.tripService.ToggleComplete(c.Context(), tripID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, tripErrStatus(err), domain.MessageFailedCompleteTrip, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteTrip)
}

func (h *tripHandler) AddTripItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tripID := c.Params("id")
	req := new(domain.AddTripItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddTripItem, err)
	}

	res, err := h.tripService.AddCustomItem(c.Context(), tripID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, tripErrStatus(err), domain.MessageFailedAddTripItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddTripItem)
}

func (h *tripHandler) UpdateTripItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("itemID")
	req := new(domain.UpdateTripItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTripItem, err)
	}

	res, err := h.tripService.UpdateTripItem(c.Context(), itemID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, tripErrStatus(err), domain.MessageFailedUpdateTripItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateTripItem)
}

func (h *tripHandler) DeleteTripItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("itemID")

	if err := h.tripService.RemoveTripItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, tripErrStatus(err), domain.MessageFailedDeleteTripItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTripItem)
}

func (h *tripHandler) PromoteTripItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("itemID")
	req := new(domain.PromoteTripItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPromoteTripItem, err)
	}

	if err := h.tripService.PromoteTripItem(c.Context(), itemID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, tripErrStatus(err), domain.MessageFailedPromoteTripItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessPromoteTripItem)
}

func (h *tripHandler) GetProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tripID := c.Params("id")

	res, err := h.tripService.GetProgress(c.Context(), tripID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, tripErrStatus(err), domain.MessageFailedGetProgress, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProgress)
}

func (h *tripHandler) GetDashboardStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.tripService.GetDashboardStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboardStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboardStats)
}
