package handlers

import (
	"Packlist-API/domain"
	"Packlist-API/internal/api/presenters"
	"Packlist-API/pkg/category"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		CreateCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetCategoryDetails(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
		AddCategoryItem(c *fiber.Ctx) error
		UpdateCategoryItem(c *fiber.Ctx) error
		DeleteCategoryItem(c *fiber.Ctx) error
		ImportCategories(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		validator       *validator.Validate
	}
)

func NewCategoryHandler(categoryService category.CategoryService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

// Ownership mismatches surface the same not-found sentinels as true absence,
// so both land on 404 here without a distinct forbidden signal.
func categoryErrStatus(err error) int {
	if errors.Is(err, domain.ErrCategoryNotFound) || errors.Is(err, domain.ErrCategoryItemNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (h *categoryHandler) CreateCategory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.categoryService.CreateCategory(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.categoryService.GetCategories(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) GetCategoryDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Params("id")

	res, err := h.categoryService.GetCategoryByID(c.Context(), categoryID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, categoryErrStatus(err), domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) UpdateCategory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Params("id")
	req := new(domain.UpdateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	if err := h.categoryService.UpdateCategory(c.Context(), categoryID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, categoryErrStatus(err), domain.MessageFailedUpdateCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Params("id")

	if err := h.categoryService.DeleteCategory(c.Context(), categoryID, userID); err != nil {
		return presenters.ErrorResponse(c, categoryErrStatus(err), domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

func (h *categoryHandler) AddCategoryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Params("id")
	req := new(domain.AddCategoryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCategoryItem, err)
	}

	res, err := h.categoryService.AddCategoryItem(c.Context(), categoryID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, categoryErrStatus(err), domain.MessageFailedAddCategoryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCategoryItem)
}

func (h *categoryHandler) UpdateCategoryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Params("id")
	itemID := c.Params("itemID")
	req := new(domain.UpdateCategoryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategoryItem, err)
	}

	if err := h.categoryService.UpdateCategoryItem(c.Context(), categoryID, itemID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, categoryErrStatus(err), domain.MessageFailedUpdateCategoryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCategoryItem)
}

func (h *categoryHandler) DeleteCategoryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Params("id")
	itemID := c.Params("itemID")

	if err := h.categoryService.DeleteCategoryItem(c.Context(), categoryID, itemID, userID); err != nil {
		return presenters.ErrorResponse(c, categoryErrStatus(err), domain.MessageFailedDeleteCategoryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategoryItem)
}

func (h *categoryHandler) ImportCategories(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ImportCategoriesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportCategories, err)
	}

	res, err := h.categoryService.ImportCategories(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedImportCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessImportCategories)
}
