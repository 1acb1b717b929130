package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateCategory     = "category created successfully"
	MessageSuccessGetCategories      = "categories retrieved successfully"
	MessageSuccessUpdateCategory     = "category updated successfully"
	MessageSuccessDeleteCategory     = "category deleted successfully"
	MessageSuccessAddCategoryItem    = "category item added successfully"
	MessageSuccessUpdateCategoryItem = "category item updated successfully"
	MessageSuccessDeleteCategoryItem = "category item deleted successfully"
	MessageSuccessImportCategories   = "categories imported successfully"

	MessageFailedCreateCategory     = "failed to create category"
	MessageFailedGetCategories      = "failed to retrieve categories"
	MessageFailedUpdateCategory     = "failed to update category"
	MessageFailedDeleteCategory     = "failed to delete category"
	MessageFailedAddCategoryItem    = "failed to add category item"
	MessageFailedUpdateCategoryItem = "failed to update category item"
	MessageFailedDeleteCategoryItem = "failed to delete category item"
	MessageFailedImportCategories   = "failed to import categories"

	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryItemNotFound = errors.New("category item not found")
	ErrCategoryNameEmpty    = errors.New("category name must not be empty")
	ErrItemNameEmpty        = errors.New("item name must not be empty")
	ErrImportEmpty          = errors.New("at least one import row is required")
)

type (
	CreateCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	AddCategoryItemRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateCategoryItemRequest struct {
		Name string `json:"name" validate:"required"`
	}

	CategoryItemResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
	}

	CategoryResponse struct {
		ID        string                 `json:"id"`
		Name      string                 `json:"name"`
		Items     []CategoryItemResponse `json:"items"`
		CreatedAt time.Time              `json:"created_at"`
	}

	ImportRowRequest struct {
		Category string `json:"category" validate:"required"`
		Item     string `json:"item" validate:"required"`
	}

	ImportCategoriesRequest struct {
		Items []ImportRowRequest `json:"items" validate:"required,min=1,dive"`
	}

	ImportCategoriesResponse struct {
		CategoriesCreated  int `json:"categories_created"`
		CategoriesExisting int `json:"categories_existing"`
		ItemsCreated       int `json:"items_created"`
		ItemsSkipped       int `json:"items_skipped"`
	}
)
