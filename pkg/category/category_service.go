package category

import (
	"Packlist-API/domain"
	"Packlist-API/entities"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest, userID string) (domain.CategoryResponse, error)
		GetCategories(ctx context.Context, userID string) ([]domain.CategoryResponse, error)
		GetCategoryByID(ctx context.Context, id string, userID string) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest, userID string) error
		DeleteCategory(ctx context.Context, id string, userID string) error

		AddCategoryItem(ctx context.Context, categoryID string, req domain.AddCategoryItemRequest, userID string) (domain.CategoryItemResponse, error)
		UpdateCategoryItem(ctx context.Context, categoryID, itemID string, req domain.UpdateCategoryItemRequest, userID string) error
		DeleteCategoryItem(ctx context.Context, categoryID, itemID string, userID string) error

		ImportCategories(ctx context.Context, req domain.ImportCategoriesRequest, userID string) (domain.ImportCategoriesResponse, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest, userID string) (domain.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CategoryResponse{}, domain.ErrCategoryNameEmpty
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CategoryResponse{}, domain.ErrParseUUID
	}

	category := &entities.Category{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   name,
	}

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return toCategoryResponse(category), nil
}

func (s *categoryService) GetCategories(ctx context.Context, userID string) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, toCategoryResponse(category))
	}
	return response, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string, userID string) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}
	return toCategoryResponse(category), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest, userID string) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ErrCategoryNameEmpty
	}

	category, err := s.categoryRepository.GetCategoryByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	category.Name = name
	return s.categoryRepository.UpdateCategory(ctx, category)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string, userID string) error {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepository.DeleteCategory(ctx, id, userID)
}

func (s *categoryService) AddCategoryItem(ctx context.Context, categoryID string, req domain.AddCategoryItemRequest, userID string) (domain.CategoryItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CategoryItemResponse{}, domain.ErrItemNameEmpty
	}

	category, err := s.categoryRepository.GetCategoryByID(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryItemResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryItemResponse{}, err
	}

	item := &entities.CategoryItem{
		ID:         uuid.New(),
		CategoryID: category.ID,
		Name:       name,
	}

	if err := s.categoryRepository.AddCategoryItem(ctx, item); err != nil {
		return domain.CategoryItemResponse{}, err
	}

	return domain.CategoryItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	}, nil
}

func (s *categoryService) UpdateCategoryItem(ctx context.Context, categoryID, itemID string, req domain.UpdateCategoryItemRequest, userID string) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ErrItemNameEmpty
	}

	if _, err := s.categoryRepository.GetCategoryByID(ctx, categoryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	item, err := s.categoryRepository.GetCategoryItemByID(ctx, itemID, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryItemNotFound
		}
		return err
	}

	item.Name = name
	return s.categoryRepository.UpdateCategoryItem(ctx, item)
}

func (s *categoryService) DeleteCategoryItem(ctx context.Context, categoryID, itemID string, userID string) error {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, categoryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	if _, err := s.categoryRepository.GetCategoryItemByID(ctx, itemID, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryItemNotFound
		}
		return err
	}

	return s.categoryRepository.DeleteCategoryItem(ctx, itemID)
}

func (s *categoryService) ImportCategories(ctx context.Context, req domain.ImportCategoriesRequest, userID string) (domain.ImportCategoriesResponse, error) {
	if len(req.Items) == 0 {
		return domain.ImportCategoriesResponse{}, domain.ErrImportEmpty
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ImportCategoriesResponse{}, domain.ErrParseUUID
	}

	// Group rows by category, keeping first-seen order and dropping
	// duplicate item names within a row set.
	var categoryNames []string
	itemsByCategory := make(map[string][]string)
	seen := make(map[string]map[string]bool)
	for _, row := range req.Items {
		categoryName := strings.TrimSpace(row.Category)
		itemName := strings.TrimSpace(row.Item)
		if categoryName == "" || itemName == "" {
			continue
		}
		if _, ok := itemsByCategory[categoryName]; !ok {
			categoryNames = append(categoryNames, categoryName)
			itemsByCategory[categoryName] = nil
			seen[categoryName] = make(map[string]bool)
		}
		if seen[categoryName][itemName] {
			continue
		}
		seen[categoryName][itemName] = true
		itemsByCategory[categoryName] = append(itemsByCategory[categoryName], itemName)
	}

	if len(categoryNames) == 0 {
		return domain.ImportCategoriesResponse{}, domain.ErrImportEmpty
	}

	created, existing, itemsCreated, itemsSkipped, err := s.categoryRepository.ImportCategories(ctx, userUUID, categoryNames, itemsByCategory)
	if err != nil {
		return domain.ImportCategoriesResponse{}, err
	}

	return domain.ImportCategoriesResponse{
		CategoriesCreated:  created,
		CategoriesExisting: existing,
		ItemsCreated:       itemsCreated,
		ItemsSkipped:       itemsSkipped,
	}, nil
}

func toCategoryResponse(category *entities.Category) domain.CategoryResponse {
	items := make([]domain.CategoryItemResponse, 0, len(category.Items))
	for _, item := range category.Items {
		items = append(items, domain.CategoryItemResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			CreatedAt: item.CreatedAt,
		})
	}
	return domain.CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Items:     items,
		CreatedAt: category.CreatedAt,
	}
}
