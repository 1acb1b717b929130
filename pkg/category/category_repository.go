package category

import (
	"Packlist-API/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategoryByID(ctx context.Context, id string, userID string) (*entities.Category, error)
		GetCategories(ctx context.Context, userID string) ([]*entities.Category, error)
		GetCategoriesByIDs(ctx context.Context, ids []string, userID string) ([]*entities.Category, error)
		GetCategoriesByNames(ctx context.Context, names []string, userID string) ([]*entities.Category, error)
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id string, userID string) error

		AddCategoryItem(ctx context.Context, item *entities.CategoryItem) error
		GetCategoryItemByID(ctx context.Context, itemID string, categoryID string) (*entities.CategoryItem, error)
		UpdateCategoryItem(ctx context.Context, item *entities.CategoryItem) error
		DeleteCategoryItem(ctx context.Context, itemID string) error

		ImportCategories(ctx context.Context, userID uuid.UUID, categoryNames []string, itemsByCategory map[string][]string) (created, existing, itemsCreated, itemsSkipped int, err error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string, userID string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("category_items.name asc") }).
		Where("id = ? AND user_id = ?", id, userID).
		First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategories(ctx context.Context, userID string) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("category_items.name asc") }).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetCategoriesByIDs(ctx context.Context, ids []string, userID string) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("category_items.name asc") }).
		Where("id IN ? AND user_id = ?", ids, userID).
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetCategoriesByNames(ctx context.Context, names []string, userID string) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("category_items.name asc") }).
		Where("name IN ? AND user_id = ?", names, userID).
		Order("name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Category{}).Error
}

func (r *categoryRepository) AddCategoryItem(ctx context.Context, item *entities.CategoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *categoryRepository) GetCategoryItemByID(ctx context.Context, itemID string, categoryID string) (*entities.CategoryItem, error) {
	var item entities.CategoryItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND category_id = ?", itemID, categoryID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *categoryRepository) UpdateCategoryItem(ctx context.Context, item *entities.CategoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *categoryRepository) DeleteCategoryItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&entities.CategoryItem{}).Error
}

// ImportCategories gets or creates each named category and fills in the item
// names it does not already contain. The whole import runs in one
// transaction so a mid-import failure leaves nothing behind.
func (r *categoryRepository) ImportCategories(ctx context.Context, userID uuid.UUID, categoryNames []string, itemsByCategory map[string][]string) (int, int, int, int, error) {
	var created, existing, itemsCreated, itemsSkipped int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, categoryName := range categoryNames {
			var category entities.Category
			err := tx.Where("user_id = ? AND name = ?", userID, categoryName).First(&category).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				category = entities.Category{
					ID:     uuid.New(),
					UserID: userID,
					Name:   categoryName,
				}
				if err := tx.Create(&category).Error; err != nil {
					return err
				}
				created++
			} else if err != nil {
				return err
			} else {
				existing++
			}

			var existingItems []*entities.CategoryItem
			if err := tx.Where("category_id = ?", category.ID).Find(&existingItems).Error; err != nil {
				return err
			}
			existingNames := make(map[string]bool, len(existingItems))
			for _, item := range existingItems {
				existingNames[item.Name] = true
			}

			for _, itemName := range itemsByCategory[categoryName] {
				if existingNames[itemName] {
					itemsSkipped++
					continue
				}
				item := entities.CategoryItem{
					ID:         uuid.New(),
					CategoryID: category.ID,
					Name:       itemName,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				existingNames[itemName] = true
				itemsCreated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, 0, 0, err
	}

	return created, existing, itemsCreated, itemsSkipped, nil
}
