package trip

import (
	"Packlist-API/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TripRepository interface {
		// CreateTripSnapshot creates the trip, one trip category per source
		// category with the category's current name, one unpacked trip item
		// per category item, and any extra custom items, all in a single
		// transaction.
		CreateTripSnapshot(ctx context.Context, trip *entities.Trip, categories []*entities.Category, customItems []*entities.TripItem) error

		GetTripByID(ctx context.Context, id string, userID string) (*entities.Trip, error)
		GetTrips(ctx context.Context, userID string) ([]*entities.Trip, error)
		UpdateTrip(ctx context.Context, trip *entities.Trip) error
		DeleteTrip(ctx context.Context, id string, userID string) error

		AddTripItem(ctx context.Context, item *entities.TripItem) error
		GetTripItemByID(ctx context.Context, itemID string, userID string) (*entities.TripItem, error)
		UpdateTripItem(ctx context.Context, item *entities.TripItem) error
		DeleteTripItem(ctx context.Context, itemID string) error

		CountTripItems(ctx context.Context, tripID string) (packed int64, total int64, err error)
		GetDashboardStats(ctx context.Context, userID string) (map[string]interface{}, error)
	}

	tripRepository struct {
		db *gorm.DB
	}
)

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTripSnapshot(ctx context.Context, trip *entities.Trip, categories []*entities.Category, customItems []*entities.TripItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}

		for _, category := range categories {
			categoryID := category.ID
			tripCategory := &entities.TripCategory{
				ID:           uuid.New(),
				TripID:       trip.ID,
				CategoryID:   &categoryID,
				CategoryName: category.Name,
			}
			if err := tx.Create(tripCategory).Error; err != nil {
				return err
			}

			for _, item := range category.Items {
				tripCategoryID := tripCategory.ID
				tripItem := &entities.TripItem{
					ID:               uuid.New(),
					TripID:           trip.ID,
					TripCategoryID:   &tripCategoryID,
					Name:             item.Name,
					SourceCategoryID: &categoryID,
				}
				if err := tx.Create(tripItem).Error; err != nil {
					return err
				}
			}
		}

		for _, item := range customItems {
			item.ID = uuid.New()
			item.TripID = trip.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *tripRepository) GetTripByID(ctx context.Context, id string, userID string) (*entities.Trip, error) {
	var trip entities.Trip
	if err := r.db.WithContext(ctx).
		Preload("TripCategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_categories.category_name asc")
		}).
		Preload("TripCategories.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_items.name asc")
		}).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_items.name asc")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) GetTrips(ctx context.Context, userID string) ([]*entities.Trip, error) {
	var trips []*entities.Trip
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) UpdateTrip(ctx context.Context, trip *entities.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) DeleteTrip(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Trip{}).Error
}

func (r *tripRepository) AddTripItem(ctx context.Context, item *entities.TripItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetTripItemByID scopes the lookup to the owning user through the parent
// trip, so an item on another user's trip reads as not found.
func (r *tripRepository) GetTripItemByID(ctx context.Context, itemID string, userID string) (*entities.TripItem, error) {
	var item entities.TripItem
	if err := r.db.WithContext(ctx).
		Joins("JOIN trips ON trips.id = trip_items.trip_id").
		Where("trip_items.id = ? AND trips.user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *tripRepository) UpdateTripItem(ctx context.Context, item *entities.TripItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *tripRepository) DeleteTripItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&entities.TripItem{}).Error
}

func (r *tripRepository) CountTripItems(ctx context.Context, tripID string) (int64, int64, error) {
	var packed, total int64

	if err := r.db.WithContext(ctx).Model(&entities.TripItem{}).
		Where("trip_id = ?", tripID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.TripItem{}).
		Where("trip_id = ? AND is_packed = ?", tripID, true).
		Count(&packed).Error; err != nil {
		return 0, 0, err
	}

	return packed, total, nil
}

func (r *tripRepository) GetDashboardStats(ctx context.Context, userID string) (map[string]interface{}, error) {
	var totalTrips, activeTrips, completedTrips, totalCategories int64

	if err := r.db.WithContext(ctx).Model(&entities.Trip{}).
		Where("user_id = ?", userID).
		Count(&totalTrips).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Trip{}).
		Where("user_id = ? AND is_complete = ?", userID, false).
		Count(&activeTrips).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Trip{}).
		Where("user_id = ? AND is_complete = ?", userID, true).
		Count(&completedTrips).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Category{}).
		Where("user_id = ?", userID).
		Count(&totalCategories).Error; err != nil {
		return nil, err
	}

	stats := map[string]interface{}{
		"total_trips":      totalTrips,
		"active_trips":     activeTrips,
		"completed_trips":  completedTrips,
		"total_categories": totalCategories,
	}

	return stats, nil
}
