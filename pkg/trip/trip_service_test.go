package trip

import (
	"Packlist-API/domain"
	"Packlist-API/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the ownership scoping of the real
// repositories: lookups for rows the given user does not own come back as
// gorm.ErrRecordNotFound.

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entities.Category
	items      map[uuid.UUID]*entities.CategoryItem
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[uuid.UUID]*entities.Category),
		items:      make(map[uuid.UUID]*entities.CategoryItem),
	}
}

func (f *fakeCategoryRepo) addCategory(userID uuid.UUID, name string, itemNames ...string) *entities.Category {
	category := &entities.Category{ID: uuid.New(), UserID: userID, Name: name}
	for _, itemName := range itemNames {
		item := &entities.CategoryItem{ID: uuid.New(), CategoryID: category.ID, Name: itemName}
		category.Items = append(category.Items, item)
		f.items[item.ID] = item
	}
	f.categories[category.ID] = category
	return category
}

func (f *fakeCategoryRepo) CreateCategory(_ context.Context, category *entities.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) GetCategoryByID(_ context.Context, id string, userID string) (*entities.Category, error) {
	for _, category := range f.categories {
		if category.ID.String() == id && category.UserID.String() == userID {
			return category, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) GetCategories(_ context.Context, userID string) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, category := range f.categories {
		if category.UserID.String() == userID {
			out = append(out, category)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetCategoriesByIDs(_ context.Context, ids []string, userID string) ([]*entities.Category, error) {
	wanted := make(map[string]bool)
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*entities.Category
	for _, category := range f.categories {
		if wanted[category.ID.String()] && category.UserID.String() == userID {
			out = append(out, category)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetCategoriesByNames(_ context.Context, names []string, userID string) ([]*entities.Category, error) {
	wanted := make(map[string]bool)
	for _, name := range names {
		wanted[name] = true
	}
	var out []*entities.Category
	for _, category := range f.categories {
		if wanted[category.Name] && category.UserID.String() == userID {
			out = append(out, category)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) UpdateCategory(_ context.Context, category *entities.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) DeleteCategory(_ context.Context, id string, userID string) error {
	for key, category := range f.categories {
		if category.ID.String() == id && category.UserID.String() == userID {
			delete(f.categories, key)
		}
	}
	return nil
}

func (f *fakeCategoryRepo) AddCategoryItem(_ context.Context, item *entities.CategoryItem) error {
	f.items[item.ID] = item
	if category, ok := f.categories[item.CategoryID]; ok {
		category.Items = append(category.Items, item)
	}
	return nil
}

func (f *fakeCategoryRepo) GetCategoryItemByID(_ context.Context, itemID string, categoryID string) (*entities.CategoryItem, error) {
	for _, item := range f.items {
		if item.ID.String() == itemID && item.CategoryID.String() == categoryID {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) UpdateCategoryItem(_ context.Context, item *entities.CategoryItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeCategoryRepo) DeleteCategoryItem(_ context.Context, itemID string) error {
	for key, item := range f.items {
		if item.ID.String() == itemID {
			delete(f.items, key)
		}
	}
	return nil
}

func (f *fakeCategoryRepo) ImportCategories(_ context.Context, _ uuid.UUID, _ []string, _ map[string][]string) (int, int, int, int, error) {
	return 0, 0, 0, 0, nil
}

type fakeTripRepo struct {
	trips          map[uuid.UUID]*entities.Trip
	tripCategories map[uuid.UUID]*entities.TripCategory
	items          map[uuid.UUID]*entities.TripItem
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{
		trips:          make(map[uuid.UUID]*entities.Trip),
		tripCategories: make(map[uuid.UUID]*entities.TripCategory),
		items:          make(map[uuid.UUID]*entities.TripItem),
	}
}

func (f *fakeTripRepo) CreateTripSnapshot(_ context.Context, trip *entities.Trip, categories []*entities.Category, customItems []*entities.TripItem) error {
	f.trips[trip.ID] = trip
	for _, category := range categories {
		categoryID := category.ID
		tripCategory := &entities.TripCategory{
			ID:           uuid.New(),
			TripID:       trip.ID,
			CategoryID:   &categoryID,
			CategoryName: category.Name,
		}
		f.tripCategories[tripCategory.ID] = tripCategory
		for _, item := range category.Items {
			tripCategoryID := tripCategory.ID
			tripItem := &entities.TripItem{
				ID:               uuid.New(),
				TripID:           trip.ID,
				TripCategoryID:   &tripCategoryID,
				Name:             item.Name,
				SourceCategoryID: &categoryID,
			}
			f.items[tripItem.ID] = tripItem
		}
	}
	for _, item := range customItems {
		item.ID = uuid.New()
		item.TripID = trip.ID
		f.items[item.ID] = item
	}
	return nil
}

func (f *fakeTripRepo) GetTripByID(_ context.Context, id string, userID string) (*entities.Trip, error) {
	for _, trip := range f.trips {
		if trip.ID.String() != id || trip.UserID.String() != userID {
			continue
		}
		loaded := *trip
		loaded.TripCategories = nil
		loaded.Items = nil
		for _, tripCategory := range f.tripCategories {
			if tripCategory.TripID != trip.ID {
				continue
			}
			withItems := *tripCategory
			withItems.Items = nil
			for _, item := range f.items {
				if item.TripCategoryID != nil && *item.TripCategoryID == tripCategory.ID {
					withItems.Items = append(withItems.Items, item)
				}
			}
			loaded.TripCategories = append(loaded.TripCategories, &withItems)
		}
		for _, item := range f.items {
			if item.TripID == trip.ID {
				loaded.Items = append(loaded.Items, item)
			}
		}
		return &loaded, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTripRepo) GetTrips(_ context.Context, userID string) ([]*entities.Trip, error) {
	var out []*entities.Trip
	for _, trip := range f.trips {
		if trip.UserID.String() == userID {
			out = append(out, trip)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) UpdateTrip(_ context.Context, trip *entities.Trip) error {
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTripRepo) DeleteTrip(_ context.Context, id string, userID string) error {
	for key, trip := range f.trips {
		if trip.ID.String() == id && trip.UserID.String() == userID {
			delete(f.trips, key)
		}
	}
	return nil
}

func (f *fakeTripRepo) AddTripItem(_ context.Context, item *entities.TripItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeTripRepo) GetTripItemByID(_ context.Context, itemID string, userID string) (*entities.TripItem, error) {
	for _, item := range f.items {
		if item.ID.String() != itemID {
			continue
		}
		trip, ok := f.trips[item.TripID]
		if !ok || trip.UserID.String() != userID {
			return nil, gorm.ErrRecordNotFound
		}
		return item, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTripRepo) UpdateTripItem(_ context.Context, item *entities.TripItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeTripRepo) DeleteTripItem(_ context.Context, itemID string) error {
	for key, item := range f.items {
		if item.ID.String() == itemID {
			delete(f.items, key)
		}
	}
	return nil
}

func (f *fakeTripRepo) CountTripItems(_ context.Context, tripID string) (int64, int64, error) {
	var packed, total int64
	for _, item := range f.items {
		if item.TripID.String() != tripID {
			continue
		}
		total++
		if item.IsPacked {
			packed++
		}
	}
	return packed, total, nil
}

func (f *fakeTripRepo) GetDashboardStats(_ context.Context, userID string) (map[string]interface{}, error) {
	var totalTrips, activeTrips, completedTrips int64
	for _, trip := range f.trips {
		if trip.UserID.String() != userID {
			continue
		}
		totalTrips++
		if trip.IsComplete {
			completedTrips++
		} else {
			activeTrips++
		}
	}
	return map[string]interface{}{
		"total_trips":      totalTrips,
		"active_trips":     activeTrips,
		"completed_trips":  completedTrips,
		"total_categories": int64(0),
	}, nil
}

func newTestService() (TripService, *fakeTripRepo, *fakeCategoryRepo) {
	tripRepo := newFakeTripRepo()
	categoryRepo := newFakeCategoryRepo()
	return NewTripService(tripRepo, categoryRepo), tripRepo, categoryRepo
}

func TestCreateTripSnapshotsCategoryItems(t *testing.T) {
	service, _, categoryRepo := newTestService()
	userID := uuid.New()
	clothes := categoryRepo.addCategory(userID, "Clothes", "Shirt", "Pants", "Socks")

	res, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{
		Name:        "Beach Vacation",
		CategoryIDs: []string{clothes.ID.String()},
	}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, "Beach Vacation", res.Name)
	assert.Equal(t, 3, res.Progress.Total)
	assert.Equal(t, 0, res.Progress.Packed)

	detail, err := service.GetTripByID(context.Background(), res.ID, userID.String())
	require.NoError(t, err)
	require.Len(t, detail.TripCategories, 1)
	assert.Equal(t, "Clothes", detail.TripCategories[0].CategoryName)

	var names []string
	for _, item := range detail.TripCategories[0].Items {
		names = append(names, item.Name)
		assert.False(t, item.IsPacked)
		assert.False(t, item.IsCustom)
	}
	assert.ElementsMatch(t, []string{"Shirt", "Pants", "Socks"}, names)
}

func TestCreateTripRejectsEmptyName(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{Name: "   "}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrTripNameEmpty)
}

func TestCreateTripRejectsUnownedCategory(t *testing.T) {
	service, _, categoryRepo := newTestService()
	owner := uuid.New()
	other := uuid.New()
	theirCategory := categoryRepo.addCategory(other, "Electronics", "Charger")

	_, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{
		Name:        "Road Trip",
		CategoryIDs: []string{theirCategory.ID.String()},
	}, owner.String())
	assert.ErrorIs(t, err, domain.ErrUnknownCategorySelected)
}

func TestSnapshotIsIndependentOfLaterCategoryEdits(t *testing.T) {
	service, _, categoryRepo := newTestService()
	userID := uuid.New()
	clothes := categoryRepo.addCategory(userID, "Clothes", "Shirt")

	res, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{
		Name:        "Weekend",
		CategoryIDs: []string{clothes.ID.String()},
	}, userID.String())
	require.NoError(t, err)

	// Rename and gut the source category after the snapshot.
	clothes.Name = "Renamed"
	clothes.Items[0].Name = "Changed"

	detail, err := service.GetTripByID(context.Background(), res.ID, userID.String())
	require.NoError(t, err)
	require.Len(t, detail.TripCategories, 1)
	assert.Equal(t, "Clothes", detail.TripCategories[0].CategoryName)
	require.Len(t, detail.TripCategories[0].Items, 1)
	assert.Equal(t, "Shirt", detail.TripCategories[0].Items[0].Name)
}

func TestCreateTripFromTemplateCopiesCustomItemsUnpacked(t *testing.T) {
	service, tripRepo, categoryRepo := newTestService()
	userID := uuid.New()
	clothes := categoryRepo.addCategory(userID, "Clothes", "Shirt", "Pants")

	source, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{
		Name:        "Japan 2025",
		CategoryIDs: []string{clothes.ID.String()},
	}, userID.String())
	require.NoError(t, err)

	custom, err := service.AddCustomItem(context.Background(), source.ID, domain.AddTripItemRequest{Name: "Passport"}, userID.String())
	require.NoError(t, err)

	// Pack one template item and the custom one; neither flag may carry over.
	packed := true
	sourceDetail, err := service.GetTripByID(context.Background(), source.ID, userID.String())
	require.NoError(t, err)
	_, err = service.UpdateTripItem(context.Background(), sourceDetail.TripCategories[0].Items[0].ID, domain.UpdateTripItemRequest{IsPacked: &packed}, userID.String())
	require.NoError(t, err)
	_, err = service.UpdateTripItem(context.Background(), custom.ID, domain.UpdateTripItemRequest{IsPacked: &packed}, userID.String())
	require.NoError(t, err)

	res, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{
		Name:           "Japan 2026",
		TemplateTripID: source.ID,
	}, userID.String())
	require.NoError(t, err)

	packedCount, total, err := tripRepo.CountTripItems(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(0), packedCount)

	detail, err := service.GetTripByID(context.Background(), res.ID, userID.String())
	require.NoError(t, err)
	customCount := 0
	for _, item := range detail.CustomItems {
		if item.IsCustom {
			customCount++
		}
		assert.False(t, item.IsPacked)
	}
	assert.Equal(t, 1, customCount)
}

func TestCreateTripFromTemplateSkipsDeletedCategories(t *testing.T) {
	service, _, categoryRepo := newTestService()
	userID := uuid.New()
	clothes := categoryRepo.addCategory(userID, "Clothes", "Shirt")

	source, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{
		Name:        "First Trip",
		CategoryIDs: []string{clothes.ID.String()},
	}, userID.String())
	require.NoError(t, err)

	require.NoError(t, categoryRepo.DeleteCategory(context.Background(), clothes.ID.String(), userID.String()))

	res, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{
		Name:           "Second Trip",
		TemplateTripID: source.ID,
	}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Progress.Total)
}

func TestSetPackedRoundTrip(t *testing.T) {
	service, _, _ := newTestService()
	userID := uuid.New()

	trip, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{Name: "Hike"}, userID.String())
	require.NoError(t, err)
	item, err := service.AddCustomItem(context.Background(), trip.ID, domain.AddTripItemRequest{Name: "Tent"}, userID.String())
	require.NoError(t, err)

	packed := true
	res, err := service.UpdateTripItem(context.Background(), item.ID, domain.UpdateTripItemRequest{IsPacked: &packed}, userID.String())
	require.NoError(t, err)
	assert.True(t, res.IsPacked)

	// Setting the same value again is a no-op, not an error.
	res, err = service.UpdateTripItem(context.Background(), item.ID, domain.UpdateTripItemRequest{IsPacked: &packed}, userID.String())
	require.NoError(t, err)
	assert.True(t, res.IsPacked)

	unpacked := false
	res, err = service.UpdateTripItem(context.Background(), item.ID, domain.UpdateTripItemRequest{IsPacked: &unpacked}, userID.String())
	require.NoError(t, err)
	assert.False(t, res.IsPacked)
}

func TestAddCustomItemValidatesName(t *testing.T) {
	service, _, _ := newTestService()
	userID := uuid.New()

	trip, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{Name: "Hike"}, userID.String())
	require.NoError(t, err)

	_, err = service.AddCustomItem(context.Background(), trip.ID, domain.AddTripItemRequest{Name: "  "}, userID.String())
	assert.ErrorIs(t, err, domain.ErrItemNameEmpty)

	res, err := service.AddCustomItem(context.Background(), trip.ID, domain.AddTripItemRequest{Name: "  Headlamp  "}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, "Headlamp", res.Name)
	assert.True(t, res.IsCustom)

	// Duplicate names within a trip are allowed.
	_, err = service.AddCustomItem(context.Background(), trip.ID, domain.AddTripItemRequest{Name: "Headlamp"}, userID.String())
	assert.NoError(t, err)
}

func TestPromoteTripItemIsNotIdempotent(t *testing.T) {
	service, _, categoryRepo := newTestService()
	userID := uuid.New()
	gear := categoryRepo.addCategory(userID, "Gear")

	trip, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{Name: "Hike"}, userID.String())
	require.NoError(t, err)
	item, err := service.AddCustomItem(context.Background(), trip.ID, domain.AddTripItemRequest{Name: "Stove"}, userID.String())
	require.NoError(t, err)

	req := domain.PromoteTripItemRequest{CategoryID: gear.ID.String()}
	require.NoError(t, service.PromoteTripItem(context.Background(), item.ID, req, userID.String()))
	require.NoError(t, service.PromoteTripItem(context.Background(), item.ID, req, userID.String()))

	// Two promotions, two category items. No dedup.
	assert.Len(t, gear.Items, 2)
	for _, categoryItem := range gear.Items {
		assert.Equal(t, "Stove", categoryItem.Name)
	}

	// The trip item survives promotion and now points at the category.
	detail, err := service.GetTripByID(context.Background(), trip.ID, userID.String())
	require.NoError(t, err)
	require.Len(t, detail.CustomItems, 1)
	assert.Equal(t, gear.ID.String(), detail.CustomItems[0].SourceCategoryID)
}

func TestRemoveTripItem(t *testing.T) {
	service, _, _ := newTestService()
	userID := uuid.New()

	trip, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{Name: "Hike"}, userID.String())
	require.NoError(t, err)
	item, err := service.AddCustomItem(context.Background(), trip.ID, domain.AddTripItemRequest{Name: "Tent"}, userID.String())
	require.NoError(t, err)

	require.NoError(t, service.RemoveTripItem(context.Background(), item.ID, userID.String()))
	err = service.RemoveTripItem(context.Background(), item.ID, userID.String())
	assert.ErrorIs(t, err, domain.ErrTripItemNotFound)
}

func TestProgressCalculation(t *testing.T) {
	service, _, _ := newTestService()
	userID := uuid.New()

	trip, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{Name: "Hike"}, userID.String())
	require.NoError(t, err)

	// Empty trip reports zero, not an error.
	progress, err := service.GetProgress(context.Background(), trip.ID, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Total)
	assert.Equal(t, 0, progress.Percentage)

	packed := true
	for i, name := range []string{"Tent", "Stove", "Map"} {
		item, err := service.AddCustomItem(context.Background(), trip.ID, domain.AddTripItemRequest{Name: name}, userID.String())
		require.NoError(t, err)
		if i < 2 {
			_, err = service.UpdateTripItem(context.Background(), item.ID, domain.UpdateTripItemRequest{IsPacked: &packed}, userID.String())
			require.NoError(t, err)
		}
	}

	progress, err = service.GetProgress(context.Background(), trip.ID, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, progress.Packed)
	assert.Equal(t, 3, progress.Total)
	assert.Equal(t, 67, progress.Percentage)
}

func TestOwnershipReadsAsNotFound(t *testing.T) {
	service, _, _ := newTestService()
	owner := uuid.New()
	intruder := uuid.New()

	trip, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{Name: "Private"}, owner.String())
	require.NoError(t, err)
	item, err := service.AddCustomItem(context.Background(), trip.ID, domain.AddTripItemRequest{Name: "Wallet"}, owner.String())
	require.NoError(t, err)

	_, err = service.GetTripByID(context.Background(), trip.ID, intruder.String())
	assert.ErrorIs(t, err, domain.ErrTripNotFound)

	packed := true
	_, err = service.UpdateTripItem(context.Background(), item.ID, domain.UpdateTripItemRequest{IsPacked: &packed}, intruder.String())
	assert.ErrorIs(t, err, domain.ErrTripItemNotFound)

	err = service.RemoveTripItem(context.Background(), item.ID, intruder.String())
	assert.ErrorIs(t, err, domain.ErrTripItemNotFound)

	err = service.DeleteTrip(context.Background(), trip.ID, intruder.String())
	assert.ErrorIs(t, err, domain.ErrTripNotFound)
}

func TestToggleComplete(t *testing.T) {
	service, _, _ := newTestService()
	userID := uuid.New()

	trip, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{Name: "Hike"}, userID.String())
	require.NoError(t, err)

	res, err := service.ToggleComplete(context.Background(), trip.ID, userID.String())
	require.NoError(t, err)
	assert.True(t, res.IsComplete)

	res, err = service.ToggleComplete(context.Background(), trip.ID, userID.String())
	require.NoError(t, err)
	assert.False(t, res.IsComplete)
}

func TestGetTripsSplitsByCompletion(t *testing.T) {
	service, _, _ := newTestService()
	userID := uuid.New()

	active, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{Name: "Active"}, userID.String())
	require.NoError(t, err)
	done, err := service.CreateTrip(context.Background(), domain.CreateTripRequest{Name: "Done"}, userID.String())
	require.NoError(t, err)
	_, err = service.ToggleComplete(context.Background(), done.ID, userID.String())
	require.NoError(t, err)

	list, err := service.GetTrips(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, list.ActiveTrips, 1)
	require.Len(t, list.CompletedTrips, 1)
	assert.Equal(t, active.ID, list.ActiveTrips[0].ID)
	assert.Equal(t, done.ID, list.CompletedTrips[0].ID)
}
