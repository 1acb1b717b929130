package trip

import (
	"Packlist-API/domain"
	"Packlist-API/entities"
	"Packlist-API/pkg/category"
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TripService interface {
		CreateTrip(ctx context.Context, req domain.CreateTripRequest, userID string) (domain.TripResponse, error)
		GetTrips(ctx context.Context, userID string) (domain.TripListResponse, error)
		GetTripByID(ctx context.Context, id string, userID string) (domain.TripDetailResponse, error)
		DeleteTrip(ctx context.Context, id string, userID string) error
		ToggleComplete(ctx context.Context, id string, userID string) (domain.TripResponse, error)

		AddCustomItem(ctx context.Context, tripID string, req domain.AddTripItemRequest, userID string) (domain.TripItemResponse, error)
		UpdateTripItem(ctx context.Context, itemID string, req domain.UpdateTripItemRequest, userID string) (domain.TripItemResponse, error)
		PromoteTripItem(ctx context.Context, itemID string, req domain.PromoteTripItemRequest, userID string) error
		RemoveTripItem(ctx context.Context, itemID string, userID string) error

		GetProgress(ctx context.Context, tripID string, userID string) (domain.TripProgressResponse, error)
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
	}

	tripService struct {
		tripRepository     TripRepository
		categoryRepository category.CategoryRepository
	}
)

func NewTripService(tripRepository TripRepository, categoryRepository category.CategoryRepository) TripService {
	return &tripService{
		tripRepository:     tripRepository,
		categoryRepository: categoryRepository,
	}
}

func (s *tripService) CreateTrip(ctx context.Context, req domain.CreateTripRequest, userID string) (domain.TripResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.TripResponse{}, domain.ErrTripNameEmpty
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.TripResponse{}, domain.ErrParseUUID
	}

	var categories []*entities.Category
	var customItems []*entities.TripItem

	if req.TemplateTripID != "" {
		categories, customItems, err = s.resolveTemplate(ctx, req.TemplateTripID, userID)
		if err != nil {
			return domain.TripResponse{}, err
		}
	} else if len(req.CategoryIDs) > 0 {
		categories, err = s.categoryRepository.GetCategoriesByIDs(ctx, req.CategoryIDs, userID)
		if err != nil {
			return domain.TripResponse{}, err
		}
		// A selected id that resolved to nothing is either missing or owned
		// by someone else; either way the whole create is rejected.
		if len(categories) != len(uniqueIDs(req.CategoryIDs)) {
			return domain.TripResponse{}, domain.ErrUnknownCategorySelected
		}
	}

	trip := &entities.Trip{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   name,
	}

	if err := s.tripRepository.CreateTripSnapshot(ctx, trip, categories, customItems); err != nil {
		return domain.TripResponse{}, err
	}

	total := len(customItems)
	for _, c := range categories {
		total += len(c.Items)
	}

	return domain.TripResponse{
		ID:         trip.ID.String(),
		Name:       trip.Name,
		IsComplete: trip.IsComplete,
		Progress:   progressOf(0, total),
		CreatedAt:  trip.CreatedAt,
	}, nil
}

// resolveTemplate reconstructs a prior trip's category selection by matching
// its stored category names against the user's current categories. Names
// whose category has since been deleted are skipped. The source trip's
// custom items come back as fresh unpacked copies.
func (s *tripService) resolveTemplate(ctx context.Context, sourceTripID string, userID string) ([]*entities.Category, []*entities.TripItem, error) {
	sourceTrip, err := s.tripRepository.GetTripByID(ctx, sourceTripID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrTripNotFound
		}
		return nil, nil, err
	}

	var names []string
	seen := make(map[string]bool)
	for _, tripCategory := range sourceTrip.TripCategories {
		if seen[tripCategory.CategoryName] {
			continue
		}
		seen[tripCategory.CategoryName] = true
		names = append(names, tripCategory.CategoryName)
	}

	var categories []*entities.Category
	if len(names) > 0 {
		categories, err = s.categoryRepository.GetCategoriesByNames(ctx, names, userID)
		if err != nil {
			return nil, nil, err
		}
	}

	var customItems []*entities.TripItem
	for _, item := range sourceTrip.Items {
		if !item.IsCustom {
			continue
		}
		customItems = append(customItems, &entities.TripItem{
			Name:             item.Name,
			IsCustom:         true,
			SourceCategoryID: item.SourceCategoryID,
		})
	}

	return categories, customItems, nil
}

func (s *tripService) GetTrips(ctx context.Context, userID string) (domain.TripListResponse, error) {
	trips, err := s.tripRepository.GetTrips(ctx, userID)
	if err != nil {
		return domain.TripListResponse{}, err
	}

	response := domain.TripListResponse{
		ActiveTrips:    []domain.TripResponse{},
		CompletedTrips: []domain.TripResponse{},
	}
	for _, trip := range trips {
		summary := toTripResponse(trip)
		if trip.IsComplete {
			response.CompletedTrips = append(response.CompletedTrips, summary)
		} else {
			response.ActiveTrips = append(response.ActiveTrips, summary)
		}
	}
	return response, nil
}

func (s *tripService) GetTripByID(ctx context.Context, id string, userID string) (domain.TripDetailResponse, error) {
	trip, err := s.tripRepository.GetTripByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TripDetailResponse{}, domain.ErrTripNotFound
		}
		return domain.TripDetailResponse{}, err
	}

	tripCategories := make([]domain.TripCategoryResponse, 0, len(trip.TripCategories))
	for _, tripCategory := range trip.TripCategories {
		items := make([]domain.TripItemResponse, 0, len(tripCategory.Items))
		for _, item := range tripCategory.Items {
			items = append(items, toTripItemResponse(item, tripCategory.CategoryName))
		}
		tripCategories = append(tripCategories, domain.TripCategoryResponse{
			ID:           tripCategory.ID.String(),
			CategoryName: tripCategory.CategoryName,
			Items:        items,
		})
	}

	customItems := []domain.TripItemResponse{}
	for _, item := range trip.Items {
		if item.IsCustom && item.TripCategoryID == nil {
			customItems = append(customItems, toTripItemResponse(item, ""))
		}
	}

	packed := 0
	for _, item := range trip.Items {
		if item.IsPacked {
			packed++
		}
	}

	return domain.TripDetailResponse{
		ID:             trip.ID.String(),
		Name:           trip.Name,
		IsComplete:     trip.IsComplete,
		Progress:       progressOf(packed, len(trip.Items)),
		TripCategories: tripCategories,
		CustomItems:    customItems,
		CreatedAt:      trip.CreatedAt,
	}, nil
}

func (s *tripService) DeleteTrip(ctx context.Context, id string, userID string) error {
	if _, err := s.tripRepository.GetTripByID(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTripNotFound
		}
		return err
	}
	return s.tripRepository.DeleteTrip(ctx, id, userID)
}

func (s *tripService) ToggleComplete(ctx context.Context, id string, userID string) (domain.TripResponse, error) {
	trip, err := s.tripRepository.GetTripByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TripResponse{}, domain.ErrTripNotFound
		}
		return domain.TripResponse{}, err
	}

	trip.IsComplete = !trip.IsComplete
	if err := s.tripRepository.UpdateTrip(ctx, trip); err != nil {
		return domain.TripResponse{}, err
	}

	return toTripResponse(trip), nil
}

func (s *tripService) AddCustomItem(ctx context.Context, tripID string, req domain.AddTripItemRequest, userID string) (domain.TripItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.TripItemResponse{}, domain.ErrItemNameEmpty
	}

	trip, err := s.tripRepository.GetTripByID(ctx, tripID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TripItemResponse{}, domain.ErrTripNotFound
		}
		return domain.TripItemResponse{}, err
	}

	item := &entities.TripItem{
		ID:       uuid.New(),
		TripID:   trip.ID,
		Name:     name,
		IsCustom: true,
	}

	if err := s.tripRepository.AddTripItem(ctx, item); err != nil {
		return domain.TripItemResponse{}, err
	}

	return toTripItemResponse(item, ""), nil
}

func (s *tripService) UpdateTripItem(ctx context.Context, itemID string, req domain.UpdateTripItemRequest, userID string) (domain.TripItemResponse, error) {
	item, err := s.tripRepository.GetTripItemByID(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TripItemResponse{}, domain.ErrTripItemNotFound
		}
		return domain.TripItemResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.TripItemResponse{}, domain.ErrItemNameEmpty
		}
		item.Name = name
	}

	// Setting the packed flag to its current value is a no-op, not an error.
	if req.IsPacked != nil {
		item.IsPacked = *req.IsPacked
	}

	if err := s.tripRepository.UpdateTripItem(ctx, item); err != nil {
		return domain.TripItemResponse{}, err
	}

	return toTripItemResponse(item, ""), nil
}

// PromoteTripItem copies a trip item's current name into a category as a new
// template item and records the category on the trip item. Promoting the
// same item twice creates two category items; there is no dedup check.
func (s *tripService) PromoteTripItem(ctx context.Context, itemID string, req domain.PromoteTripItemRequest, userID string) error {
	item, err := s.tripRepository.GetTripItemByID(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTripItemNotFound
		}
		return err
	}

	targetCategory, err := s.categoryRepository.GetCategoryByID(ctx, req.CategoryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	categoryItem := &entities.CategoryItem{
		ID:         uuid.New(),
		CategoryID: targetCategory.ID,
		Name:       item.Name,
	}
	if err := s.categoryRepository.AddCategoryItem(ctx, categoryItem); err != nil {
		return err
	}

	categoryID := targetCategory.ID
	item.SourceCategoryID = &categoryID
	return s.tripRepository.UpdateTripItem(ctx, item)
}

func (s *tripService) RemoveTripItem(ctx context.Context, itemID string, userID string) error {
	if _, err := s.tripRepository.GetTripItemByID(ctx, itemID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTripItemNotFound
		}
		return err
	}
	return s.tripRepository.DeleteTripItem(ctx, itemID)
}

func (s *tripService) GetProgress(ctx context.Context, tripID string, userID string) (domain.TripProgressResponse, error) {
	if _, err := s.tripRepository.GetTripByID(ctx, tripID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TripProgressResponse{}, domain.ErrTripNotFound
		}
		return domain.TripProgressResponse{}, err
	}

	packed, total, err := s.tripRepository.CountTripItems(ctx, tripID)
	if err != nil {
		return domain.TripProgressResponse{}, err
	}

	return progressOf(int(packed), int(total)), nil
}

func (s *tripService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	stats, err := s.tripRepository.GetDashboardStats(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	return domain.DashboardStatsResponse{
		TotalTrips:      int(stats["total_trips"].(int64)),
		ActiveTrips:     int(stats["active_trips"].(int64)),
		CompletedTrips:  int(stats["completed_trips"].(int64)),
		TotalCategories: int(stats["total_categories"].(int64)),
	}, nil
}

func progressOf(packed, total int) domain.TripProgressResponse {
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(packed) / float64(total) * 100))
	}
	return domain.TripProgressResponse{
		Packed:     packed,
		Total:      total,
		Percentage: percentage,
	}
}

func toTripResponse(trip *entities.Trip) domain.TripResponse {
	packed := 0
	for _, item := range trip.Items {
		if item.IsPacked {
			packed++
		}
	}
	return domain.TripResponse{
		ID:         trip.ID.String(),
		Name:       trip.Name,
		IsComplete: trip.IsComplete,
		Progress:   progressOf(packed, len(trip.Items)),
		CreatedAt:  trip.CreatedAt,
	}
}

func toTripItemResponse(item *entities.TripItem, categoryName string) domain.TripItemResponse {
	response := domain.TripItemResponse{
		ID:           item.ID.String(),
		Name:         item.Name,
		IsPacked:     item.IsPacked,
		IsCustom:     item.IsCustom,
		CategoryName: categoryName,
		CreatedAt:    item.CreatedAt,
	}
	if item.SourceCategoryID != nil {
		response.SourceCategoryID = item.SourceCategoryID.String()
	}
	return response
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}
