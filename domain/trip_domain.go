package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateTrip        = "trip created successfully"
	MessageSuccessGetTrips          = "trips retrieved successfully"
	MessageSuccessGetTrip           = "trip retrieved successfully"
	MessageSuccessDeleteTrip        = "trip deleted successfully"
	MessageSuccessCompleteTrip      = "trip completion toggled successfully"
	MessageSuccessAddTripItem       = "trip item added successfully"
	MessageSuccessUpdateTripItem    = "trip item updated successfully"
	MessageSuccessDeleteTripItem    = "trip item deleted successfully"
	MessageSuccessPromoteTripItem   = "trip item added to category successfully"
	MessageSuccessGetProgress       = "trip progress retrieved successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedCreateTrip        = "failed to create trip"
	MessageFailedGetTrips          = "failed to retrieve trips"
	MessageFailedGetTrip           = "failed to retrieve trip"
	MessageFailedDeleteTrip        = "failed to delete trip"
	MessageFailedCompleteTrip      = "failed to toggle trip completion"
	MessageFailedAddTripItem       = "failed to add trip item"
	MessageFailedUpdateTripItem    = "failed to update trip item"
	MessageFailedDeleteTripItem    = "failed to delete trip item"
	MessageFailedPromoteTripItem   = "failed to add trip item to category"
	MessageFailedGetProgress       = "failed to retrieve trip progress"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrTripNotFound            = errors.New("trip not found")
	ErrTripItemNotFound        = errors.New("trip item not found")
	ErrTripNameEmpty           = errors.New("trip name must not be empty")
	ErrUnknownCategorySelected = errors.New("selected category does not exist")
)

type (
	CreateTripRequest struct {
		Name        string   `json:"name" validate:"required"`
		CategoryIDs []string `json:"category_ids" validate:"omitempty,dive,uuid"`
		// TemplateTripID switches creation into template mode: categories are
		// taken from the source trip's stored category names and its custom
		// items are copied forward.
		TemplateTripID string `json:"template_trip_id" validate:"omitempty,uuid"`
	}

	AddTripItemRequest struct {
		Name string `json:"name" validate:"required"`
	}

	UpdateTripItemRequest struct {
		Name     *string `json:"name" validate:"omitempty"`
		IsPacked *bool   `json:"is_packed" validate:"omitempty"`
	}

	PromoteTripItemRequest struct {
		CategoryID string `json:"category_id" validate:"required,uuid"`
	}

	TripItemResponse struct {
		ID               string    `json:"id"`
		Name             string    `json:"name"`
		IsPacked         bool      `json:"is_packed"`
		IsCustom         bool      `json:"is_custom"`
		CategoryName     string    `json:"category_name,omitempty"`
		SourceCategoryID string    `json:"source_category_id,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
	}

	TripCategoryResponse struct {
		ID           string             `json:"id"`
		CategoryName string             `json:"category_name"`
		Items        []TripItemResponse `json:"items"`
	}

	TripProgressResponse struct {
		Packed     int `json:"packed"`
		Total      int `json:"total"`
		Percentage int `json:"percentage"`
	}

	TripResponse struct {
		ID         string               `json:"id"`
		Name       string               `json:"name"`
		IsComplete bool                 `json:"is_complete"`
		Progress   TripProgressResponse `json:"progress"`
		CreatedAt  time.Time            `json:"created_at"`
	}

	TripDetailResponse struct {
		ID             string                 `json:"id"`
		Name           string                 `json:"name"`
		IsComplete     bool                   `json:"is_complete"`
		Progress       TripProgressResponse   `json:"progress"`
		TripCategories []TripCategoryResponse `json:"trip_categories"`
		CustomItems    []TripItemResponse     `json:"custom_items"`
		CreatedAt      time.Time              `json:"created_at"`
	}

	TripListResponse struct {
		ActiveTrips    []TripResponse `json:"active_trips"`
		CompletedTrips []TripResponse `json:"completed_trips"`
	}

	DashboardStatsResponse struct {
		TotalTrips      int `json:"total_trips"`
		ActiveTrips     int `json:"active_trips"`
		CompletedTrips  int `json:"completed_trips"`
		TotalCategories int `json:"total_categories"`
	}
)
