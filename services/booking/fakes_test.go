package booking

import (
	"context"
	"fmt"

	"mezbaan/models"
)

// fakeBackend is an in-memory stand-in for the catalog, booking and rating
// collaborators.
type fakeBackend struct {
	offerings map[string]*models.Offering
	detail    *models.BookingDetail
	detailErr error
	summaries []models.BookingSummary
	listErr   error

	created []submittedBooking
	updated []submittedBooking
	deleted []int
	ratings []models.RatingRequest

	createErr error
	updateErr error
	deleteErr error
	ratingErr error
}

type submittedBooking struct {
	Type    models.ServiceType
	ID      int
	Payload any
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{offerings: make(map[string]*models.Offering)}
}

func (f *fakeBackend) addOffering(t models.ServiceType, off *models.Offering) {
	f.offerings[fmt.Sprintf("%s/%d", t, off.ID)] = off
}

func (f *fakeBackend) FetchOffering(_ context.Context, t models.ServiceType, id int) (*models.Offering, error) {
	off, ok := f.offerings[fmt.Sprintf("%s/%d", t, id)]
	if !ok {
		return nil, NewNotFoundError("offering not found")
	}
	return off, nil
}

func (f *fakeBackend) FetchBooking(context.Context, models.ServiceType, int) (*models.BookingDetail, error) {
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	if f.detail == nil {
		return nil, NewNotFoundError("booking not found")
	}
	return f.detail, nil
}

func (f *fakeBackend) CreateBooking(_ context.Context, t models.ServiceType, payload any) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, submittedBooking{Type: t, Payload: payload})
	return nil
}

func (f *fakeBackend) UpdateBooking(_ context.Context, t models.ServiceType, id int, payload any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, submittedBooking{Type: t, ID: id, Payload: payload})
	return nil
}

func (f *fakeBackend) DeleteBooking(_ context.Context, _ models.ServiceType, id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBackend) FetchBookings(context.Context) ([]models.BookingSummary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.summaries, nil
}

func (f *fakeBackend) SubmitRating(_ context.Context, req models.RatingRequest) error {
	if f.ratingErr != nil {
		return f.ratingErr
	}
	f.ratings = append(f.ratings, req)
	return nil
}

func newTestService(backend *fakeBackend) *DefaultBookingService {
	return &DefaultBookingService{
		Catalog:  backend,
		Bookings: backend,
		Ratings:  backend,
	}
}
