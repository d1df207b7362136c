package usecase

import (
	"context"
	"fmt"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
)

type DoctorDirectoryUsecase interface {
	// FetchRaw returns the upstream payload untouched.
	FetchRaw(ctx context.Context) ([]byte, error)
	// LoadListing performs the single fetch of a page view.
	LoadListing(ctx context.Context) entity.Listing
	Browse(ctx context.Context, state entity.FilterState) (*dto.DoctorListResponse, error)
	Specialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	Suggest(ctx context.Context, query string) (*dto.SuggestionListResponse, error)
}

type doctorDirectoryUsecase struct {
	log    *logrus.Logger
	source repository.DoctorSource
}

func NewDoctorDirectoryUsecase(log *logrus.Logger, source repository.DoctorSource) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:    log,
		source: source,
	}
}

func (u *doctorDirectoryUsecase) FetchRaw(ctx context.Context) ([]byte, error) {
	payload, err := u.source.Fetch(ctx)
	if err != nil {
		u.log.Errorf("Error fetching doctors: %+v", err)
		return nil, err
	}
	return payload, nil
}

func (u *doctorDirectoryUsecase) LoadListing(ctx context.Context) entity.Listing {
	payload, err := u.FetchRaw(ctx)
	if err != nil {
		return entity.FailedListing(err)
	}

	doctors, err := converter.NormalizeDoctors(payload)
	if err != nil {
		u.log.Errorf("Error normalizing doctors: %+v", err)
		return entity.FailedListing(err)
	}

	u.log.WithField("count", len(doctors)).Debug("Doctors loaded")
	return entity.ReadyListing(doctors, converter.SpecialtyUniverse(doctors))
}

func (u *doctorDirectoryUsecase) Browse(ctx context.Context, state entity.FilterState) (*dto.DoctorListResponse, error) {
	listing, err := u.readyListing(ctx)
	if err != nil {
		return nil, err
	}

	visible := Visible(listing.Doctors, state)
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(visible),
		Total:   len(visible),
		Query:   converter.EncodeFilterState(state),
	}, nil
}

func (u *doctorDirectoryUsecase) Specialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	listing, err := u.readyListing(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: listing.Specialties,
		Total:       len(listing.Specialties),
	}, nil
}

func (u *doctorDirectoryUsecase) Suggest(ctx context.Context, query string) (*dto.SuggestionListResponse, error) {
	listing, err := u.readyListing(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.SuggestionListResponse{
		Suggestions: converter.DoctorsToSuggestions(SuggestIn(listing, query)),
	}, nil
}

func (u *doctorDirectoryUsecase) readyListing(ctx context.Context) (entity.Listing, error) {
	listing := u.LoadListing(ctx)
	if listing.Status != entity.ListingReady {
		return listing, fmt.Errorf("load doctors: %w", listing.Err)
	}
	return listing, nil
}

// SuggestIn runs the suggestion index over a ready listing.
func SuggestIn(listing entity.Listing, query string) []entity.Doctor {
	if listing.Status != entity.ListingReady {
		return nil
	}
	return service.NewSuggestionIndex(listing.Doctors).Suggest(query)
}

// Reduce is the single entry point for filter changes: it derives the next
// state and its query encoding together.
func Reduce(state entity.FilterState, update entity.FilterUpdate) (entity.FilterState, string) {
	next := state.Apply(update)
	return next, converter.EncodeFilterState(next)
}
