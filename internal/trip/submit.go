// Package trip sequences the multi-step submission workflow: derive the
// country from the resolved location, look it up, upload the image if one
// was selected, create the trip, then attach companions. Steps up to and
// including trip creation abort the whole submission on failure; companion
// attachment is best-effort and never rolls anything back.
package trip

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"triptales/internal/api"
	"triptales/internal/dto"
	"triptales/internal/geo"
	"triptales/internal/models"
)

// Backend is the slice of the API client the submitter needs.
type Backend interface {
	CountryByName(ctx context.Context, name string) (models.Country, error)
	CreateTrip(ctx context.Context, req dto.CreateTripRequest) (dto.TripResponse, error)
	AttachCompanion(ctx context.Context, tripID, userID string) error
}

var _ Backend = (*api.Client)(nil)

// ImageUploader is the image-host contract.
type ImageUploader interface {
	Upload(ctx context.Context, imageBytes []byte) (string, error)
}

// CompanionOutcome is the result of one attach call.
type CompanionOutcome struct {
	UserID string
	Err    error
}

// Result is the terminal outcome of a successful submission. When the 201
// response could not be decoded, TripID is empty, Warning carries the
// decode error, and no attach calls were made. The trip row may still
// exist server-side, so this is not an overall failure.
type Result struct {
	TripID    string
	Outcomes  []CompanionOutcome
	AttachErr *PartialAttachError
	Warning   error
}

// Attached counts companion attachments that succeeded.
func (r Result) Attached() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

// Submitter orchestrates trip submission. One Submitter is safe for
// concurrent use; all per-attempt state lives on the stack.
type Submitter struct {
	backend  Backend
	uploader ImageUploader
	log      *slog.Logger
}

// NewSubmitter builds a Submitter. uploader may be nil when the image host
// is not configured; drafts with images then fail with ImageUploadError.
func NewSubmitter(backend Backend, uploader ImageUploader, logger *slog.Logger) *Submitter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Submitter{backend: backend, uploader: uploader, log: logger}
}

// Submit runs the whole workflow for one draft. There are no retries: a
// failure requires the caller to re-invoke Submit from scratch, and
// resubmission after partial success can create a duplicate trip.
func (s *Submitter) Submit(ctx context.Context, draft models.TripDraft) (Result, error) {
	if err := validate(draft); err != nil {
		return Result{}, err
	}

	log := s.log.With("submission", uuid.NewString())

	countryName := geo.CountryName(draft.LocationName)
	country, err := s.backend.CountryByName(ctx, countryName)
	if err != nil {
		return Result{}, &CountryLookupError{Name: countryName, Err: err}
	}
	log.Debug("country resolved", "name", countryName, "country_id", country.CountryID)

	var imageURL *string
	if draft.HasImage() {
		if s.uploader == nil {
			return Result{}, &ImageUploadError{Err: errors.New("image host not configured")}
		}
		url, err := s.uploader.Upload(ctx, draft.ImageBytes)
		if err != nil {
			return Result{}, &ImageUploadError{Err: err}
		}
		imageURL = &url
		log.Debug("image uploaded", "url", url)
	}

	created, err := s.backend.CreateTrip(ctx, dto.CreateTripRequest{
		Title:       draft.Title,
		Description: draft.Description,
		Image:       imageURL,
		Latitude:    draft.Latitude,
		Longitude:   draft.Longitude,
		CountryID:   country.CountryID,
	})
	if err != nil {
		var decodeErr *api.DecodeError
		if errors.As(err, &decodeErr) {
			// The backend accepted the request but the body was
			// unreadable. The trip row likely exists, so the
			// submission counts as done, but without a trip id the
			// companions cannot be attached.
			log.Warn("trip created but response undecodable", "err", err)
			return Result{Warning: err}, nil
		}
		var serverErr *api.ServerError
		if errors.As(err, &serverErr) {
			return Result{}, &TripCreateError{Status: serverErr.Status, Body: serverErr.Body, Err: err}
		}
		if errors.Is(err, api.ErrUnauthorized) {
			return Result{}, &TripCreateError{Status: 401, Err: err}
		}
		return Result{}, &TripCreateError{Err: err}
	}
	log.Info("trip created", "trip_id", created.TripID)

	result := Result{TripID: created.TripID}
	result.Outcomes = s.attachCompanions(ctx, log, created.TripID, draft.CompanionIDs)

	var failed []CompanionOutcome
	for _, o := range result.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	if len(failed) > 0 {
		result.AttachErr = &PartialAttachError{Failed: failed}
		log.Warn("companion attachment incomplete",
			"trip_id", created.TripID,
			"attached", result.Attached(),
			"failed", len(failed))
	}

	return result, nil
}

// attachCompanions fans out one attach call per companion. The calls are
// unordered and independent: a failure neither cancels siblings nor rolls
// back the trip.
func (s *Submitter) attachCompanions(ctx context.Context, log *slog.Logger, tripID string, companionIDs []string) []CompanionOutcome {
	if len(companionIDs) == 0 {
		return nil
	}

	outcomes := make([]CompanionOutcome, len(companionIDs))
	var g errgroup.Group
	for i, userID := range companionIDs {
		i, userID := i, userID
		g.Go(func() error {
			err := s.backend.AttachCompanion(ctx, tripID, userID)
			outcomes[i] = CompanionOutcome{UserID: userID, Err: err}
			if err != nil {
				log.Warn("companion attach failed", "trip_id", tripID, "user_id", userID, "err", err)
			}
			return nil
		})
	}
	g.Wait()
	return outcomes
}

func validate(draft models.TripDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return &ValidationError{Reason: "title is required"}
	}
	if strings.TrimSpace(draft.Description) == "" {
		return &ValidationError{Reason: "description is required"}
	}
	if strings.TrimSpace(draft.LocationName) == "" {
		return &ValidationError{Reason: "resolved location is required"}
	}
	return nil
}
