package trip

import (
	"fmt"
	"strings"
)

// ValidationError is a locally detected precondition failure. When it is
// returned, zero network calls have been issued.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid trip draft: %s", e.Reason)
}

// CountryLookupError aborts the submission: no trip is created without a
// valid country id.
type CountryLookupError struct {
	Name string
	Err  error
}

func (e *CountryLookupError) Error() string {
	return fmt.Sprintf("country lookup for %q failed: %v", e.Name, e.Err)
}

func (e *CountryLookupError) Unwrap() error { return e.Err }

// ImageUploadError aborts the submission: when an image was selected, the
// trip is never created without it.
type ImageUploadError struct {
	Err error
}

func (e *ImageUploadError) Error() string {
	return fmt.Sprintf("image upload failed: %v", e.Err)
}

func (e *ImageUploadError) Unwrap() error { return e.Err }

// TripCreateError is a failed trip-create call. Status and Body carry the
// backend's answer when one was received; Status is zero for transport
// failures.
type TripCreateError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *TripCreateError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("trip create returned %d: %s", e.Status, string(e.Body))
	}
	return fmt.Sprintf("trip create failed: %v", e.Err)
}

func (e *TripCreateError) Unwrap() error { return e.Err }

// PartialAttachError collects per-companion failures after the trip itself
// was created. It never fails the submission; it rides along on the Result
// for the caller to display.
type PartialAttachError struct {
	Failed []CompanionOutcome
}

func (e *PartialAttachError) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for _, o := range e.Failed {
		ids = append(ids, o.UserID)
	}
	return fmt.Sprintf("%d companion attachment(s) failed: %s", len(e.Failed), strings.Join(ids, ", "))
}
