package query

import (
	"context"
	"errors"
	"time"

	"github.com/nightowlapp/nightowl/internal/common"
	"github.com/nightowlapp/nightowl/internal/models"
	"github.com/nightowlapp/nightowl/internal/repositories/repomanager"
)

// Facade resolves typed requests against the record store. All methods are
// safe for concurrent use; the store provides last-writer-wins semantics,
// there is no cross-caller mutual exclusion.
type Facade struct {
	rm  repomanager.RepositoryManager
	now func() time.Time
}

func NewFacade(rm repomanager.RepositoryManager) *Facade {
	return &Facade{rm: rm, now: time.Now}
}

// SingleProfile returns exactly one profile matching the filter. A miss is
// reported as *Error with CodeNotFound, not as a fault.
func (f *Facade) SingleProfile(ctx context.Context, flt Filter) (*models.Profile, error) {
	repo := f.rm.Profiles()

	var (
		p   *models.Profile
		err error
	)
	switch flt.Col {
	case ColID:
		p, err = repo.GetByID(ctx, flt.Value)
	case ColEmail:
		p, err = repo.GetByEmail(ctx, flt.Value)
	default:
		return nil, &Error{Code: CodeInternal, Message: "unsupported filter column"}
	}

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, notFound()
		}
		return nil, internal(err)
	}
	return p, nil
}

// ListProfiles returns up to limit profiles ordered by creation time
// ascending. limit <= 0 means all.
func (f *Facade) ListProfiles(ctx context.Context, limit int) ([]models.Profile, error) {
	result, err := f.rm.Profiles().List(ctx, limit)
	if err != nil {
		return nil, internal(err)
	}
	return result, nil
}

// InsertProfile writes the profile keyed by its id, replacing any existing
// row with the same id. Zero timestamps are stamped with the current time.
func (f *Facade) InsertProfile(ctx context.Context, p *models.Profile) error {
	stored := p.Clone()
	ts := f.now()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = ts
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = ts
	}

	if err := f.rm.Profiles().Upsert(ctx, stored); err != nil {
		return internal(err)
	}
	return nil
}

// UpdateProfile merges the patch onto the profile matching the filter and
// stamps UpdatedAt strictly after its previous value. No match is a no-op
// success, mirroring SQL UPDATE semantics.
func (f *Facade) UpdateProfile(ctx context.Context, flt Filter, patch ProfilePatch) error {
	current, err := f.SingleProfile(ctx, flt)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}

	patch.Apply(current)

	ts := f.now()
	if !ts.After(current.UpdatedAt) {
		ts = current.UpdatedAt.Add(time.Nanosecond)
	}
	current.UpdatedAt = ts

	if err := f.rm.Profiles().Upsert(ctx, current); err != nil {
		return internal(err)
	}
	return nil
}
