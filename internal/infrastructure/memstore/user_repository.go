package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/codefold/user-directory/internal/domain/entity"
	"github.com/codefold/user-directory/internal/domain/repository"
)

// UserRepository is an in-memory implementation of repository.UserRepository.
//
// Records are stored as immutable *entity.User values in a sync.Map, so
// reads never block and an update is a read-transform-CompareAndSwap loop
// that retries on contention. The mu mutex serializes mutators only for the
// span of the uniqueness scan plus commit, so the email invariant holds even
// when two writers race on the same address.
type UserRepository struct {
	users sync.Map // id -> *entity.User, values never mutated in place
	mu    sync.Mutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// clone copies a record so callers never hold a pointer into the store.
func clone(u *entity.User) *entity.User {
	cp := *u
	if u.UpdatedAt != nil {
		t := *u.UpdatedAt
		cp.UpdatedAt = &t
	}
	return &cp
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]entity.User, 0)
	r.users.Range(func(_, v any) bool {
		out = append(out, *clone(v.(*entity.User)))
		return true
	})

	sort.Slice(out, func(i, j int) bool {
		ni, nj := strings.ToLower(out[i].FullName), strings.ToLower(out[j].FullName)
		if ni != nj {
			return ni < nj
		}
		return strings.ToLower(out[i].Email) < strings.ToLower(out[j].Email)
	})

	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, ok := r.users.Load(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clone(v.(*entity.User)), nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := clone(u)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(stored.Email, stored.ID) {
		return nil, repository.ErrEmailExists
	}
	if _, loaded := r.users.LoadOrStore(stored.ID, stored); loaded {
		return nil, repository.ErrAlreadyExists
	}
	return clone(stored), nil
}

func (r *UserRepository) Update(ctx context.Context, id string, transform func(entity.User) entity.User) (*entity.User, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v, ok := r.users.Load(id)
		if !ok {
			// Covers both "never existed" and "deleted before commit".
			return nil, repository.ErrNotFound
		}
		cur := v.(*entity.User)

		candidate := transform(*clone(cur))
		candidate.ID = id
		next := clone(&candidate)

		r.mu.Lock()
		if r.emailTaken(next.Email, id) {
			r.mu.Unlock()
			return nil, repository.ErrEmailExists
		}
		if r.users.CompareAndSwap(id, cur, next) {
			r.mu.Unlock()
			return clone(next), nil
		}
		r.mu.Unlock()
		// Lost the race to another writer; re-read and retry.
	}
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, loaded := r.users.LoadAndDelete(id)
	return loaded, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email, excludeID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.emailTaken(email, excludeID), nil
}

// emailTaken is a linear scan; fine at this scale. Lock-free when called
// through EmailExists, called under mu by mutators so the check and the
// commit are one atomic step.
func (r *UserRepository) emailTaken(email, excludeID string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	taken := false
	r.users.Range(func(k, v any) bool {
		if k.(string) == excludeID {
			return true
		}
		if strings.EqualFold(v.(*entity.User).Email, email) {
			taken = true
			return false
		}
		return true
	})
	return taken
}

var _ repository.UserRepository = (*UserRepository)(nil)
