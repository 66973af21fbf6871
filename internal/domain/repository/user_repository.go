package repository

import (
	"context"
	"errors"

	"github.com/codefold/user-directory/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("user not found")
	// ErrAlreadyExists is returned when a create collides on id.
	ErrAlreadyExists = errors.New("user already exists")
	// ErrEmailExists is returned when a commit would violate the
	// case-insensitive email uniqueness invariant.
	ErrEmailExists = errors.New("email already exists")
)

// UserRepository defines the interface for user storage operations.
// All methods are safe for concurrent use; callers receive copies,
// never references into the live store.
type UserRepository interface {
	// List returns a snapshot of all users sorted by full name then
	// email, both case-insensitively.
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	// Update atomically applies transform to the current record and
	// commits the result, retrying on concurrent modification until the
	// commit lands or the record disappears.
	Update(ctx context.Context, id string, transform func(entity.User) entity.User) (*entity.User, error)
	// Delete removes the record if present and reports whether it did.
	Delete(ctx context.Context, id string) (bool, error)
	// EmailExists reports whether any record other than excludeID has a
	// case-insensitively equal email. Blank emails never match.
	EmailExists(ctx context.Context, email, excludeID string) (bool, error)
}
