package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/codefold/user-directory/internal/domain/entity"
	repo "github.com/codefold/user-directory/internal/domain/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already in use")
)

type Service struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Logger: logger}
}

type CreateUserInput struct {
	Email    string
	FullName string
}

type UpdateUserInput struct {
	Email    string
	FullName string
}

func (s *Service) List(ctx context.Context) ([]entity.User, error) {
	return s.Repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	email := strings.TrimSpace(in.Email)
	fullName := strings.TrimSpace(in.FullName)

	// Advisory pre-check for a friendly conflict; the store re-validates
	// at commit time so a racing writer still cannot break uniqueness.
	taken, err := s.Repo.EmailExists(ctx, email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	u := &entity.User{
		ID:        uuid.NewString(),
		Email:     email,
		FullName:  fullName,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.Repo.Create(ctx, u)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrEmailExists):
			return nil, ErrEmailTaken
		case errors.Is(err, repo.ErrAlreadyExists):
			// Fresh UUIDs should never collide; treat as an internal fault.
			if s.Logger != nil {
				s.Logger.WithField("user_id", u.ID).Error("id collision on create")
			}
			return nil, err
		default:
			return nil, err
		}
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": created.ID, "email": created.Email}).Info("user created")
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateUserInput) (*entity.User, error) {
	email := strings.TrimSpace(in.Email)
	fullName := strings.TrimSpace(in.FullName)

	taken, err := s.Repo.EmailExists(ctx, email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	now := time.Now().UTC()
	updated, err := s.Repo.Update(ctx, id, func(u entity.User) entity.User {
		u.Email = email
		u.FullName = fullName
		u.UpdatedAt = &now
		return u
	})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repo.ErrEmailExists):
			return nil, ErrEmailTaken
		default:
			return nil, err
		}
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", updated.ID).Info("user updated")
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user deleted")
	}
	return nil
}
