package application_test

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/codefold/user-directory/internal/application"
	"github.com/codefold/user-directory/internal/infrastructure/memstore"
)

func newService() *application.Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return application.NewService(memstore.NewUserRepository(), logger)
}

func TestService_Create(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	u, err := svc.Create(ctx, application.CreateUserInput{
		Email:    "  alice@example.com ",
		FullName: " Alice A  ",
	})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "alice@example.com", u.Email)
	require.Equal(t, "Alice A", u.FullName)
	require.False(t, u.CreatedAt.IsZero())
	require.Nil(t, u.UpdatedAt)

	found, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, found.Email)
	require.Equal(t, u.FullName, found.FullName)
}

func TestService_Create_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, application.CreateUserInput{Email: "a@example.com", FullName: "A B"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, application.CreateUserInput{Email: "A@Example.COM", FullName: "C D"})
	require.ErrorIs(t, err, application.ErrEmailTaken)
}

func TestService_Get_NotFound(t *testing.T) {
	svc := newService()

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, application.ErrUserNotFound)
}

func TestService_Update(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, application.CreateUserInput{Email: "a@example.com", FullName: "A B"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, application.UpdateUserInput{
		Email:    "a@example.com",
		FullName: "C D",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "C D", updated.FullName)
	require.NotNil(t, updated.UpdatedAt)
	require.True(t, updated.UpdatedAt.After(updated.CreatedAt), "UpdatedAt should be after CreatedAt")
}

func TestService_Update_KeepingOwnEmail(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, application.CreateUserInput{Email: "a@example.com", FullName: "A B"})
	require.NoError(t, err)

	// Re-submitting the current email is not a conflict.
	_, err = svc.Update(ctx, created.ID, application.UpdateUserInput{Email: "A@example.com", FullName: "A B"})
	require.NoError(t, err)
}

func TestService_Update_EmailTaken(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, application.CreateUserInput{Email: "a@example.com", FullName: "A B"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, application.CreateUserInput{Email: "b@example.com", FullName: "C D"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, second.ID, application.UpdateUserInput{Email: "a@example.com", FullName: "C D"})
	require.ErrorIs(t, err, application.ErrEmailTaken)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := newService()

	_, err := svc.Update(context.Background(), "missing", application.UpdateUserInput{
		Email:    "a@example.com",
		FullName: "A B",
	})
	require.ErrorIs(t, err, application.ErrUserNotFound)

	// The failed update must not create a record.
	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestService_Delete(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, application.CreateUserInput{Email: "a@example.com", FullName: "A B"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, application.ErrUserNotFound)

	require.ErrorIs(t, svc.Delete(ctx, created.ID), application.ErrUserNotFound)
}
