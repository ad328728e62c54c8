package services

import (
	"context"
	"testing"

	"blogapi/apperrors"
	"blogapi/database/testdb"
	"blogapi/models"
	"blogapi/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func TestRegisterRejectsTakenEmailBeforeInsert(t *testing.T) {
	store := new(mockUserStore)
	store.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	svc := NewUserService(store)
	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "  Taken@Example.com ",
		Username: "someone",
		Password: "secret123",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, repositories.ErrUserExists)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	db := testdb.New(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()

	user, err := svc.Register(ctx, &models.RegisterRequest{
		Email:       "New@Example.com",
		Username:    "newbie",
		Password:    "secret123",
		DisplayName: "  New Person ",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	require.NotNil(t, user.DisplayName)
	assert.Equal(t, "New Person", *user.DisplayName)
	assert.NotEqual(t, "secret123", user.Password)

	_, err = svc.Register(ctx, &models.RegisterRequest{Email: "new@example.com", Username: "other", Password: "secret123"})
	assert.ErrorIs(t, err, repositories.ErrUserExists)

	found, err := svc.Authenticate(ctx, "NEW@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = svc.Authenticate(ctx, "new@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "missing@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteUserOnlySelf(t *testing.T) {
	db := testdb.New(t)
	svc := NewUserService(repositories.NewUserRepository(db))
	ctx := context.Background()
	alice := testdb.CreateUser(t, db, "alice")
	bob := testdb.CreateUser(t, db, "bob")

	err := svc.DeleteUser(ctx, bob.ID, alice.ID)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	require.NoError(t, svc.DeleteUser(ctx, alice.ID, alice.ID))
	_, err = svc.GetUserByID(ctx, alice.ID)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
