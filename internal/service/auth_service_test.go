package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VutaRaghu/ops-oasis-eats-app/internal/config"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/dto"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/model"
	"github.com/VutaRaghu/ops-oasis-eats-app/internal/repository"
)

// stubUserRepo is an in-memory UserRepository for testing.
type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Active {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.Active = false
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func testAuthService(t *testing.T) (AuthService, *stubUserRepo) {
	t.Helper()
	repo := newStubUserRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return NewAuthService(repo, cfg), repo
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestLogin_RoundTrip(t *testing.T) {
	svc, _ := testAuthService(t)

	created, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "owner", Name: "Owner", Password: "s3cret-pass", Role: model.RoleAdmin,
	})
	require.NoError(t, err)
	assert.True(t, created.Active)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "owner", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := testAuthService(t)
	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "owner", Name: "Owner", Password: "s3cret-pass", Role: model.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "owner", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := testAuthService(t)
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_IssuesNewPair(t *testing.T) {
	svc, _ := testAuthService(t)
	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "cashier1", Name: "Priya Patel", Password: "s3cret-pass", Role: model.RoleCashier,
	})
	require.NoError(t, err)

	first, err := svc.Login(context.Background(), dto.LoginRequest{Username: "cashier1", Password: "s3cret-pass"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "cashier1", refreshed.User.Username)
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc, _ := testAuthService(t)
	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestRefresh_DeactivatedUser(t *testing.T) {
	svc, repo := testAuthService(t)
	created, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "cashier1", Name: "Priya Patel", Password: "s3cret-pass", Role: model.RoleCashier,
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "cashier1", Password: "s3cret-pass"})
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Deactivate(context.Background(), id))

	_, err = svc.Refresh(context.Background(), resp.RefreshToken)
	assert.Error(t, err)
}

func TestUpdateUser_RoleAndPassword(t *testing.T) {
	svc, _ := testAuthService(t)
	created, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "cashier1", Name: "Priya Patel", Password: "old-password", Role: model.RoleCashier,
	})
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	role := model.RoleManager
	password := "new-password1"
	updated, err := svc.UpdateUser(context.Background(), id, dto.UpdateUserRequest{
		Role: &role, Password: &password,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleManager, updated.Role)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "cashier1", Password: "old-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "cashier1", Password: "new-password1"})
	assert.NoError(t, err)
}
