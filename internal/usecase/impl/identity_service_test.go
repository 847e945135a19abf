package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"estate/config"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	mockRepo "estate/internal/mocks/repository"
	mockSvc "estate/internal/mocks/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service  usecase.IdentityUsecase
	users    *mockRepo.MockUserRepository
	sessions *mockRepo.MockSessionStore
	signer   *mockSvc.MockTokenSigner
	hasher   *mockSvc.MockPasswordHasher
	cfg      *config.Config
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	users := mockRepo.NewMockUserRepository(t)
	sessions := mockRepo.NewMockSessionStore(t)
	signer := mockSvc.NewMockTokenSigner(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}

	service := NewIdentityService(users, sessions, signer, hasher, cfg, logger)

	return identityServiceFixtures{
		service:  service,
		users:    users,
		sessions: sessions,
		signer:   signer,
		hasher:   hasher,
		cfg:      cfg,
	}
}

func TestIdentityService_Register_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "buyer@example.com",
		Username: "buyer",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.signer.EXPECT().Sign(mock.AnythingOfType("*entity.User")).Return("access_token", nil)

	fx.sessions.EXPECT().
		Put(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string"), fx.cfg.Auth.RefreshTokenTTL).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.Roles{entity.RoleBuyer}, output.User.Roles)
	assert.Empty(t, output.User.PasswordHash)
	assert.Equal(t, "access_token", output.Tokens.AccessToken)
	assert.NotEmpty(t, output.Tokens.RefreshToken)
}

func TestIdentityService_Register_SellerRole(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "seller@example.com",
		Username: "seller",
		Password: "Password123!",
		Roles:    []string{"SELLER"},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.signer.EXPECT().Sign(mock.AnythingOfType("*entity.User")).Return("access_token", nil)
	fx.sessions.EXPECT().
		Put(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string"), fx.cfg.Auth.RefreshTokenTTL).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.Roles{entity.RoleSeller}, output.User.Roles)
}

func TestIdentityService_Register_AdminNotSelfAssignable(t *testing.T) {
	fx := createTestIdentityService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "sneaky@example.com",
		Username: "sneaky",
		Password: "Password123!",
		Roles:    []string{"ADMIN"},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRoleAssignment)
}

func TestIdentityService_Register_UnknownRole(t *testing.T) {
	fx := createTestIdentityService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "someone@example.com",
		Username: "someone",
		Password: "Password123!",
		Roles:    []string{"LANDLORD"},
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRoleAssignment)
}

func TestIdentityService_Register_DuplicateIdentity(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Username: "taken",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentity)
}

func TestIdentityService_Login_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "buyer@example.com",
		Username:     "buyer",
		PasswordHash: "hashed_password",
		Roles:        entity.Roles{entity.RoleBuyer},
	}

	fx.users.EXPECT().FindByIdentifier(ctx, "buyer").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.signer.EXPECT().Sign(user).Return("access_token", nil)
	fx.sessions.EXPECT().
		Put(ctx, userID, mock.AnythingOfType("string"), fx.cfg.Auth.RefreshTokenTTL).
		Return(nil)
	fx.users.EXPECT().TouchLastLogin(ctx, userID).Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "buyer", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.Tokens.AccessToken)
	assert.NotEmpty(t, output.Tokens.RefreshToken)
	assert.Empty(t, output.User.PasswordHash)
}

func TestIdentityService_Login_UnknownIdentifier(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	fx.users.EXPECT().FindByIdentifier(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	// Timing parity: a hash comparison is still burned
	fx.hasher.EXPECT().DummyCheck("whatever").Return()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
}

func TestIdentityService_Login_WrongPassword(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "buyer@example.com",
		PasswordHash: "hashed_password",
		Roles:        entity.Roles{entity.RoleBuyer},
	}

	fx.users.EXPECT().FindByIdentifier(ctx, "buyer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "buyer@example.com", Password: "wrong"})

	// Indistinguishable from the unknown-identifier failure
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
}

func TestIdentityService_Login_TouchLastLoginFailureIsNotFatal(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "buyer@example.com",
		PasswordHash: "hashed_password",
		Roles:        entity.Roles{entity.RoleBuyer},
	}

	fx.users.EXPECT().FindByIdentifier(ctx, "buyer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.signer.EXPECT().Sign(user).Return("access_token", nil)
	fx.sessions.EXPECT().
		Put(ctx, userID, mock.AnythingOfType("string"), fx.cfg.Auth.RefreshTokenTTL).
		Return(nil)
	fx.users.EXPECT().TouchLastLogin(ctx, userID).Return(repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "buyer@example.com", Password: "Password123!"})

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestIdentityService_Refresh_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	oldToken := uuid.NewString()
	user := &entity.User{ID: userID, Roles: entity.Roles{entity.RoleBuyer}}

	fx.sessions.EXPECT().Lookup(ctx, oldToken).Return(userID, nil)
	fx.users.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.sessions.EXPECT().
		CompareAndSwap(ctx, userID, oldToken, mock.AnythingOfType("string"), fx.cfg.Auth.RefreshTokenTTL).
		Return(nil)
	fx.signer.EXPECT().Sign(user).Return("new_access_token", nil)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: oldToken})

	require.NoError(t, err)
	assert.Equal(t, "new_access_token", output.Tokens.AccessToken)
	assert.NotEmpty(t, output.Tokens.RefreshToken)
	assert.NotEqual(t, oldToken, output.Tokens.RefreshToken)
}

func TestIdentityService_Refresh_StaleToken(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	fx.sessions.EXPECT().Lookup(ctx, "stale").Return(uuid.Nil, repository.ErrSessionNotFound)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "stale"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestIdentityService_Refresh_MissingToken(t *testing.T) {
	fx := createTestIdentityService(t)

	_, err := fx.service.Refresh(context.Background(), &usecase.RefreshInput{})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestIdentityService_Refresh_ConcurrentRotationConflict(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := uuid.NewString()
	user := &entity.User{ID: userID, Roles: entity.Roles{entity.RoleBuyer}}

	fx.sessions.EXPECT().Lookup(ctx, token).Return(userID, nil)
	fx.users.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.sessions.EXPECT().
		CompareAndSwap(ctx, userID, token, mock.AnythingOfType("string"), fx.cfg.Auth.RefreshTokenTTL).
		Return(repository.ErrSessionConflict)

	output, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: token})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrConcurrentRefreshConflict)
}

func TestIdentityService_Refresh_OwnerDeleted(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := uuid.NewString()

	fx.sessions.EXPECT().Lookup(ctx, token).Return(userID, nil)
	fx.users.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	fx.sessions.EXPECT().Delete(ctx, userID).Return(nil)

	_, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: token})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestIdentityService_Logout_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	token := uuid.NewString()

	fx.sessions.EXPECT().Lookup(ctx, token).Return(userID, nil)
	fx.sessions.EXPECT().Delete(ctx, userID).Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: token})

	assert.NoError(t, err)
}

func TestIdentityService_Logout_UnknownToken(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	fx.sessions.EXPECT().Lookup(ctx, "gone").Return(uuid.Nil, repository.ErrSessionNotFound)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "gone"})

	// Same failure as refresh: the token is validated against the store
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestIdentityService_Logout_EmptyToken(t *testing.T) {
	fx := createTestIdentityService(t)

	err := fx.service.Logout(context.Background(), &usecase.LogoutInput{})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestIdentityService_VerifyAccessToken_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &entity.AccessClaims{
		UserID:   userID,
		Roles:    entity.Roles{entity.RoleSeller},
		Email:    "seller@example.com",
		Username: "seller",
	}
	stored := &entity.User{
		ID:           userID,
		Email:        "seller@example.com",
		Username:     "seller",
		PasswordHash: "hashed_password",
		Roles:        entity.Roles{entity.RoleSeller},
	}

	fx.signer.EXPECT().Verify("token").Return(claims, nil)
	fx.users.EXPECT().FindByID(ctx, userID).Return(stored, nil)

	user, err := fx.service.VerifyAccessToken(ctx, "token")

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, entity.Roles{entity.RoleSeller}, user.Roles)
	assert.Empty(t, user.PasswordHash)
}

func TestIdentityService_VerifyAccessToken_DeletedUser(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &entity.AccessClaims{UserID: userID, Roles: entity.Roles{entity.RoleBuyer}}

	// The signature is fine, but the account behind the token is gone
	fx.signer.EXPECT().Verify("orphaned").Return(claims, nil)
	fx.users.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.VerifyAccessToken(ctx, "orphaned")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
}

func TestIdentityService_VerifyAccessToken_Invalid(t *testing.T) {
	fx := createTestIdentityService(t)

	fx.signer.EXPECT().Verify("garbage").Return(nil, assert.AnError)

	user, err := fx.service.VerifyAccessToken(context.Background(), "garbage")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestIdentityService_SeedAdmin(t *testing.T) {
	fx := createTestIdentityService(t)
	fx.cfg.Auth.AdminSeed = &config.AdminSeedConfig{
		Email:    "admin@example.com",
		Username: "admin",
		Password: "AdminPassword1!",
	}

	ctx := context.Background()
	fx.users.EXPECT().FindByIdentifier(ctx, "admin@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("AdminPassword1!").Return("hashed_admin", nil)
	fx.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, entity.Roles{entity.RoleAdmin}, user.Roles)
		}).
		Return(nil)

	assert.NoError(t, fx.service.SeedAdmin(ctx))
}

func TestIdentityService_SeedAdmin_AlreadyExists(t *testing.T) {
	fx := createTestIdentityService(t)
	fx.cfg.Auth.AdminSeed = &config.AdminSeedConfig{
		Email:    "admin@example.com",
		Username: "admin",
		Password: "AdminPassword1!",
	}

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "admin@example.com"}
	fx.users.EXPECT().FindByIdentifier(ctx, "admin@example.com").Return(existing, nil)

	assert.NoError(t, fx.service.SeedAdmin(ctx))
}

func TestIdentityService_SeedAdmin_NotConfigured(t *testing.T) {
	fx := createTestIdentityService(t)

	assert.NoError(t, fx.service.SeedAdmin(context.Background()))
}
