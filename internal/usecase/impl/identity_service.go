// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"estate/config"
	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	users    repository.UserRepository
	sessions repository.SessionStore
	signer   service.TokenSigner
	hasher   service.PasswordHasher
	cfg      *config.Config
	logger   *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(
	users repository.UserRepository,
	sessions repository.SessionStore,
	signer service.TokenSigner,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.IdentityUsecase {
	return &identityService{
		users:    users,
		sessions: sessions,
		signer:   signer,
		hasher:   hasher,
		cfg:      cfg,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and opens its first session.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Registering user", slog.String("email", input.Email), slog.String("username", input.Username))

	roles, err := resolveRegistrationRoles(input.Roles)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: hash,
		Roles:        roles,
	}

	if err := srv.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrDuplicateIdentity.WrapMessage("registration rejected")
		}
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, domainerrors.ErrUnavailable.WrapMessage("credential store write failed")
	}

	tokens, err := srv.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID))

	return &usecase.RegisterOutput{User: user.Sanitized(), Tokens: tokens}, nil
}

// Login verifies a credential pair and replaces any existing session.
// Unknown identifiers and wrong passwords are indistinguishable to the
// caller, and both paths cost one hash comparison.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("identifier", input.Identifier))

	user, err := srv.users.FindByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.DummyCheck(input.Password)

			return nil, domainerrors.ErrInvalidCredential.WrapMessage("unknown identifier")
		}
		srv.log(ctx).Error("Failed to look up user", slog.Any("error", err))

		return nil, domainerrors.ErrUnavailable.WrapMessage("credential store read failed")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredential.WrapMessage("password mismatch")
	}

	tokens, err := srv.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := srv.users.TouchLastLogin(ctx, user.ID); err != nil {
		// The session is already live; a failed timestamp update is not
		// worth failing the login over.
		srv.log(ctx).Warn("Failed to record last login", slog.Any("error", err), slog.Any("user_id", user.ID))
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("user_id", user.ID))

	return &usecase.LoginOutput{User: user.Sanitized(), Tokens: tokens}, nil
}

// Refresh rotates the presented refresh token. The session owner is resolved
// from the token itself, never from caller-supplied identity.
func (srv *identityService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerrors.ErrInvalidRefreshToken.WrapMessage("missing refresh token")
	}

	userID, err := srv.sessions.Lookup(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrInvalidRefreshToken.WrapMessage("no session for token")
		}
		srv.log(ctx).Error("Failed to look up session", slog.Any("error", err))

		return nil, domainerrors.ErrUnavailable.WrapMessage("session store read failed")
	}

	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The account vanished under a live session; drop the session too.
			if delErr := srv.sessions.Delete(ctx, userID); delErr != nil {
				srv.log(ctx).Warn("Failed to drop orphaned session", slog.Any("error", delErr))
			}

			return nil, domainerrors.ErrInvalidRefreshToken.WrapMessage("session owner no longer exists")
		}
		srv.log(ctx).Error("Failed to load session owner", slog.Any("error", err))

		return nil, domainerrors.ErrUnavailable.WrapMessage("credential store read failed")
	}

	newRefresh := uuid.NewString()
	err = srv.sessions.CompareAndSwap(ctx, userID, input.RefreshToken, newRefresh, srv.cfg.Auth.RefreshTokenTTL)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionConflict):
			// The stored token changed between Lookup and the swap: a
			// concurrent refresh won the race.
			return nil, domainerrors.ErrConcurrentRefreshConflict.WrapMessage("lost rotation race")
		case errors.Is(err, repository.ErrSessionNotFound):
			return nil, domainerrors.ErrInvalidRefreshToken.WrapMessage("session expired during rotation")
		default:
			srv.log(ctx).Error("Failed to rotate session", slog.Any("error", err))

			return nil, domainerrors.ErrUnavailable.WrapMessage("session store write failed")
		}
	}

	access, err := srv.signer.Sign(user)
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.Any("error", err))

		return nil, domainerrors.ErrInternal.WrapMessage("failed to sign access token")
	}

	srv.log(ctx).Info("Session rotated", slog.Any("user_id", userID))

	return &usecase.RefreshOutput{
		Tokens: entity.TokenPair{AccessToken: access, RefreshToken: newRefresh},
	}, nil
}

// Logout revokes the session the presented refresh token belongs to. The
// token is validated against the store exactly as in refresh: an empty,
// unknown, or already-rotated token fails.
func (srv *identityService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input.RefreshToken == "" {
		return domainerrors.ErrInvalidRefreshToken.WrapMessage("missing refresh token")
	}

	userID, err := srv.sessions.Lookup(ctx, input.RefreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domainerrors.ErrInvalidRefreshToken.WrapMessage("no session for token")
		}
		srv.log(ctx).Error("Failed to look up session", slog.Any("error", err))

		return domainerrors.ErrUnavailable.WrapMessage("session store read failed")
	}

	if err := srv.sessions.Delete(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err), slog.Any("user_id", userID))

		return domainerrors.ErrUnavailable.WrapMessage("session store write failed")
	}

	srv.log(ctx).Info("Session revoked", slog.Any("user_id", userID))

	return nil
}

// VerifyAccessToken checks signature and expiry, then loads the token's
// subject from the credential store. A signed token whose account has since
// been deleted is rejected here, unlike at the edge, where verification is
// purely cryptographic.
func (srv *identityService) VerifyAccessToken(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.signer.Verify(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token verification failed")
	}

	user, err := srv.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrIdentityNotFound.WrapMessage("token subject no longer exists")
		}
		srv.log(ctx).Error("Failed to load token subject", slog.Any("error", err))

		return nil, domainerrors.ErrUnavailable.WrapMessage("credential store read failed")
	}

	return user.Sanitized(), nil
}

// SeedAdmin bootstraps the administrator account at startup when configured.
// An existing account with the seed email wins; the seed never overwrites.
func (srv *identityService) SeedAdmin(ctx context.Context) error {
	seed := srv.cfg.Auth.AdminSeed
	if seed == nil {
		return nil
	}

	if _, err := srv.users.FindByIdentifier(ctx, seed.Email); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check for existing admin")
	}

	hash, err := srv.hasher.Hash(seed.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash admin seed password")
	}

	admin := &entity.User{
		Email:        seed.Email,
		Username:     seed.Username,
		PasswordHash: hash,
		Roles:        entity.Roles{entity.RoleAdmin},
	}

	if err := srv.users.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			// A concurrent replica seeded it first.
			return nil
		}

		return errors.Wrap(err, "failed to create admin user")
	}

	srv.logger.Info("Seeded admin user", slog.String("email", seed.Email))

	return nil
}

// openSession mints the token pair for user and installs the refresh token as
// the user's single live session, replacing any previous one.
func (srv *identityService) openSession(ctx context.Context, user *entity.User) (entity.TokenPair, error) {
	access, err := srv.signer.Sign(user)
	if err != nil {
		srv.log(ctx).Error("Failed to sign access token", slog.Any("error", err))

		return entity.TokenPair{}, domainerrors.ErrInternal.WrapMessage("failed to sign access token")
	}

	refresh := uuid.NewString()
	if err := srv.sessions.Put(ctx, user.ID, refresh, srv.cfg.Auth.RefreshTokenTTL); err != nil {
		srv.log(ctx).Error("Failed to store session", slog.Any("error", err), slog.Any("user_id", user.ID))

		return entity.TokenPair{}, domainerrors.ErrUnavailable.WrapMessage("session store write failed")
	}

	return entity.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// resolveRegistrationRoles validates the requested roles and applies the
// default. ADMIN is never self-assignable.
func resolveRegistrationRoles(requested []string) (entity.Roles, error) {
	if len(requested) == 0 {
		return entity.Roles{entity.RoleBuyer}, nil
	}

	roles := make(entity.Roles, 0, len(requested))
	for _, raw := range requested {
		role := entity.Role(raw)
		if !role.IsValid() || !role.IsSelfAssignable() {
			return nil, domainerrors.ErrInvalidRoleAssignment.WrapMessage("role " + raw)
		}
		if !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles, nil
}
