package impl

import (
	"context"
	"log/slog"

	domainerrors "mawadda/internal/domain/errors"
	"mawadda/internal/domain/repository"
	"mawadda/internal/domain/service"
	"mawadda/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface for staff accounts.
type authService struct {
	personRepo   repository.PersonRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	personRepo repository.PersonRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		personRepo:   personRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Login authenticates a staff member and issues an access/refresh token pair.
// Non-staff accounts are rejected even with valid credentials.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting staff login", slog.String("email", input.Email))

	person, err := srv.personRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			srv.logger.Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "login lookup")
	}

	// bcrypt check before the role gate, so timing does not reveal whether
	// the account exists as staff.
	if !srv.hasher.Check(input.Password, person.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !person.Role.IsStaff() {
		srv.logger.Warn("Login rejected for non-staff account", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(person.ID, []string{string(person.Role)})
	if err != nil {
		srv.logger.Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Person:       person,
	}, nil
}
