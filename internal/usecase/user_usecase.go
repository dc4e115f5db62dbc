package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	"github.com/firaol-d/clubhub/internal/domain/entity"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

const errInternalServer = "internal server error"

// UserUsecase implements account registration, login, and session handling.
type UserUsecase struct {
	userRepo   contract.IUserRepository
	tokenStore contract.ITokenStore
	hasher     contract.IHasher
	jwtService JWTService
	logger     usecasecontract.IAppLogger
	config     usecasecontract.IConfigProvider
	validator  usecasecontract.IValidator
	uuidgen    contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	tokenStore contract.ITokenStore,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidgen contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
		config:     cfg,
		validator:  validator,
		uuidgen:    uuidgen,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register creates an account with role user and a pending membership. Role
// promotion only ever happens through the membership approval flow.
func (uc *UserUsecase) Register(ctx context.Context, username, email, password, firstName, lastName string) (*entity.User, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", entity.ErrValidation)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, errors.New(errInternalServer)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user with email %s", entity.ErrConflict, email)
	}

	existing, err = uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return nil, errors.New(errInternalServer)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user with username %s", entity.ErrConflict, username)
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, errors.New("failed to process password")
	}

	var pFirstName *string
	if firstName != "" {
		pFirstName = &firstName
	}
	var pLastName *string
	if lastName != "" {
		pLastName = &lastName
	}

	user := &entity.User{
		ID:               uc.uuidgen.NewUUID(),
		Username:         username,
		Email:            email,
		PasswordHash:     hashedPassword,
		Role:             entity.DefaultRole(),
		MembershipStatus: entity.MembershipPending,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
		FirstName:        pFirstName,
		LastName:         pLastName,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, err
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, errors.New("failed to register user")
	}
	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair. The
// refresh token's hash is kept in the session store for later verification
// and revocation.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	var user *entity.User
	var err error
	if uc.validator.ValidateEmail(email) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, email)
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, email)
	}
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", "", errors.New("invalid credentials")
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", "", errors.New(errInternalServer)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", errors.New("invalid credentials")
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", "", errors.New("failed to generate token")
	}
	refreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return nil, "", "", errors.New("failed to generate token")
	}

	ttl := uc.config.GetRefreshTokenExpiry()
	if err := uc.tokenStore.SaveRefreshToken(ctx, user.ID, uc.hasher.HashString(refreshToken), ttl); err != nil {
		uc.logger.Errorf("failed to store refresh token for user %s: %v", user.ID, err)
		return nil, "", "", errors.New("failed to store token")
	}

	return user, accessToken, refreshToken, nil
}

// Authenticate resolves an access token to a fresh user record so role and
// membership changes take effect without waiting for token expiry.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}
	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, errors.New(errInternalServer)
	}
	return user, nil
}

// RefreshToken rotates a valid refresh token into a new token pair.
func (uc *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", fmt.Errorf("invalid refresh token: %w", err)
	}

	storedHash, err := uc.tokenStore.GetRefreshToken(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", "", errors.New("refresh token not found or invalidated, please log in again")
		}
		uc.logger.Errorf("failed to retrieve stored refresh token: %v", err)
		return "", "", errors.New(errInternalServer)
	}
	if !uc.hasher.CheckHash(refreshToken, storedHash) {
		return "", "", errors.New("refresh token mismatch, please log in again")
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return "", "", errors.New("failed to generate token")
	}
	newRefreshToken, err := uc.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate refresh token: %v", err)
		return "", "", errors.New("failed to generate token")
	}
	if err := uc.tokenStore.SaveRefreshToken(ctx, user.ID, uc.hasher.HashString(newRefreshToken), uc.config.GetRefreshTokenExpiry()); err != nil {
		uc.logger.Errorf("failed to rotate refresh token for user %s: %v", user.ID, err)
		return "", "", errors.New("failed to store token")
	}
	return accessToken, newRefreshToken, nil
}

// Logout revokes the caller's refresh token.
func (uc *UserUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := uc.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return fmt.Errorf("invalid refresh token: %w", err)
	}
	if err := uc.tokenStore.DeleteRefreshToken(ctx, claims.UserID); err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to delete refresh token for user %s: %v", claims.UserID, err)
		return errors.New(errInternalServer)
	}
	return nil
}

// GetUserByID retrieves a user profile.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile applies profile field updates and returns the updated user.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*entity.User, error) {
	if len(updates) == 0 {
		return uc.userRepo.GetUserByID(ctx, userID)
	}
	updates["updated_at"] = time.Now()
	if err := uc.userRepo.UpdateUser(ctx, userID, updates); err != nil {
		uc.logger.Errorf("failed to update user %s: %v", userID, err)
		return nil, err
	}
	return uc.userRepo.GetUserByID(ctx, userID)
}
