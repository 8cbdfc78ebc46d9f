package usecase

import (
	"context"
	"errors"

	"github.com/br70-Solution/voxia-app/internal/converter"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	"github.com/br70-Solution/voxia-app/internal/domain/repository"
	"github.com/br70-Solution/voxia-app/internal/infrastructure/cache"
	"github.com/br70-Solution/voxia-app/internal/service"
	"github.com/br70-Solution/voxia-app/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	sessions   *cache.SessionStore
	lists      *service.ListCache
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	sessions *cache.SessionStore,
	lists *service.ListCache,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
		lists:      lists,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	user.LastLogin = entity.Now()
	if err := u.userRepo.UpdateLastLogin(db, user.ID, user.LastLogin); err != nil {
		u.log.Warnf("Failed to update last login: %+v", err)
		return nil, err
	}
	u.lists.Invalidate(ctx, service.CollectionUsers)

	return &dto.LoginResponse{
		UserResponse:  *converter.UserToResponse(user),
		TokenResponse: *tokens,
	}, nil
}

// issueTokens signs an access/refresh pair and registers both token ids.
func (u *authUsecase) issueTokens(ctx context.Context, userID, email, role string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Save(ctx, string(jwt.AccessToken), accessTokenID, userID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Save(ctx, string(jwt.RefreshToken), refreshTokenID, userID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// Logout revokes the current access token and, when given, its refresh token.
func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshToken string) error {
	if err := u.sessions.Revoke(ctx, string(jwt.AccessToken), accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if refreshToken == "" {
		return nil
	}
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken {
		return nil
	}
	if err := u.sessions.Revoke(ctx, string(jwt.RefreshToken), claims.TokenID); err != nil {
		u.log.Warnf("Failed to revoke refresh token: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	owner, err := u.sessions.Owner(ctx, string(jwt.RefreshToken), claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if owner != claims.UserID {
		return nil, ErrTokenRevoked
	}

	// The refresh token is single use.
	if err := u.sessions.Revoke(ctx, string(jwt.RefreshToken), claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email, claims.Role)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}
