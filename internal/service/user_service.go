package service

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/model"
	"Sheetcast/internal/pkg/consts"
	"Sheetcast/internal/pkg/redis"
	"Sheetcast/internal/pkg/security"
	"Sheetcast/internal/repository"
	"context"
	log "log/slog"
	"strings"

	"github.com/jinzhu/copier"
)

type UserService interface {
	SyncUser(ctx context.Context, claims *security.UserClaims) error
	GetUser(ctx context.Context, userID string) (*dto.UserDTO, error)
	Logout(ctx context.Context, token string) error
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// SyncUser 首次见到某个 sub 时建档，之后每次刷新资料
func (s *userServiceImpl) SyncUser(ctx context.Context, claims *security.UserClaims) error {
	if claims == nil || claims.UserID() == "" {
		return UnauthorizedError
	}

	firstName, lastName := claims.FirstName, claims.LastName
	if firstName == "" && lastName == "" && claims.Name != "" {
		firstName, lastName = splitName(claims.Name)
	}

	user := &model.User{
		Base:            model.Base{ID: claims.UserID()},
		FirstName:       firstName,
		LastName:        lastName,
		ProfileImageURL: claims.Picture,
	}
	if claims.Email != "" {
		email := claims.Email
		user.Email = &email
	}

	if err := s.userRepo.UpsertUser(ctx, user); err != nil {
		log.ErrorContext(ctx, "upsert user error", "user_id", user.ID, "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.DisplayName = user.DisplayName()
	return userDTO, nil
}

// Logout 签名进黑名单，过期时间与 token 有效期一致
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return UnauthorizedError
	}
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, true, security.JWTExpirationTime)
}

func (s *userServiceImpl) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return true, nil
	}
	return redis.Exists(ctx, consts.TokenBlacklistKey+signature)
}

func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	first, last, _ := strings.Cut(name, " ")
	return first, strings.TrimSpace(last)
}
