package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/Suraj999-github/MauiBankApp/internal/users/domain"
	"github.com/Suraj999-github/MauiBankApp/internal/users/repository"
	"github.com/Suraj999-github/MauiBankApp/pkg/logger"
)

// CredentialBinder is the slice of the biometric coordinator that holds the
// identity biometric login signs in as.
type CredentialBinder interface {
	GetStoredCredentials(ctx context.Context) (userID, email string)
	StoreCredentials(ctx context.Context, userID, email string) bool
}

type userUsecase struct {
	userRepo repository.UserRepository
	binder   CredentialBinder
}

type Option func(*userUsecase)

// WithCredentialBinder keeps the biometric binding on the account's current
// email when the profile email changes.
func WithCredentialBinder(b CredentialBinder) Option {
	return func(u *userUsecase) {
		u.binder = b
	}
}

func NewUserUsecase(userRepo repository.UserRepository, opts ...Option) UserUsecase {
	u := &userUsecase{
		userRepo: userRepo,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *userUsecase) GetUserProfile(ctx context.Context, userID string) (UserProfileResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return UserProfileResponse{}, domain.ErrInvalidUserID
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Error("user not found", err)
			return UserProfileResponse{}, domain.ErrUserNotFound
		}
		return UserProfileResponse{}, err
	}

	return ToUserProfileResponse(user), nil
}

func (u *userUsecase) UpdateUserProfile(ctx context.Context, userID string, req UpdateUserRequest) (UserProfileResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return UserProfileResponse{}, domain.ErrInvalidUserID
	}
	if req.Empty() {
		return UserProfileResponse{}, domain.ErrNothingToUpdate
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Error("user not found", err)
			return UserProfileResponse{}, domain.ErrUserNotFound
		}
		return UserProfileResponse{}, err
	}

	previousEmail := user.Email
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}

	updatedUser, err := u.userRepo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return UserProfileResponse{}, domain.ErrEmailTaken
		}
		logger.Error("failed to update user", err)
		return UserProfileResponse{}, domain.ErrUserUpdateFailed
	}

	if !strings.EqualFold(previousEmail, updatedUser.Email) {
		u.rebind(ctx, updatedUser)
	}

	return ToUserProfileResponse(updatedUser), nil
}

// rebind moves a biometric binding held by this user onto the new email.
// A binding for someone else, or none at all, is left alone.
func (u *userUsecase) rebind(ctx context.Context, user *domain.User) {
	if u.binder == nil {
		return
	}
	boundID, _ := u.binder.GetStoredCredentials(ctx)
	if boundID != user.ID {
		return
	}
	if !u.binder.StoreCredentials(ctx, user.ID, user.Email) {
		logger.Warn("failed to move biometric binding to the new email", "user_id", user.ID)
	}
}
