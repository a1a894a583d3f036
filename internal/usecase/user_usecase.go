package usecase

import (
	"context"
	"errors"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/domain/entity"
	"doctors-portal-server/internal/domain/repository"
	"doctors-portal-server/pkg/jwt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUserID = errors.New("invalid user id")
)

type UserUsecase interface {
	// UpsertUser replaces the user's profile fields and issues a fresh
	// token bound to the email.
	UpsertUser(ctx context.Context, email string, profile map[string]interface{}) (*dto.UpsertUserResponse, error)
	PromoteAdmin(ctx context.Context, email string) (*mongo.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (int64, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	// IsAdmin returns ErrUserNotFound for unknown emails rather than
	// assuming the record exists.
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type userUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

func NewUserUsecase(log *logrus.Logger, userRepo repository.UserRepository, jwtService *jwt.JWTService) UserUsecase {
	return &userUsecase{
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (u *userUsecase) UpsertUser(ctx context.Context, email string, profile map[string]interface{}) (*dto.UpsertUserResponse, error) {
	if profile == nil {
		profile = make(map[string]interface{})
	}
	// The path email is authoritative; _id is immutable in the store.
	profile["email"] = email
	delete(profile, "_id")

	result, err := u.userRepo.Upsert(ctx, email, profile)
	if err != nil {
		u.log.Warnf("Failed to upsert user %s: %+v", email, err)
		return nil, err
	}

	token, err := u.jwtService.GenerateToken(email)
	if err != nil {
		u.log.Warnf("Failed to issue token for %s: %+v", email, err)
		return nil, err
	}

	return &dto.UpsertUserResponse{Result: result, Token: token}, nil
}

func (u *userUsecase) PromoteAdmin(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	result, err := u.userRepo.SetRole(ctx, email, entity.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to promote %s to admin: %+v", email, err)
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}
	return result, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidUserID
	}

	deleted, err := u.userRepo.DeleteByID(ctx, objID)
	if err != nil {
		u.log.Warnf("Failed to delete user %s: %+v", id, err)
		return 0, err
	}
	return deleted, nil
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}
	return users, nil
}

func (u *userUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to look up user %s: %+v", email, err)
		return false, err
	}
	if user == nil {
		return false, ErrUserNotFound
	}
	return user.IsAdmin(), nil
}
