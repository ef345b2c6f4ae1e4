package service

import (
	"context"
	"fmt"

	"filmorate/internal/models"
	"filmorate/internal/repository"
	"filmorate/internal/validation"
)

// UserService provides user and friendship-graph business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns all users.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// GetUserByID returns a single user.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CreateUser validates and persists a new user. A blank display name is
// defaulted to the login before the record is written.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validation.ValidateUser(user); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser validates the candidate and replaces the stored record keyed by
// its id. Fails with NotFound if the id is absent.
func (s *UserService) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validation.ValidateUser(user); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, user.ID)
}

// AddFriend creates a symmetric friendship between two existing users.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID uint) error {
	if err := s.checkUsers(ctx, userID, friendID); err != nil {
		return err
	}
	if userID == friendID {
		return models.NewFieldValidationError(models.KindInvalidValue,
			fmt.Sprintf("user %d cannot friend themself", userID))
	}

	friendIDs, err := s.userRepo.GetFriendIDs(ctx, userID)
	if err != nil {
		return err
	}
	for _, id := range friendIDs {
		if id == friendID {
			return models.NewAlreadyExistsError(
				fmt.Sprintf("users %d and %d are already friends", userID, friendID))
		}
	}

	return s.userRepo.AddFriend(ctx, userID, friendID)
}

// RemoveFriend removes the friendship between two existing users in both
// directions. Removing a friendship that does not exist is a no-op.
func (s *UserService) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	if err := s.checkUsers(ctx, userID, friendID); err != nil {
		return err
	}
	if userID == friendID {
		return models.NewFieldValidationError(models.KindInvalidValue,
			fmt.Sprintf("user %d cannot un-friend themself", userID))
	}
	return s.userRepo.RemoveFriend(ctx, userID, friendID)
}

// GetFriends returns the full user records of userID's friends, ascending by id.
func (s *UserService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	friendIDs, err := s.userRepo.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveUsers(ctx, friendIDs)
}

// GetCommonFriends returns the users present in both friend lists, ascending by id.
func (s *UserService) GetCommonFriends(ctx context.Context, userID, otherID uint) ([]models.User, error) {
	if err := s.checkUsers(ctx, userID, otherID); err != nil {
		return nil, err
	}
	if userID == otherID {
		return nil, models.NewFieldValidationError(models.KindInvalidValue,
			fmt.Sprintf("common friends query needs two distinct users, got %d twice", userID))
	}

	friendIDs, err := s.userRepo.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	otherIDs, err := s.userRepo.GetFriendIDs(ctx, otherID)
	if err != nil {
		return nil, err
	}

	otherSet := make(map[uint]struct{}, len(otherIDs))
	for _, id := range otherIDs {
		otherSet[id] = struct{}{}
	}
	common := make([]uint, 0, len(friendIDs))
	for _, id := range friendIDs {
		if _, ok := otherSet[id]; ok {
			common = append(common, id)
		}
	}

	return s.resolveUsers(ctx, common)
}

func (s *UserService) checkUsers(ctx context.Context, userID, otherID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, otherID); err != nil {
		return err
	}
	return nil
}

func (s *UserService) resolveUsers(ctx context.Context, ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	return s.userRepo.GetByIDs(ctx, ids)
}
