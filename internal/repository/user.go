// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"filmorate/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
// Friendship edges are stored directed; AddFriend/RemoveFriend always touch
// both directions so the observable relation stays symmetric.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	AddFriend(ctx context.Context, userID, friendID uint) error
	RemoveFriend(ctx context.Context, userID, friendID uint) error
	GetFriendIDs(ctx context.Context, userID uint) ([]uint, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.attachFriends(ctx, users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	friends, err := r.GetFriendIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Friends = friends
	return &user, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.attachFriends(ctx, users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	if user.Friends == nil {
		user.Friends = []uint{}
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"email":    user.Email,
			"login":    user.Login,
			"name":     user.Name,
			"birthday": user.Birthday,
		})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("User", user.ID)
	}
	return nil
}

func (r *userRepository) AddFriend(ctx context.Context, userID, friendID uint) error {
	// Both directed edges are written in one transaction so the symmetric
	// relation is never half-visible.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Friendship{UserID: userID, FriendID: friendID}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Friendship{UserID: friendID, FriendID: userID}).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	// Removing an absent edge affects zero rows and is not an error.
	err := r.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Delete(&models.Friendship{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) GetFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	friendIDs := []uint{}
	err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("user_id = ?", userID).
		Order("friend_id").
		Pluck("friend_id", &friendIDs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return friendIDs, nil
}

// attachFriends resolves friendship edges for a batch of users in one query.
func (r *userRepository) attachFriends(ctx context.Context, users []models.User) error {
	if len(users) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(users))
	for i := range users {
		users[i].Friends = []uint{}
		ids = append(ids, users[i].ID)
	}

	var edges []models.Friendship
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Order("friend_id").
		Find(&edges).Error; err != nil {
		return models.NewInternalError(err)
	}

	byUser := make(map[uint][]uint, len(users))
	for _, e := range edges {
		byUser[e.UserID] = append(byUser[e.UserID], e.FriendID)
	}
	for i := range users {
		if friends, ok := byUser[users[i].ID]; ok {
			users[i].Friends = friends
		}
	}
	return nil
}
