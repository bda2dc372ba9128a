package db

import (
	"github.com/ikrashahmed/taazamart/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// UpdateByNormalizedEmail writes only the columns present in updates, which
// gives profile edits their partial-update (COALESCE) semantics.
func (repo *UserRepository) UpdateByNormalizedEmail(email string, updates map[string]any) error {
	return repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Updates(updates).Error
}
