package db

import (
	"github.com/ikrashahmed/taazamart/internal/models"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	database *gorm.DB
}

func NewCategoryRepository(database *gorm.DB) *CategoryRepository {
	return &CategoryRepository{database: database}
}

func (repo *CategoryRepository) List() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := repo.database.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (repo *CategoryRepository) Create(category *models.Category) error {
	return repo.database.Create(category).Error
}

func (repo *CategoryRepository) UpdateByID(categoryID uint, updates map[string]any) error {
	result := repo.database.Model(&models.Category{}).Where("id = ?", categoryID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *CategoryRepository) Delete(categoryID uint) error {
	return repo.database.Delete(&models.Category{}, categoryID).Error
}
