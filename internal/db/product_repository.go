package db

import (
	"github.com/ikrashahmed/taazamart/internal/models"
	"gorm.io/gorm"
)

const curatedListLimit = 8

type ProductRepository struct {
	database *gorm.DB
}

func NewProductRepository(database *gorm.DB) *ProductRepository {
	return &ProductRepository{database: database}
}

func (repo *ProductRepository) withCategoryName() *gorm.DB {
	return repo.database.Model(&models.Product{}).
		Select("products.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = products.category_id")
}

func (repo *ProductRepository) List() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := repo.withCategoryName().
		Order("products.created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (repo *ProductRepository) Search(term string) ([]models.Product, error) {
	pattern := "%" + term + "%"
	products := make([]models.Product, 0)
	if err := repo.withCategoryName().
		Where("lower(products.name) LIKE ? OR lower(products.description) LIKE ? OR lower(categories.name) LIKE ?",
			pattern, pattern, pattern).
		Order("products.created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (repo *ProductRepository) FindBySlug(slug string) (models.Product, error) {
	var product models.Product
	if err := repo.withCategoryName().
		Where("products.slug = ?", slug).
		First(&product).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (repo *ProductRepository) ListFeatured() ([]models.Product, error) {
	return repo.listFlagged("products.is_featured = ?")
}

func (repo *ProductRepository) ListNew() ([]models.Product, error) {
	return repo.listFlagged("products.is_new = ?")
}

func (repo *ProductRepository) ListOnSale() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := repo.withCategoryName().
		Where("products.is_on_sale = ? AND products.sale_price IS NOT NULL", true).
		Order("products.created_at DESC").
		Limit(curatedListLimit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (repo *ProductRepository) ListByCategorySlug(categorySlug string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := repo.withCategoryName().
		Where("categories.slug = ?", categorySlug).
		Order("products.created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (repo *ProductRepository) Create(product *models.Product) error {
	return repo.database.Create(product).Error
}

func (repo *ProductRepository) UpdateByID(productID uint, updates map[string]any) error {
	result := repo.database.Model(&models.Product{}).Where("id = ?", productID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (repo *ProductRepository) Delete(productID uint) error {
	return repo.database.Delete(&models.Product{}, productID).Error
}

func (repo *ProductRepository) listFlagged(condition string) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := repo.withCategoryName().
		Where(condition, true).
		Order("products.created_at DESC").
		Limit(curatedListLimit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
