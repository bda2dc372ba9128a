package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ikrashahmed/taazamart/internal/models"
	"gorm.io/gorm"
)

type CatalogCategoryRepository interface {
	List() ([]models.Category, error)
	Create(category *models.Category) error
	UpdateByID(categoryID uint, updates map[string]any) error
	Delete(categoryID uint) error
}

type CatalogProductRepository interface {
	List() ([]models.Product, error)
	Search(term string) ([]models.Product, error)
	FindBySlug(slug string) (models.Product, error)
	ListFeatured() ([]models.Product, error)
	ListNew() ([]models.Product, error)
	ListOnSale() ([]models.Product, error)
	ListByCategorySlug(categorySlug string) ([]models.Product, error)
	Create(product *models.Product) error
	UpdateByID(productID uint, updates map[string]any) error
	Delete(productID uint) error
}

type CategoryInput struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type CategoryUpdate struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"image_url"`
}

type ProductInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	SalePrice     *float64 `json:"sale_price"`
	ImageURL      string   `json:"image_url"`
	CategoryID    *uint    `json:"category_id"`
	StockQuantity int      `json:"stock_quantity"`
	Unit          string   `json:"unit"`
	IsFeatured    bool     `json:"is_featured"`
	IsNew         bool     `json:"is_new"`
	IsOnSale      bool     `json:"is_on_sale"`
}

type ProductUpdate struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	SalePrice     *float64 `json:"sale_price"`
	ImageURL      *string  `json:"image_url"`
	CategoryID    *uint    `json:"category_id"`
	StockQuantity *int     `json:"stock_quantity"`
	Unit          *string  `json:"unit"`
	IsFeatured    *bool    `json:"is_featured"`
	IsNew         *bool    `json:"is_new"`
	IsOnSale      *bool    `json:"is_on_sale"`
}

type CatalogService struct {
	categories CatalogCategoryRepository
	products   CatalogProductRepository
}

func NewCatalogService(categories CatalogCategoryRepository, products CatalogProductRepository) *CatalogService {
	return &CatalogService{categories: categories, products: products}
}

func (service *CatalogService) Categories() ([]models.Category, error) {
	return service.categories.List()
}

func (service *CatalogService) CreateCategory(input CategoryInput) (models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Category{}, &ValidationError{Message: "category name is required"}
	}

	category := models.Category{
		Name:      name,
		Slug:      Slugify(name),
		ImageURL:  strings.TrimSpace(input.ImageURL),
		CreatedAt: time.Now(),
	}
	if err := service.categories.Create(&category); err != nil {
		return models.Category{}, &ConflictError{Message: "a category with this name already exists"}
	}
	return category, nil
}

func (service *CatalogService) UpdateCategory(categoryID uint, update CategoryUpdate) error {
	updates := map[string]any{}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return &ValidationError{Message: "category name is required"}
		}
		updates["name"] = name
		updates["slug"] = Slugify(name)
	}
	if update.ImageURL != nil {
		updates["image_url"] = strings.TrimSpace(*update.ImageURL)
	}
	if len(updates) == 0 {
		return &ValidationError{Message: "no category fields to update"}
	}

	err := service.categories.UpdateByID(categoryID, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Message: "category not found"}
	}
	if err != nil {
		return &StoreUnavailableError{Err: err}
	}
	return nil
}

func (service *CatalogService) DeleteCategory(categoryID uint) error {
	return service.categories.Delete(categoryID)
}

func (service *CatalogService) Products() ([]models.Product, error) {
	return service.products.List()
}

func (service *CatalogService) SearchProducts(query string) ([]models.Product, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return service.products.List()
	}
	return service.products.Search(term)
}

func (service *CatalogService) ProductBySlug(slug string) (models.Product, error) {
	product, err := service.products.FindBySlug(strings.TrimSpace(slug))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, &NotFoundError{Message: "product not found"}
	}
	if err != nil {
		return models.Product{}, &StoreUnavailableError{Err: err}
	}
	return product, nil
}

func (service *CatalogService) FeaturedProducts() ([]models.Product, error) {
	return service.products.ListFeatured()
}

func (service *CatalogService) NewProducts() ([]models.Product, error) {
	return service.products.ListNew()
}

func (service *CatalogService) OnSaleProducts() ([]models.Product, error) {
	return service.products.ListOnSale()
}

func (service *CatalogService) ProductsByCategory(categorySlug string) ([]models.Product, error) {
	return service.products.ListByCategorySlug(strings.TrimSpace(categorySlug))
}

func (service *CatalogService) CreateProduct(input ProductInput) (models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Product{}, &ValidationError{Message: "product name is required"}
	}
	if input.Price <= 0 {
		return models.Product{}, &ValidationError{Message: "product price must be positive"}
	}

	now := time.Now()
	product := models.Product{
		Name:          name,
		Slug:          Slugify(name),
		Description:   input.Description,
		Price:         input.Price,
		SalePrice:     input.SalePrice,
		ImageURL:      strings.TrimSpace(input.ImageURL),
		CategoryID:    input.CategoryID,
		StockQuantity: input.StockQuantity,
		Unit:          defaultUnit(input.Unit),
		IsFeatured:    input.IsFeatured,
		IsNew:         input.IsNew,
		IsOnSale:      input.IsOnSale,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := service.products.Create(&product); err != nil {
		return models.Product{}, &ConflictError{Message: "a product with this name already exists"}
	}
	return product, nil
}

// UpdateProduct writes only the supplied fields, re-deriving the slug when
// the name changes. sale_price is the one exception to the partial-update
// rule: it is overwritten with whatever was sent, nil included, so the admin
// form can clear a sale.
func (service *CatalogService) UpdateProduct(productID uint, update ProductUpdate) error {
	updates := map[string]any{
		"sale_price": update.SalePrice,
		"updated_at": time.Now(),
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return &ValidationError{Message: "product name is required"}
		}
		updates["name"] = name
		updates["slug"] = Slugify(name)
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Price != nil {
		updates["price"] = *update.Price
	}
	if update.ImageURL != nil {
		updates["image_url"] = strings.TrimSpace(*update.ImageURL)
	}
	if update.CategoryID != nil {
		updates["category_id"] = *update.CategoryID
	}
	if update.StockQuantity != nil {
		updates["stock_quantity"] = *update.StockQuantity
	}
	if update.Unit != nil {
		updates["unit"] = defaultUnit(*update.Unit)
	}
	if update.IsFeatured != nil {
		updates["is_featured"] = *update.IsFeatured
	}
	if update.IsNew != nil {
		updates["is_new"] = *update.IsNew
	}
	if update.IsOnSale != nil {
		updates["is_on_sale"] = *update.IsOnSale
	}

	err := service.products.UpdateByID(productID, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Message: "product not found"}
	}
	if err != nil {
		return &StoreUnavailableError{Err: err}
	}
	return nil
}

func (service *CatalogService) DeleteProduct(productID uint) error {
	return service.products.Delete(productID)
}

func defaultUnit(raw string) string {
	unit := strings.TrimSpace(raw)
	if unit == "" {
		return "kg"
	}
	return unit
}
