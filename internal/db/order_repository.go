package db

import (
	"github.com/ikrashahmed/taazamart/internal/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	database *gorm.DB
}

func NewOrderRepository(database *gorm.DB) *OrderRepository {
	return &OrderRepository{database: database}
}

// CreateWithItems inserts the order header and every line item inside one
// transaction. Either the whole order lands or none of it does.
func (repo *OrderRepository) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for index := range items {
			items[index].OrderID = order.ID
			if err := tx.Create(&items[index]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (repo *OrderRepository) List() ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (repo *OrderRepository) ListByNormalizedEmail(email string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := repo.database.
		Where("lower(trim(customer_email)) = ?", email).
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (repo *OrderRepository) FindByID(orderID uint) (models.Order, error) {
	var order models.Order
	if err := repo.database.First(&order, orderID).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (repo *OrderRepository) ListItems(orderID uint) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0)
	if err := repo.database.
		Where("order_id = ?", orderID).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *OrderRepository) UpdateStatus(orderID uint, status string) error {
	result := repo.database.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
