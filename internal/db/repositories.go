package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Categories *CategoryRepository
	Products   *ProductRepository
	Orders     *OrderRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Categories: NewCategoryRepository(database),
		Products:   NewProductRepository(database),
		Orders:     NewOrderRepository(database),
	}
}
