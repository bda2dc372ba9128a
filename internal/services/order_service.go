package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ikrashahmed/taazamart/internal/models"
	"gorm.io/gorm"
)

type OrdersRepository interface {
	CreateWithItems(order *models.Order, items []models.OrderItem) error
	List() ([]models.Order, error)
	ListByNormalizedEmail(email string) ([]models.Order, error)
	FindByID(orderID uint) (models.Order, error)
	ListItems(orderID uint) ([]models.OrderItem, error)
	UpdateStatus(orderID uint, status string) error
}

type OrderItemInput struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderInput struct {
	CustomerName    string           `json:"customer_name"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerPhone   string           `json:"customer_phone"`
	DeliveryAddress string           `json:"delivery_address"`
	City            string           `json:"city"`
	GoogleLocation  string           `json:"google_location"`
	TotalAmount     float64          `json:"total_amount"`
	Items           []OrderItemInput `json:"items"`
}

type OrderService struct {
	orders      OrdersRepository
	defaultCity string
}

func NewOrderService(orders OrdersRepository, defaultCity string) *OrderService {
	return &OrderService{orders: orders, defaultCity: defaultCity}
}

// CreateOrder persists one order header plus its line items as a unit. The
// repository wraps the writes in a transaction, so a failing item insert
// never leaves a header without its items.
func (service *OrderService) CreateOrder(input OrderInput) (models.Order, error) {
	if err := validateOrderInput(input); err != nil {
		return models.Order{}, err
	}

	city := strings.TrimSpace(input.City)
	if city == "" {
		city = service.defaultCity
	}

	order := models.Order{
		CustomerName:    SanitizeInput(input.CustomerName),
		CustomerEmail:   NormalizeEmail(input.CustomerEmail),
		CustomerPhone:   SanitizeInput(input.CustomerPhone),
		DeliveryAddress: SanitizeInput(input.DeliveryAddress),
		City:            city,
		GoogleLocation:  strings.TrimSpace(input.GoogleLocation),
		TotalAmount:     input.TotalAmount,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	if err := service.orders.CreateWithItems(&order, items); err != nil {
		return models.Order{}, &OrderPersistenceError{Err: err}
	}
	return order, nil
}

func (service *OrderService) ListOrders() ([]models.Order, error) {
	return service.orders.List()
}

func (service *OrderService) ListOrdersByEmail(email string) ([]models.Order, error) {
	return service.orders.ListByNormalizedEmail(strings.ToLower(strings.TrimSpace(email)))
}

func (service *OrderService) OrderItems(orderID uint) ([]models.OrderItem, error) {
	return service.orders.ListItems(orderID)
}

// OrderItemsForEmail serves line items only to the order's owner. A foreign
// order looks exactly like a missing one, so ids cannot be probed.
func (service *OrderService) OrderItemsForEmail(orderID uint, email string) ([]models.OrderItem, error) {
	order, err := service.orders.FindByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Message: "order not found"}
	}
	if err != nil {
		return nil, &StoreUnavailableError{Err: err}
	}
	if !strings.EqualFold(strings.TrimSpace(order.CustomerEmail), strings.TrimSpace(email)) {
		return nil, &NotFoundError{Message: "order not found"}
	}
	return service.orders.ListItems(orderID)
}

// UpdateStatus rejects anything outside the recognised status set before it
// reaches the store.
func (service *OrderService) UpdateStatus(orderID uint, status string) error {
	normalized := strings.ToLower(strings.TrimSpace(status))
	switch normalized {
	case models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusDelivered, models.OrderStatusCancelled:
	default:
		return &ValidationError{Message: "unrecognized order status"}
	}

	err := service.orders.UpdateStatus(orderID, normalized)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Message: "order not found"}
	}
	if err != nil {
		return &StoreUnavailableError{Err: err}
	}
	return nil
}

func validateOrderInput(input OrderInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return &ValidationError{Message: "customer name is required"}
	}
	if strings.TrimSpace(input.CustomerPhone) == "" {
		return &ValidationError{Message: "customer phone is required"}
	}
	if strings.TrimSpace(input.DeliveryAddress) == "" {
		return &ValidationError{Message: "delivery address is required"}
	}
	if len(input.Items) == 0 {
		return &ValidationError{Message: "order must contain at least one item"}
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return &ValidationError{Message: "item quantity must be positive"}
		}
		if strings.TrimSpace(item.ProductName) == "" {
			return &ValidationError{Message: "item product name is required"}
		}
	}
	return nil
}
