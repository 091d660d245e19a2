package repositories

import (
	"github.com/shashiranjanraj/ordertrack/app/models"
	"github.com/shashiranjanraj/ordertrack/pkg/orm"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// All returns every order, most recently updated first. The listing,
// the filters and the dashboard all work from this snapshot.
func (r *OrderRepository) All() ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().
		Model(&models.Order{}).
		Order("last_updated desc").
		Get(&orders)
	return orders, err
}

// Find looks up an order by primary key.
func (r *OrderRepository) Find(id uint) (models.Order, error) {
	var o models.Order
	err := orm.DB().Model(&models.Order{}).Where("id = ?", id).First(&o)
	return o, err
}

// Create persists a new order record.
func (r *OrderRepository) Create(o *models.Order) error {
	return orm.DB().Create(o)
}

// Update persists changes to an existing order.
func (r *OrderRepository) Update(o *models.Order) error {
	return orm.DB().Save(o)
}

// Delete removes an order.
func (r *OrderRepository) Delete(o *models.Order) error {
	return orm.DB().Delete(o)
}
