package stores

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Afzal-gif888/campus-cafe-mate/models"
	"github.com/Afzal-gif888/campus-cafe-mate/storage"
)

const ordersKey = "cafe_orders"

// Orders owns the set of placed orders.
type Orders struct {
	mu sync.Mutex
	kv storage.Store
}

func NewOrders(kv storage.Store) *Orders {
	return &Orders{kv: kv}
}

func (o *Orders) load() ([]models.Order, error) {
	raw, ok, err := o.kv.Get(ordersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := o.save([]models.Order{}); err != nil {
			return nil, err
		}
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("%w: decoding order collection: %v", storage.ErrStorage, err)
	}
	return orders, nil
}

func (o *Orders) save(orders []models.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("%w: encoding order collection: %v", storage.ErrStorage, err)
	}
	return o.kv.Put(ordersKey, raw)
}

// ListAll returns every order in creation order.
func (o *Orders) ListAll() ([]models.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.load()
}

// ListByStudent returns the orders placed by the given student,
// preserving creation order.
func (o *Orders) ListByStudent(studentID string) ([]models.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	orders, err := o.load()
	if err != nil {
		return nil, err
	}
	mine := make([]models.Order, 0)
	for _, order := range orders {
		if order.StudentID == studentID {
			mine = append(mine, order)
		}
	}
	return mine, nil
}

// Get returns a single order by ID.
func (o *Orders) Get(id string) (models.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	orders, err := o.load()
	if err != nil {
		return models.Order{}, err
	}
	for _, order := range orders {
		if order.ID == id {
			return order, nil
		}
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}

// Create appends a new pending order. Line subtotals and the order
// total are recomputed from the embedded snapshots so the total
// invariant holds no matter what the caller sends.
func (o *Orders) Create(studentID, studentName, studentMobile string, items []models.OrderItem) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, fmt.Errorf("order needs at least one item: %w", ErrValidation)
	}
	var total float64
	for i := range items {
		if items[i].Quantity < 1 {
			return models.Order{}, fmt.Errorf("quantity for %s must be at least 1: %w", items[i].MenuItem.Name, ErrValidation)
		}
		items[i].Subtotal = items[i].MenuItem.Price * float64(items[i].Quantity)
		total += items[i].Subtotal
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	orders, err := o.load()
	if err != nil {
		return models.Order{}, err
	}
	now := time.Now()
	order := models.Order{
		ID:            uuid.NewString(),
		StudentID:     studentID,
		StudentName:   studentName,
		StudentMobile: studentMobile,
		Items:         items,
		Total:         total,
		Status:        models.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	orders = append(orders, order)
	if err := o.save(orders); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// UpdateStatus overwrites the order status and refreshes UpdatedAt. Any
// known status may follow any other; the admin client only ever drives
// the forward step plus cancel, but the store does not insist on it.
func (o *Orders) UpdateStatus(id, status string) (models.Order, error) {
	if !models.ValidStatus(status) {
		return models.Order{}, fmt.Errorf("unknown status %q: %w", status, ErrValidation)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	orders, err := o.load()
	if err != nil {
		return models.Order{}, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		orders[i].UpdatedAt = time.Now()
		if err := o.save(orders); err != nil {
			return models.Order{}, err
		}
		return orders[i], nil
	}
	return models.Order{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
}
