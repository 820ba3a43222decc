package order

import "fmt"

// ETA is how long every order takes to arrive.
const ETA = "20 minutes"

func PlacedMessage(order, id string) string {
	return fmt.Sprintf("You have successfully ordered %s (%s)", order, id)
}

func ETAMessage(id string) string {
	return fmt.Sprintf("Your order %s will arrive in %s.", id, ETA)
}

func CanceledMessage(id string) string {
	return fmt.Sprintf("You have canceled your order %s", id)
}

// Manager exposes one method per task. Every method succeeds and
// returns a status line for the caller to print.
type Manager struct {
	orders *List
}

func NewManager() *Manager {
	return &Manager{orders: NewList()}
}

func (m *Manager) PlaceOrder(order, id string) string {
	m.orders.Push(id)
	return PlacedMessage(order, id)
}

// TrackOrder does not look at the collection.
func (m *Manager) TrackOrder(id string) string {
	return ETAMessage(id)
}

// CancelOrder removes every occurrence of id. Absent ids are a no-op
// and still get the confirmation.
func (m *Manager) CancelOrder(id string) string {
	m.orders.Filter(func(v string) bool { return v != id })
	return CanceledMessage(id)
}

func (m *Manager) Orders() []string {
	return m.orders.IDs()
}
