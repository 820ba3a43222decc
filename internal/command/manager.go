package command

import "github.com/grichal/desingPatterns/internal/order"

// Manager has a single entry point. What happens to its orders is
// decided entirely by the command handed to Execute.
type Manager struct {
	orders *order.List
}

func NewManager() *Manager {
	return &Manager{orders: order.NewList()}
}

// Execute invokes cmd with the manager's collection followed by args
// and returns whatever the command returns.
func (m *Manager) Execute(cmd Command, args ...any) any {
	return cmd.Invoke(m.orders, args...)
}

func (m *Manager) Orders() []string {
	return m.orders.IDs()
}
