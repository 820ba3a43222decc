package command

import "github.com/grichal/desingPatterns/internal/order"

const (
	NamePlace  = "place"
	NameTrack  = "track"
	NameCancel = "cancel"
)

func PlaceOrderCommand(name, id string) Command {
	return New(NamePlace, func(orders *order.List, _ ...any) any {
		orders.Push(id)
		logger.Println(order.PlacedMessage(name, id))
		return nil
	})
}

func TrackOrderCommand(id string) Command {
	return New(NameTrack, func(_ *order.List, _ ...any) any {
		logger.Println(order.ETAMessage(id))
		return nil
	})
}

// identified is an entry that carries its own order id.
type identified interface {
	ID() string
}

// CancelOrderCommand keeps the entries whose id field differs from id.
// The collection holds bare identifiers, which have no id field, so no
// entry ever matches and nothing is removed. order.Manager.CancelOrder
// compares by value instead.
func CancelOrderCommand(id string) Command {
	return New(NameCancel, func(orders *order.List, _ ...any) any {
		orders.Filter(func(entry string) bool {
			rec, ok := any(entry).(identified)
			return !ok || rec.ID() != id
		})
		logger.Println(order.CanceledMessage(id))
		return nil
	})
}
