package models

// Quantity is the stock counter of a product. The held value never drops
// below zero: a mutation either applies fully or leaves the value untouched
// and returns InvalidQuantityError.
type Quantity struct {
	value int
}

func NewQuantity(value int) (Quantity, error) {
	if value < 0 {
		return Quantity{}, InvalidQuantityError{Value: value}
	}
	return Quantity{value: value}, nil
}

func (q Quantity) Value() int {
	return q.value
}

// Increase adds the given number to the held value.
func (q *Quantity) Increase(by int) error {
	return q.set(q.value + by)
}

// Decrease subtracts the given number from the held value.
func (q *Quantity) Decrease(by int) error {
	return q.set(q.value - by)
}

func (q *Quantity) set(value int) error {
	if value < 0 {
		return InvalidQuantityError{Value: value}
	}
	q.value = value
	return nil
}
