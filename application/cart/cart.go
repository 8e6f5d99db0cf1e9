package cart

import "github.com/pmyge/humo-tezkor-frontend/model"

// Cart accumulates product selections for one session. It lives in memory
// only; the web build keeps it in view state the same way. Serialization is
// the session's concern, the cart itself is not goroutine safe.
type Cart struct {
	lines []model.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Add records a selection. Repeated adds of the same product coalesce into
// one line by summing quantity. The snapshot's name, price and image are
// frozen at add time.
func (c *Cart) Add(snapshot model.CartLine, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == snapshot.ProductID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	snapshot.Quantity = quantity
	c.lines = append(c.lines, snapshot)
}

// Total is the sum of price times quantity over all lines, in the product's
// native currency unit.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Lines returns a copy of the current cart contents.
func (c *Cart) Lines() []model.CartLine {
	out := make([]model.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Items projects the cart into order items (product id and quantity only).
func (c *Cart) Items() []model.OrderItem {
	items := make([]model.OrderItem, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, model.OrderItem{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	return items
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear empties the cart. Called only after a confirmed order submission.
func (c *Cart) Clear() {
	c.lines = nil
}
