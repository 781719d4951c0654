package quote

// Observer receives the full item slice after every successful mutation. The
// callback is synchronous and in-order.
type Observer func(items []Item)

// Collection owns the ordered line items of one quotation. Order is display
// and print order. The collection never drops below its minimum size;
// operations that cannot apply are silent no-ops.
type Collection struct {
	items    []Item
	minItems int
	observer Observer
}

// NewCollection returns a collection seeded with minItems fresh items. A
// minItems below 1 is treated as 1.
func NewCollection(minItems int) *Collection {
	if minItems < 1 {
		minItems = 1
	}
	c := &Collection{minItems: minItems}
	for i := 0; i < minItems; i++ {
		c.items = append(c.items, NewItem())
	}
	return c
}

// SetObserver registers the callback notified after each mutation.
func (c *Collection) SetObserver(fn Observer) {
	c.observer = fn
}

// Items returns a copy of the item slice.
func (c *Collection) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// Add appends a freshly created item.
func (c *Collection) Add() {
	c.items = append(c.items, NewItem())
	c.notify()
}

// Remove deletes the item at index. Removal that would drop the collection
// below its minimum, or an out-of-bounds index, is a no-op.
func (c *Collection) Remove(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	if len(c.items) <= c.minItems {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.notify()
}

// Duplicate appends an independent copy of the item at index to the end of
// the collection. Out-of-bounds index is a no-op.
func (c *Collection) Duplicate(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items, Duplicate(c.items[index]))
	c.notify()
}

// Update routes a field edit through the dependency resolver and installs the
// reconciled item. Out-of-bounds index is a no-op.
func (c *Collection) Update(index int, field, value string) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items[index] = UpdateField(c.items[index], field, value)
	c.notify()
}

// Replace installs item at index verbatim, bypassing the resolver. Used when
// an externally validated item must be taken as-is.
func (c *Collection) Replace(index int, item Item) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items[index] = item
	c.notify()
}

// SetItems replaces the whole sequence, topping up with fresh items if the
// input is below the minimum.
func (c *Collection) SetItems(items []Item) {
	c.items = make([]Item, len(items))
	copy(c.items, items)
	for len(c.items) < c.minItems {
		c.items = append(c.items, NewItem())
	}
	c.notify()
}

func (c *Collection) notify() {
	if c.observer != nil {
		c.observer(c.Items())
	}
}
