package domain

// CartItem is one cart line: a product (with any selected variant) and a quantity.
type CartItem struct {
	Product  DisplayProduct `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart holds a shopper's selections for the duration of a session.
// It is a plain value; every operation returns a new Cart rather than
// mutating in place, so a stale read can never corrupt another request.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add merges quantity into an existing line for the same product id,
// or appends a new line. Non-positive quantities default to 1.
func (c Cart) Add(product DisplayProduct, quantity int) Cart {
	if quantity <= 0 {
		quantity = 1
	}

	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)

	for i, item := range items {
		if item.Product.ID == product.ID {
			items[i].Quantity += quantity
			return Cart{Items: items}
		}
	}

	return Cart{Items: append(items, CartItem{Product: product, Quantity: quantity})}
}

// Remove drops the line for the given product id. Removing an absent id is a no-op.
func (c Cart) Remove(productID string) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}
	return Cart{Items: items}
}

// UpdateQuantity sets the quantity for a line. A quantity of zero or less
// removes the line.
func (c Cart) UpdateQuantity(productID string, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(productID)
	}

	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	for i, item := range items {
		if item.Product.ID == productID {
			items[i].Quantity = quantity
		}
	}
	return Cart{Items: items}
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Count returns the total number of units across all lines.
func (c Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Total returns the cart total in major currency units.
func (c Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// HasProviderItems reports whether any line is a provider-sourced product.
// Checkout uses this to decide whether a fulfillment order will be needed.
func (c Cart) HasProviderItems() bool {
	for _, item := range c.Items {
		if item.Product.IsProviderSourced() {
			return true
		}
	}
	return false
}

// ProviderItems returns only the provider-sourced lines.
func (c Cart) ProviderItems() []CartItem {
	var items []CartItem
	for _, item := range c.Items {
		if item.Product.IsProviderSourced() {
			items = append(items, item)
		}
	}
	return items
}
