package domain

// CartItem is one cart line. At most one line exists per
// (userId, productId) pair; adding the same product again increments the
// existing line's quantity instead of creating a duplicate.
type CartItem struct {
	ID        int  `json:"id"`
	ProductID int  `json:"productId"`
	Quantity  int  `json:"quantity"`
	UserID    *int `json:"userId,omitempty"`
}

// CartItemWithProduct is the read-time join of a cart line with its
// resolved product. It is computed on every read and never stored.
type CartItemWithProduct struct {
	CartItem
	Product Product `json:"product"`
}
