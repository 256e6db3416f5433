package cart

import "errors"

var (
	// ErrInvalidQuantity is returned when a quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrItemNotInCart is returned when the product has no line in the user's cart.
	ErrItemNotInCart = errors.New("product doesn't exist in cart")

	// ErrEmptyCart is returned when checking out a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
)
