package syncstore

// Cache keys follow "resource:owner" identity. Mutations declare which keys
// they invalidate; readers fetch through the same keys so a mutation is
// always followed by an authoritative refetch.

type Key string

func CartKey(userID string) Key {
	return Key("cart:" + userID)
}

func ProductsKey() Key {
	return Key("products")
}

func ProductKey(productID string) Key {
	return Key("product:" + productID)
}

func OrdersKey(userID string) Key {
	return Key("orders:" + userID)
}

// OrderKey is scoped to the owner: the upstream enforces ownership on
// every fetch, and a shared key would let one user's cached read serve
// another user's request.
func OrderKey(userID, orderID string) Key {
	return Key("order:" + userID + ":" + orderID)
}

// CheckoutKey is notification-only: the checkout orchestrator publishes
// state transitions through it so subscribed views can re-read state.
func CheckoutKey(userID string) Key {
	return Key("checkout:" + userID)
}
