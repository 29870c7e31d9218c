// pkg/config/orders.go
package config

import "fmt"

// MaxOrdersSize is the orders payload size limit that ValidateOrders
// enforces. Spawning and missile launch do not call ValidateOrders, so the
// orders handed to a new ship's controller are not size-checked.
const MaxOrdersSize = 8 * 1024

// ValidateOrders checks an orders payload against the size bound. Orders
// content itself is opaque to this core; only size is our concern.
func ValidateOrders(orders []byte) error {
	if len(orders) > MaxOrdersSize {
		return fmt.Errorf("orders: payload too large: %d bytes (max %d)", len(orders), MaxOrdersSize)
	}
	return nil
}
