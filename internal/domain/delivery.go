package domain

import "fmt"

type Delivery int

const (
	DeliveryFast Delivery = iota + 1
	DeliveryNormal
	DeliveryStorePickup
)

func (d Delivery) Valid() bool {
	return d >= DeliveryFast && d <= DeliveryStorePickup
}

func (d Delivery) Description() string {
	switch d {
	case DeliveryFast:
		return "Fast Delivery (arrives within 1 day)"
	case DeliveryNormal:
		return "Normal Delivery (3–4 days)"
	case DeliveryStorePickup:
		return "Store Pickup - collect from nearest store"
	default:
		return fmt.Sprintf("Delivery(%d)", int(d))
	}
}

func (d Delivery) String() string {
	switch d {
	case DeliveryFast:
		return "fast"
	case DeliveryNormal:
		return "normal"
	case DeliveryStorePickup:
		return "store_pickup"
	default:
		return fmt.Sprintf("Delivery(%d)", int(d))
	}
}
