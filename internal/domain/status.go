package domain

// DeliveryStatus represents the lifecycle state of a delivery.
type DeliveryStatus string

// List of possible delivery statuses
const (
	StatusPending        DeliveryStatus = "PENDING"
	StatusDriverAssigned DeliveryStatus = "DRIVER_ASSIGNED"
	StatusPickedUp       DeliveryStatus = "PICKED_UP"
	StatusInTransit      DeliveryStatus = "IN_TRANSIT"
	StatusDelivered      DeliveryStatus = "DELIVERED"
	StatusCancelled      DeliveryStatus = "CANCELLED"
)

// AllStatuses lists every delivery status in lifecycle order.
var AllStatuses = [...]DeliveryStatus{
	StatusPending, StatusDriverAssigned, StatusPickedUp,
	StatusInTransit, StatusDelivered, StatusCancelled,
}

// transitions is the exhaustive adjacency set of the delivery state machine.
// Any pair not listed here is rejected.
var transitions = map[DeliveryStatus]map[DeliveryStatus]struct{}{
	StatusPending:        {StatusDriverAssigned: {}, StatusCancelled: {}},
	StatusDriverAssigned: {StatusPickedUp: {}, StatusCancelled: {}},
	StatusPickedUp:       {StatusInTransit: {}},
	StatusInTransit:      {StatusDelivered: {}, StatusCancelled: {}},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// Valid checks if the DeliveryStatus is one of the known statuses.
func (s DeliveryStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no transition is allowed out of s.
func (s DeliveryStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the state machine allows s -> to.
func (s DeliveryStatus) CanTransitionTo(to DeliveryStatus) bool {
	next, ok := transitions[s]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// NextStatuses returns the statuses reachable from s in lifecycle order.
func (s DeliveryStatus) NextStatuses() []DeliveryStatus {
	out := make([]DeliveryStatus, 0, 2)
	for _, to := range AllStatuses {
		if s.CanTransitionTo(to) {
			out = append(out, to)
		}
	}
	return out
}

func (s DeliveryStatus) String() string { return string(s) }
