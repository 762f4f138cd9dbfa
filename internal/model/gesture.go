package model

// SwipeDirection is the classification of a horizontal touch sequence
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
)

// String returns a human-friendly name of the direction
func (sd SwipeDirection) String() string {
	switch sd {
	case SwipeLeft:
		return "swipe-left"
	case SwipeRight:
		return "swipe-right"
	default:
		return "none"
	}
}
