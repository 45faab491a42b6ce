// Package strategy turns price and indicator data into trading signals.
// Strategies are pure: they read a series and emit one Signal per bar.
package strategy

// Signal is a directional trading indication at a bar.
type Signal int8

const (
	Sell Signal = -1
	Flat Signal = 0
	Buy  Signal = +1
)

// PositionChanges returns the first difference of a signal series. The
// changes, not the raw signal levels, are what trigger trades. The first
// element is always 0 (no prior signal).
func PositionChanges(signals []Signal) []int {
	changes := make([]int, len(signals))
	for i := 1; i < len(signals); i++ {
		changes[i] = int(signals[i]) - int(signals[i-1])
	}
	return changes
}
