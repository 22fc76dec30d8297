package property

import "fmt"

// GenerateUnitTypes produces the unit breakdown for n units: entry i (1-based)
// is an i-bedroom unit of 800+400i sq ft with count i, in ascending order.
// n outside 1..10 returns ok=false and the caller leaves its collection alone.
func GenerateUnitTypes(n int) ([]UnitType, bool) {
	if n < 1 || n > 10 {
		return nil, false
	}
	units := make([]UnitType, 0, n)
	for i := 1; i <= n; i++ {
		units = append(units, UnitType{
			Type:  fmt.Sprintf("%d Bedroom", i),
			Size:  fmt.Sprintf("%d sq ft", 800+i*400),
			Count: i,
		})
	}
	return units, true
}
