package cart

import "math"

// rewardRate is the loyalty policy: one point per ten whole currency units.
const rewardRate = 10

// RewardPoints maps a monetary amount to loyalty points, flooring partial
// points. The same function backs both the catalog card and the cart
// summary so the two always agree for the same amount.
func RewardPoints(amount float64) int {
	if amount <= 0 {
		return 0
	}
	return int(math.Floor(amount / rewardRate))
}
