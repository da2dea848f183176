package cart

import (
	"testing"

	"hausly/models"

	"github.com/stretchr/testify/assert"
)

func TestRewardPoints_Policy(t *testing.T) {
	assert.Equal(t, 0, RewardPoints(0))
	assert.Equal(t, 0, RewardPoints(9))
	assert.Equal(t, 1, RewardPoints(10))
	assert.Equal(t, 49, RewardPoints(499))
	assert.Equal(t, 50, RewardPoints(500))
}

func TestRewardPoints_NegativeAmountYieldsZero(t *testing.T) {
	assert.Equal(t, 0, RewardPoints(-100))
}

func TestRewardPoints_Monotonic(t *testing.T) {
	prev := RewardPoints(0)
	for amount := 1.0; amount <= 2000; amount++ {
		cur := RewardPoints(amount)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestRewardPoints_MatchesSummary(t *testing.T) {
	// The cart summary must report the same points the catalog card shows
	// for the same amount.
	summary := Quote([]models.CartItem{item("svc-1", 500)}, nil, 0)
	assert.Equal(t, RewardPoints(500), summary.RewardPoints)
}
