package billing

import (
	"fmt"
	"math/rand"
	"testing"

	"repasse_imoveis/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumPayouts(ps []entities.OwnerPayout) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range ps {
		sum = sum.Add(p.Value)
	}
	return sum
}

func TestSplitPayoutsScenarios(t *testing.T) {
	tests := []struct {
		name   string
		net    string
		owners []entities.Owner
		want   []string
	}{
		{"A single owner", "1340.00", []entities.Owner{owner("o1", "100")}, []string{"1340.00"}},
		{"B sixty forty", "1340.00", []entities.Owner{owner("o1", "60"), owner("o2", "40")}, []string{"804.00", "536.00"}},
		{"D thirds without residual", "1000.00", []entities.Owner{owner("o1", "33.33"), owner("o2", "33.33"), owner("o3", "33.34")}, []string{"333.30", "333.30", "333.40"}},
		{"residual to largest share", "100.00", []entities.Owner{owner("o1", "33.33"), owner("o2", "33.33"), owner("o3", "33.34")}, []string{"33.33", "33.33", "33.34"}},
		{"negative residual", "0.05", []entities.Owner{owner("o1", "50"), owner("o2", "50")}, []string{"0.02", "0.03"}},
		{"tie broken by lowest id", "0.01", []entities.Owner{owner("o2", "50"), owner("o1", "50")}, []string{"0.01", "0.00"}},
		{"zero net", "0", []entities.Owner{owner("o1", "70"), owner("o2", "30")}, []string{"0.00", "0.00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payouts, err := SplitPayouts("ctr-1", d(tt.net), tt.owners)
			require.NoError(t, err)
			require.Len(t, payouts, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, w, money(payouts[i].Value), payouts[i].OwnerID)
				assert.Equal(t, entities.PayoutStatusPendente, payouts[i].Status)
				assert.Nil(t, payouts[i].PaidAt)
			}
			assert.True(t, sumPayouts(payouts).Equal(d(tt.net)))
		})
	}
}

func TestSplitPayoutsNegativeResidualGoesToLowestID(t *testing.T) {
	// 0.05 * 50% = 0.025 -> 0.03 each, residual -0.01 lands on o1
	payouts, err := SplitPayouts("ctr-1", d("0.05"), []entities.Owner{owner("o2", "50"), owner("o1", "50")})
	require.NoError(t, err)
	assert.Equal(t, "0.03", money(payouts[0].Value))
	assert.Equal(t, "0.02", money(payouts[1].Value))
}

func TestSplitPayoutsOwnershipGuard(t *testing.T) {
	tests := []struct {
		name   string
		owners []entities.Owner
	}{
		{"99.99", []entities.Owner{owner("o1", "50"), owner("o2", "49.99")}},
		{"100.01", []entities.Owner{owner("o1", "50"), owner("o2", "50.01")}},
		{"no owners", nil},
		{"negative percent", []entities.Owner{owner("o1", "110"), owner("o2", "-10")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payouts, err := SplitPayouts("ctr-1", d("1000.00"), tt.owners)
			var merr *OwnershipMismatchError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, "ctr-1", merr.ContractID)
			assert.Empty(t, payouts)
		})
	}
}

func TestSplitPayoutsIgnoresInactiveOwners(t *testing.T) {
	gone := owner("o3", "50")
	gone.Active = false

	payouts, err := SplitPayouts("ctr-1", d("1000.00"), []entities.Owner{owner("o1", "50"), owner("o2", "50"), gone})
	require.NoError(t, err)
	require.Len(t, payouts, 2)
	assert.Equal(t, 2, PayoutRecipients([]entities.Owner{owner("o1", "50"), owner("o2", "50"), gone, owner("o4", "0")}))
}

func TestSplitPayoutsRejectsNegativeNet(t *testing.T) {
	_, err := SplitPayouts("ctr-1", d("-1"), []entities.Owner{owner("o1", "100")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSplitPayoutsCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(6)
		owners := make([]entities.Owner, n)
		remaining := int64(10000)
		for j := 0; j < n; j++ {
			share := remaining
			if j < n-1 {
				share = rng.Int63n(remaining + 1)
			}
			remaining -= share
			owners[j] = owner(fmt.Sprintf("o%d", j), decimal.New(share, -2).String())
		}
		net := decimal.New(rng.Int63n(10_000_000), -2)

		payouts, err := SplitPayouts("ctr-1", net, owners)
		require.NoError(t, err)
		require.True(t, sumPayouts(payouts).Equal(net), "net %s owners %v", net, owners)
	}
}
