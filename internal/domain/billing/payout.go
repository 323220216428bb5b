package billing

import (
	"repasse_imoveis/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ActiveOwners filters the owners that take part in a split.
func ActiveOwners(owners []entities.Owner) []entities.Owner {
	out := make([]entities.Owner, 0, len(owners))
	for _, o := range owners {
		if o.Active {
			out = append(out, o)
		}
	}
	return out
}

// PayoutRecipients counts the active owners that will actually receive money.
func PayoutRecipients(owners []entities.Owner) int {
	n := 0
	for _, o := range ActiveOwners(owners) {
		if o.OwnershipPercent.IsPositive() {
			n++
		}
	}
	return n
}

// CheckOwnership fails unless active ownership sums to exactly 100.
func CheckOwnership(contractID string, owners []entities.Owner) error {
	total := decimal.Zero
	for _, o := range ActiveOwners(owners) {
		if o.OwnershipPercent.IsNegative() {
			return &OwnershipMismatchError{ContractID: contractID, Total: o.OwnershipPercent}
		}
		total = total.Add(o.OwnershipPercent)
	}
	if !total.Equal(hundred) {
		return &OwnershipMismatchError{ContractID: contractID, Total: total}
	}
	return nil
}

// SplitPayouts allocates net across the active owners by ownership percentage.
//
// Each share is rounded to cents; whatever the rounding leaves over (positive or
// negative) goes to the owner with the largest percentage, ties broken by the lowest
// owner id, so the payouts always add up to net exactly. Nothing is allocated when the
// ownership check fails.
func SplitPayouts(contractID string, net decimal.Decimal, owners []entities.Owner) ([]entities.OwnerPayout, error) {
	if err := CheckOwnership(contractID, owners); err != nil {
		return nil, err
	}
	if net.IsNegative() {
		return nil, NewValidationError("net amount to split must not be negative: " + net.StringFixed(2))
	}
	net = RoundCents(net)

	active := ActiveOwners(owners)
	payouts := make([]entities.OwnerPayout, len(active))
	allocated := decimal.Zero
	anchor := 0
	for i, o := range active {
		share := percentOf(net, o.OwnershipPercent)
		payouts[i] = entities.OwnerPayout{
			OwnerID:          o.ID,
			OwnerName:        o.Name,
			OwnershipPercent: o.OwnershipPercent,
			Value:            share,
			Status:           entities.PayoutStatusPendente,
		}
		allocated = allocated.Add(share)
		if takesResidual(o, active[anchor]) {
			anchor = i
		}
	}

	if residual := net.Sub(allocated); !residual.IsZero() {
		payouts[anchor].Value = payouts[anchor].Value.Add(residual)
	}
	return payouts, nil
}

func takesResidual(candidate, current entities.Owner) bool {
	switch candidate.OwnershipPercent.Cmp(current.OwnershipPercent) {
	case 1:
		return true
	case 0:
		return candidate.ID < current.ID
	}
	return false
}
