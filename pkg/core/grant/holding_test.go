package grant

import "testing"

func TestProjectHolding_DecreasingVestingClamp(t *testing.T) {
	// A schedule that falls off a cliff must not drive vested-unsold
	// negative: the floor holds it at zero and redemption stops feeding
	// off a phantom balance.
	sched := flatVested(0)
	sched[2025] = 60000
	sched[2026] = 60000

	prices := projectPrices(0.20)
	out := projectHolding(holdingInput{
		Initial:        100000,
		ReferencePrice: 6.00,
		RedemptionRate: 0.05,
		VestedByYear:   sched,
	}, prices)

	// 2026: redeem 3000 of the 60000 vested-unsold; 2027 vesting drops
	// to 0 while 3000 are already redeemed.
	y27 := out[2027]
	if y27.VestedUnsold != 0 {
		t.Errorf("2027 vested unsold: got %v, want 0", y27.VestedUnsold)
	}
	if y27.UnsoldValue != 0 {
		t.Errorf("2027 unsold value: got %v, want 0", y27.UnsoldValue)
	}

	// With nothing vested-unsold in 2027, 2028 redeems nothing.
	if out[2028].Redeemed != 0 {
		t.Errorf("2028 redeemed: got %v, want 0", out[2028].Redeemed)
	}
}

func TestProjectHolding_GeometricDecay(t *testing.T) {
	// Redemption consumes a fraction of what remains, so the cumulative
	// redeemed balance approaches but never reaches the holding.
	prices := projectPrices(0.20)
	out := projectHolding(holdingInput{
		Initial:        30000,
		ReferencePrice: 2.00,
		RedemptionRate: 0.10,
	}, prices)

	prevCum := 0.0
	for y := FirstRedemptionYear; y <= FinalYear; y++ {
		cum := out[y].CumRedeemed
		if cum <= prevCum {
			t.Errorf("%d: cumulative redeemed not increasing (%v <= %v)", y, cum, prevCum)
		}
		if cum >= 30000 {
			t.Errorf("%d: cumulative redeemed reached the full holding (%v)", y, cum)
		}
		prevCum = cum
	}
}
