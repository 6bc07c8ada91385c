package game

import "math/bits"

// eachFiveCard invokes fn for every 5-card subset of hand. Subsets are
// enumerated by bitmask; emission order is unspecified.
func eachFiveCard(hand Hand, fn func(Hand)) {
	n := len(hand)
	for mask := 0; mask < 1<<n; mask++ {
		if bits.OnesCount(uint(mask)) != 5 {
			continue
		}
		subset := make(Hand, 0, 5)
		for i := 0; i < n; i++ {
			if (mask>>i)&1 == 1 {
				subset = append(subset, hand[i])
			}
		}
		fn(subset)
	}
}
