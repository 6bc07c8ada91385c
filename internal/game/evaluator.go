package game

import (
	"sort"
)

type HandRank int

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (r HandRank) String() string {
	switch r {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "unknown"
	}
}

// RankedHand is a classified hand: its category plus the ordered tie-break
// values for that category (most significant first).
type RankedHand struct {
	Rank   HandRank
	Values []int
}

// RankKey is the comparable form of a RankedHand: category ordinal followed
// by the tie-break values. Keys are compared lexicographically and never
// interpreted structurally by callers.
type RankKey []int

func (h RankedHand) Key() RankKey {
	key := make(RankKey, 0, len(h.Values)+1)
	key = append(key, int(h.Rank))
	return append(key, h.Values...)
}

// CompareKeys orders two rank keys lexicographically. Returns >0 if a beats
// b, <0 if b beats a, 0 on a genuine tie.
func CompareKeys(a, b RankKey) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return len(a) - len(b)
}

func getCounts(hand Hand) (map[int]int, []int) {
	counts := map[int]int{}
	values := []int{}
	for _, card := range hand {
		val := rankValueMap[card.Rank]
		counts[val]++
		values = append(values, val)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	return counts, values
}

func isFlush(hand Hand) bool {
	if len(hand) != 5 {
		return false
	}
	firstSuit := hand[0].Suit
	for _, card := range hand[1:] {
		if card.Suit != firstSuit {
			return false
		}
	}
	return true
}

// isStraight expects values sorted descending. A straight is exactly five
// distinct ranks with four unit gaps; a repeated rank produces a zero gap
// and fails. A-2-3-4-5 is not a straight here: the ace only ranks high.
func isStraight(values []int) bool {
	if len(values) != 5 {
		return false
	}
	for i := 1; i < len(values); i++ {
		if values[i-1]-values[i] != 1 {
			return false
		}
	}
	return true
}

// kind returns the highest rank value appearing exactly n times, or 0.
func kind(counts map[int]int, n int) int {
	best := 0
	for val, count := range counts {
		if count == n && val > best {
			best = val
		}
	}
	return best
}

func numPairs(counts map[int]int) int {
	pairs := 0
	for _, count := range counts {
		if count == 2 {
			pairs++
		}
	}
	return pairs
}

// remaining returns values (already sorted descending) with every occurrence
// of the excluded ranks removed.
func remaining(values []int, exclude ...int) []int {
	var rest []int
	for _, v := range values {
		skip := false
		for _, x := range exclude {
			if v == x {
				skip = true
				break
			}
		}
		if !skip {
			rest = append(rest, v)
		}
	}
	return rest
}

// RankHand classifies a 5-card hand. Categories are checked in descending
// precedence; the first match wins. Tie-break values per category:
//
//	StraightFlush  [top rank]
//	FourOfAKind    [quad, kicker]
//	FullHouse      [triple, pair]
//	Flush          all five ranks descending
//	Straight       [top rank]
//	ThreeOfAKind   [triple, kickers descending]
//	TwoPair        [high pair, low pair, kicker]
//	OnePair        [pair, kickers descending]
//	HighCard       all five ranks descending
func RankHand(hand Hand) RankedHand {
	counts, values := getCounts(hand)
	flush := isFlush(hand)
	straight := isStraight(values)

	switch {
	case flush && straight:
		return RankedHand{Rank: StraightFlush, Values: []int{values[0]}}
	case kind(counts, 4) != 0:
		quad := kind(counts, 4)
		return RankedHand{Rank: FourOfAKind, Values: append([]int{quad}, remaining(values, quad)...)}
	case kind(counts, 3) != 0 && kind(counts, 2) != 0:
		return RankedHand{Rank: FullHouse, Values: []int{kind(counts, 3), kind(counts, 2)}}
	case flush:
		return RankedHand{Rank: Flush, Values: values}
	case straight:
		return RankedHand{Rank: Straight, Values: []int{values[0]}}
	case kind(counts, 3) != 0:
		triple := kind(counts, 3)
		return RankedHand{Rank: ThreeOfAKind, Values: append([]int{triple}, remaining(values, triple)...)}
	case numPairs(counts) == 2:
		high := kind(counts, 2)
		low := 0
		for val, count := range counts {
			if count == 2 && val != high {
				low = val
			}
		}
		return RankedHand{Rank: TwoPair, Values: append([]int{high, low}, remaining(values, high, low)...)}
	case kind(counts, 2) != 0:
		pair := kind(counts, 2)
		return RankedHand{Rank: OnePair, Values: append([]int{pair}, remaining(values, pair)...)}
	default:
		return RankedHand{Rank: HighCard, Values: values}
	}
}
