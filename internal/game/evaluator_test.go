package game

import (
	"strings"
	"testing"
)

func mustHand(t *testing.T, tokens string) Hand {
	t.Helper()
	hand, jokers, err := ParseHand(strings.Fields(tokens))
	if err != nil {
		t.Fatalf("bad hand %q: %v", tokens, err)
	}
	if len(jokers) > 0 {
		t.Fatalf("unexpected joker in %q", tokens)
	}
	return hand
}

func TestCategoryOrdering(t *testing.T) {
	// One canonical hand per category, weakest first. Every later hand must
	// beat every earlier one regardless of its tie-break values.
	ladder := []struct {
		name   string
		tokens string
		rank   HandRank
	}{
		{"high card", "AC QD 9H 7S 3C", HighCard},
		{"one pair", "KC KD 8H 6S 3C", OnePair},
		{"two pair", "JC JD 4H 4S 9C", TwoPair},
		{"three of a kind", "QC QD QH 7S 2H", ThreeOfAKind},
		{"straight", "TC 9D 8H 7S 6C", Straight},
		{"flush", "AH JH 9H 7H 5H", Flush},
		{"full house", "TC TD TH 8C 8S", FullHouse},
		{"four of a kind", "7C 7D 7H 7S JD", FourOfAKind},
		{"straight flush", "9C 8C 7C 6C 5C", StraightFlush},
	}

	for i, entry := range ladder {
		ranked := RankHand(mustHand(t, entry.tokens))
		if ranked.Rank != entry.rank {
			t.Errorf("%s: classified as %s", entry.name, ranked.Rank)
		}
		for j := 0; j < i; j++ {
			weaker := RankHand(mustHand(t, ladder[j].tokens))
			if CompareKeys(ranked.Key(), weaker.Key()) <= 0 {
				t.Errorf("%s does not beat %s", entry.name, ladder[j].name)
			}
		}
	}
}

func TestWheelIsNotStraight(t *testing.T) {
	// The ace only ranks high: A-2-3-4-5 is not a straight.
	ranked := RankHand(mustHand(t, "AH 2S 3D 4C 5H"))
	if ranked.Rank != HighCard {
		t.Errorf("expected A-2-3-4-5 to classify as High Card, got %s", ranked.Rank)
	}
	if len(ranked.Values) != 5 || ranked.Values[0] != 14 {
		t.Errorf("expected ace-high values, got %v", ranked.Values)
	}
}

func TestStraightFlushTieBreak(t *testing.T) {
	ten := RankHand(mustHand(t, "TC 9C 8C 7C 6C"))
	nine := RankHand(mustHand(t, "9C 8C 7C 6C 5C"))
	if CompareKeys(ten.Key(), nine.Key()) <= 0 {
		t.Errorf("T-high straight flush should beat 9-high")
	}
}

func TestFourOfAKindKicker(t *testing.T) {
	ranked := RankHand(mustHand(t, "7C 7D 7H 7S JD"))
	if ranked.Rank != FourOfAKind {
		t.Fatalf("expected Four of a Kind, got %s", ranked.Rank)
	}
	if len(ranked.Values) != 2 || ranked.Values[0] != 7 || ranked.Values[1] != 11 {
		t.Errorf("expected values [7 11], got %v", ranked.Values)
	}
}

func TestFullHouseCompare(t *testing.T) {
	// Trips dominate: queens full of nines beats jacks full of aces.
	queens := RankHand(mustHand(t, "QH QS QD 9C 9H"))
	jacks := RankHand(mustHand(t, "JC JH JS AD AC"))
	if CompareKeys(queens.Key(), jacks.Key()) <= 0 {
		t.Errorf("expected QQQ99 to beat JJJAA")
	}
}

func TestFlushVsFlush(t *testing.T) {
	aceHigh := RankHand(mustHand(t, "AH JH 9H 7H 5H"))
	kingHigh := RankHand(mustHand(t, "KS QS JS 9S 7S"))
	if CompareKeys(aceHigh.Key(), kingHigh.Key()) <= 0 {
		t.Errorf("ace-high flush should beat king-high flush")
	}

	lowerKicker := RankHand(mustHand(t, "AC JC 9C 7C 4C"))
	if CompareKeys(aceHigh.Key(), lowerKicker.Key()) <= 0 {
		t.Errorf("flush with 5 kicker should beat flush with 4 kicker")
	}
}

func TestStraightHighCard(t *testing.T) {
	ten := RankHand(mustHand(t, "6H 7S 8D 9C TH"))
	nine := RankHand(mustHand(t, "5C 6H 7S 8D 9C"))
	if CompareKeys(ten.Key(), nine.Key()) <= 0 {
		t.Errorf("T-high straight should beat 9-high straight")
	}
}

func TestThreeOfAKindKickers(t *testing.T) {
	ranked := RankHand(mustHand(t, "QC QD QH 7S 2H"))
	want := []int{12, 7, 2}
	if len(ranked.Values) != len(want) {
		t.Fatalf("expected values %v, got %v", want, ranked.Values)
	}
	for i := range want {
		if ranked.Values[i] != want[i] {
			t.Fatalf("expected values %v, got %v", want, ranked.Values)
		}
	}
}

func TestTwoPairKick(t *testing.T) {
	queenKicker := RankHand(mustHand(t, "AH AS KD KC QH"))
	jackKicker := RankHand(mustHand(t, "AC AD KH KS JC"))
	if queenKicker.Rank != TwoPair {
		t.Fatalf("expected Two Pair, got %s", queenKicker.Rank)
	}
	if CompareKeys(queenKicker.Key(), jackKicker.Key()) <= 0 {
		t.Errorf("expected queen kicker to beat jack kicker")
	}
}

func TestOnePairKick(t *testing.T) {
	nineKicker := RankHand(mustHand(t, "AH AS KD QC 9H"))
	eightKicker := RankHand(mustHand(t, "AC AD KH QS 8C"))
	if CompareKeys(nineKicker.Key(), eightKicker.Key()) <= 0 {
		t.Errorf("expected 9 kicker to beat 8 kicker")
	}
}

func TestHighCardKick(t *testing.T) {
	nine := RankHand(mustHand(t, "AH KS QD JC 9H"))
	eight := RankHand(mustHand(t, "AC KH QS JD 8C"))
	if CompareKeys(nine.Key(), eight.Key()) <= 0 {
		t.Errorf("expected better last kicker to win")
	}
}

func TestIdenticalRanksTie(t *testing.T) {
	h1 := RankHand(mustHand(t, "AH KS QD JC 9H"))
	h2 := RankHand(mustHand(t, "AC KH QS JD 9C"))
	if CompareKeys(h1.Key(), h2.Key()) != 0 {
		t.Errorf("suit-only differences should tie")
	}
}

func TestInvalidHandSize(t *testing.T) {
	// A single card is neither a flush nor a straight.
	ranked := RankHand(Hand{{Rank: "A", Suit: Hearts}})
	if ranked.Rank != HighCard {
		t.Errorf("expected High Card for a 1-card hand, got %s", ranked.Rank)
	}
}
