package game

import "fmt"

func validateHand(hand Hand, jokers int) error {
	seen := make(map[Card]bool, len(hand))
	for _, c := range hand {
		if seen[c] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = true
	}
	if len(hand)+jokers < 5 {
		return fmt.Errorf("%w: %d cards", ErrEmptyHand, len(hand)+jokers)
	}
	return nil
}

// BestHand returns the 5-card subset of the given concrete cards with the
// maximum rank key, together with its classification. Ties are broken
// arbitrarily.
func BestHand(hand Hand) (Hand, RankedHand, error) {
	if err := validateHand(hand, 0); err != nil {
		return nil, RankedHand{}, err
	}

	var best Hand
	var bestRanked RankedHand
	var bestKey RankKey
	eachFiveCard(hand, func(subset Hand) {
		ranked := RankHand(subset)
		key := ranked.Key()
		if best == nil || CompareKeys(key, bestKey) > 0 {
			best = subset
			bestRanked = ranked
			bestKey = key
		}
	})
	return best, bestRanked, nil
}

// BestWildHand resolves the jokers against the stem and returns the 5-card
// subset with the global maximum rank key across every candidate. With no
// jokers it behaves exactly like BestHand.
func BestWildHand(stem Hand, jokers []JokerColor) (Hand, RankedHand, error) {
	if err := validateHand(stem, len(jokers)); err != nil {
		return nil, RankedHand{}, err
	}

	candidates, err := ExpandJokers(stem, jokers)
	if err != nil {
		return nil, RankedHand{}, err
	}

	var best Hand
	var bestRanked RankedHand
	var bestKey RankKey
	for _, candidate := range candidates {
		eachFiveCard(candidate, func(subset Hand) {
			ranked := RankHand(subset)
			key := ranked.Key()
			if best == nil || CompareKeys(key, bestKey) > 0 {
				best = subset
				bestRanked = ranked
				bestKey = key
			}
		})
	}
	return best, bestRanked, nil
}

// BestHandTokens is the token-level form of BestHand. Joker tokens are not
// accepted here; use BestWildHandTokens for hands that may hold jokers.
func BestHandTokens(tokens []string) ([]string, error) {
	hand, jokers, err := ParseHand(tokens)
	if err != nil {
		return nil, err
	}
	if len(jokers) > 0 {
		return nil, fmt.Errorf("%w: joker token in a plain hand", ErrMalformedCard)
	}
	best, _, err := BestHand(hand)
	if err != nil {
		return nil, err
	}
	return best.Tokens(), nil
}

// BestWildHandTokens is the token-level form of BestWildHand.
func BestWildHandTokens(tokens []string) ([]string, error) {
	stem, jokers, err := ParseHand(tokens)
	if err != nil {
		return nil, err
	}
	best, _, err := BestWildHand(stem, jokers)
	if err != nil {
		return nil, err
	}
	return best.Tokens(), nil
}
