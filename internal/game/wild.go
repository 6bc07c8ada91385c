package game

// Color-restricted joker decks, built once at start. A black joker resolves
// to any rank of clubs or spades, a red joker to hearts or diamonds.
var (
	blackDeck Deck
	redDeck   Deck
)

func init() {
	for _, s := range []Suit{Clubs, Spades} {
		for _, r := range Ranks {
			blackDeck = append(blackDeck, Card{Suit: s, Rank: r})
		}
	}
	for _, s := range []Suit{Hearts, Diamonds} {
		for _, r := range Ranks {
			redDeck = append(redDeck, Card{Suit: s, Rank: r})
		}
	}
}

func jokerDeck(color JokerColor) Deck {
	if color == BlackJoker {
		return blackDeck
	}
	return redDeck
}

// jokerChoices returns every card of the joker's color family not already
// held in the given hand.
func jokerChoices(color JokerColor, held Hand) Deck {
	excluded := make(map[Card]bool, len(held))
	for _, c := range held {
		excluded[c] = true
	}

	var choices Deck
	for _, c := range jokerDeck(color) {
		if !excluded[c] {
			choices = append(choices, c)
		}
	}
	return choices
}

// ExpandJokers produces every concrete hand obtainable by resolving the
// jokers against the stem: a cross product of per-joker replacement choices,
// each choice excluding cards already in the candidate being extended. With
// no jokers the stem itself is the only candidate.
func ExpandJokers(stem Hand, jokers []JokerColor) ([]Hand, error) {
	if len(jokers) > 2 {
		return nil, ErrInvalidJoker
	}

	candidates := []Hand{stem}
	for _, color := range jokers {
		var next []Hand
		for _, base := range candidates {
			for _, c := range jokerChoices(color, base) {
				candidate := make(Hand, 0, len(base)+1)
				candidate = append(candidate, base...)
				candidate = append(candidate, c)
				next = append(next, candidate)
			}
		}
		candidates = next
	}
	return candidates, nil
}
