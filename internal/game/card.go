package game

import (
	"fmt"
	"strings"
)

type Suit string
type Rank string

const (
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
)

var Suits = []Suit{Clubs, Spades, Hearts, Diamonds}
var Ranks = []Rank{"2", "3", "4", "5", "6", "7", "8", "9", "T", "J", "Q", "K", "A"}

// Numeric rank values. Ace is always high; there is no wheel straight.
var rankValueMap = map[Rank]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7,
	"8": 8, "9": 9, "T": 10, "J": 11, "Q": 12, "K": 13, "A": 14,
}

var suitByLetter = map[byte]Suit{
	'C': Clubs,
	'S': Spades,
	'H': Hearts,
	'D': Diamonds,
}

var letterBySuit = map[Suit]string{
	Clubs:    "C",
	Spades:   "S",
	Hearts:   "H",
	Diamonds: "D",
}

type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// String renders the card back into its two-character token, e.g. "AS".
func (c Card) String() string {
	return string(c.Rank) + letterBySuit[c.Suit]
}

type Deck []Card
type Hand []Card

func (h Hand) Tokens() []string {
	tokens := make([]string, len(h))
	for i, c := range h {
		tokens[i] = c.String()
	}
	return tokens
}

// JokerColor restricts which suits a joker may resolve to.
type JokerColor string

const (
	BlackJoker JokerColor = "B" // clubs or spades
	RedJoker   JokerColor = "R" // hearts or diamonds
)

const (
	BlackJokerToken = "?B"
	RedJokerToken   = "?R"
)

// ParseCard parses a two-character token <RankChar><SuitChar> into a Card.
// Joker tokens are not cards; they are handled by ParseHand.
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrMalformedCard, token)
	}
	rank := Rank(token[:1])
	if _, ok := rankValueMap[rank]; !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrMalformedCard, token)
	}
	suit, ok := suitByLetter[token[1]]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrMalformedCard, token)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseHand splits a token list into concrete cards and joker colors.
// At most one joker per color is allowed; a repeated concrete card is an error.
func ParseHand(tokens []string) (Hand, []JokerColor, error) {
	var hand Hand
	var jokers []JokerColor
	seen := make(map[Card]bool)
	for _, token := range tokens {
		if strings.HasPrefix(token, "?") {
			var color JokerColor
			switch token {
			case BlackJokerToken:
				color = BlackJoker
			case RedJokerToken:
				color = RedJoker
			default:
				return nil, nil, fmt.Errorf("%w: unrecognized joker %q", ErrInvalidJoker, token)
			}
			for _, j := range jokers {
				if j == color {
					return nil, nil, fmt.Errorf("%w: joker %q supplied twice", ErrInvalidJoker, token)
				}
			}
			jokers = append(jokers, color)
			continue
		}
		card, err := ParseCard(token)
		if err != nil {
			return nil, nil, err
		}
		if seen[card] {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}
		seen[card] = true
		hand = append(hand, card)
	}
	return hand, jokers, nil
}

func NewDeck() Deck {
	var d Deck
	for _, s := range Suits {
		for _, r := range Ranks {
			d = append(d, Card{Suit: s, Rank: r})
		}
	}
	return d
}
