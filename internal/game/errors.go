package game

import "errors"

var (
	// ErrMalformedCard means a token is not a valid two-character card.
	ErrMalformedCard = errors.New("malformed card")

	// ErrDuplicateCard means the same concrete card appears twice in a hand.
	ErrDuplicateCard = errors.New("duplicate card")

	// ErrInvalidJoker means more than two jokers, a repeated joker color,
	// or an unrecognized joker literal.
	ErrInvalidJoker = errors.New("invalid joker")

	// ErrEmptyHand means fewer than five concrete cards after joker resolution.
	ErrEmptyHand = errors.New("not enough cards")
)
