package blackjack

import "errors"

// ErrRoomNotFound is returned when a room lookup fails
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomFull is returned when a player tries to join a room at capacity
var ErrRoomFull = errors.New("room is full")

// ErrSeatTaken is returned when a seat is already occupied
var ErrSeatTaken = errors.New("seat is already taken")

// ErrInvalidSeat is returned when a seat index is out of range
var ErrInvalidSeat = errors.New("invalid seat")

// ErrInsufficientFunds is returned when a bet exceeds the player's balance
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidBet is returned when a bet is zero or negative
var ErrInvalidBet = errors.New("bet must be greater than zero")

// ErrActionOutOfTurn is returned for a hit or stand from a seat that does not hold the current turn
var ErrActionOutOfTurn = errors.New("action out of turn")

// ErrRoundInProgress is returned for a seat change or bet attempted while a round is being played
var ErrRoundInProgress = errors.New("round in progress")

// ErrPlayerNotFound is returned when a player is not in the room
var ErrPlayerNotFound = errors.New("player not found")

// ErrInvalidHand is returned when a hand index is out of range
var ErrInvalidHand = errors.New("invalid hand")
