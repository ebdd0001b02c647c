package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("2♣", CardFromString("2c").String())
	a.Equal("10♢", CardFromString("10d").String())
	a.Equal("J♡", CardFromString("11h").String())
	a.Equal("Q♠", CardFromString("12s").String())
	a.Equal("K♣", CardFromString("13c").String())
	a.Equal("A♠", CardFromString("14s").String())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("5s").Equal(CardFromString("5s")))
	a.False(CardFromString("5s").Equal(CardFromString("5c")))
	a.False(CardFromString("5s").Equal(CardFromString("6s")))
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,11h,14s")
	assert.Equal(t, "2c,11h,14s", CardsToString(cards))
}

func TestCardFromString_badInput(t *testing.T) {
	assert.Nil(t, CardFromString(""))
	assert.Panics(t, func() {
		CardFromString("15c")
	})
	assert.Panics(t, func() {
		CardFromString("5x")
	})
}

func TestFaceDown(t *testing.T) {
	a := assert.New(t)
	a.True(FaceDown.IsFaceDown())
	a.False(CardFromString("2c").IsFaceDown())

	// the sentinel must be distinguishable from every real card on the wire
	b, err := json.Marshal(FaceDown)
	a.NoError(err)
	a.JSONEq(`{"rank":0,"suit":"facedown"}`, string(b))
}
