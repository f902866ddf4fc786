package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAccumulatesMessages(t *testing.T) {
	log := NewLog()
	require.Empty(t, log.Msgs())

	log.AddError(Loc{Start: 4}, "something went wrong")

	msgs := log.Msgs()
	require.Len(t, msgs, 1)
	assert.Equal(t, KindError, msgs[0].Kind)
	assert.Equal(t, "something went wrong", msgs[0].Text)
}

func TestMsgStringHasNoColorWhenColorsEmpty(t *testing.T) {
	msg := Msg{Kind: KindError, Text: "boom"}
	rendered := msg.String(Colors{})
	assert.Equal(t, "error: boom\n", rendered)
}

func TestRangeEnd(t *testing.T) {
	r := Range{Loc: Loc{Start: 10}, Len: 5}
	assert.Equal(t, int32(15), r.End())
}

func TestSourceText(t *testing.T) {
	source := Source{Contents: ".button { color: red; }"}
	r := Range{Loc: Loc{Start: 0}, Len: 7}
	assert.Equal(t, ".button", source.Text(r))
}
