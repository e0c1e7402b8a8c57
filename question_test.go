// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuestionUnicastResponseBit(t *testing.T) {
	msg := &Message{
		Questions: []Question{{
			Name:   "example.local.",
			Type:   TypeA,
			Unique: true,
			Class:  ClassINET,
		}},
	}

	raw, err := msg.Pack()
	require.NoError(t, err)

	// The class field follows the name (15 bytes) and the type (2).
	classOff := headerSize + 15 + 2
	require.Equal(t, byte(0x80), raw[classOff]&0x80)

	back, err := Unpack(raw)
	require.NoError(t, err)
	require.True(t, back.Questions[0].Unique)
	require.Equal(t, ClassINET, back.Questions[0].Class)
	require.Equal(t, msg, back)
}

func TestQuestionTruncatedFails(t *testing.T) {
	msg := &Message{
		Questions: []Question{{Name: "example.local.", Type: TypeA, Class: ClassINET}},
	}
	raw, err := msg.Pack()
	require.NoError(t, err)

	// Dropping the trailing class byte truncates the 16-bit read.
	_, err = Unpack(raw[:len(raw)-1])
	require.ErrorIs(t, err, ErrInvalidIntegerSize)
}
