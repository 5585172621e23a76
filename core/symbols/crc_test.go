package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("Equivalent Encodings", func(t *testing.T) {
		for _, raw := range []string{"0x1A", "0x0000001a", "0x0000001A", "0X1a", " 0x01a "} {
			c, err := Normalize(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, CRC(0x1a), c, raw)
		}
	})

	t.Run("Full Width", func(t *testing.T) {
		c, err := Normalize("0xFFFFFFFF")
		require.NoError(t, err)
		assert.Equal(t, CRC(0xffffffff), c)
	})

	t.Run("Rejected", func(t *testing.T) {
		for _, raw := range []string{"1A", "0xZZ", "0x", "", "xyz", "0x123456789", "0x-1", "0x+1", "0x1 2"} {
			_, err := Normalize(raw)
			assert.ErrorIs(t, err, ErrMalformedCRC, raw)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		for _, v := range []CRC{0, 1, 0x1a, 0xdeadbeef, 0xffffffff} {
			again, err := Normalize(v.String())
			require.NoError(t, err)
			assert.Equal(t, v, again)
		}
	})
}

func TestParseCRC(t *testing.T) {
	c, err := ParseCRC("1a")
	require.NoError(t, err)
	assert.Equal(t, CRC(0x1a), c)

	c, err = ParseCRC("0x0000001A")
	require.NoError(t, err)
	assert.Equal(t, CRC(0x1a), c)

	_, err = ParseCRC("xyz")
	assert.ErrorIs(t, err, ErrMalformedCRC)
}

func TestCRC_Text(t *testing.T) {
	assert.Equal(t, "0x0000001a", CRC(0x1a).String())

	b, err := CRC(0xabc).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0x00000abc", string(b))

	var c CRC
	require.NoError(t, c.UnmarshalText([]byte("0xABC")))
	assert.Equal(t, CRC(0xabc), c)
	assert.ErrorIs(t, c.UnmarshalText([]byte("abc")), ErrMalformedCRC)
}
