package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 5, ToInt(5))
	assert.Equal(t, 7, ToInt(int64(7)))
	assert.Equal(t, 3, ToInt(3.9))
	assert.Equal(t, 20, ToInt(" 20 "))
	assert.Equal(t, 12, ToInt([]byte("12")))
	assert.Equal(t, 0, ToInt("many"))
	assert.Equal(t, 0, ToInt(""))
}

func TestToBool(t *testing.T) {
	for _, v := range []any{true, 1, "1", "true", "TRUE", "yes", []byte("true")} {
		assert.True(t, ToBool(v), "%v", v)
	}
	for _, v := range []any{false, 0, 2, "", "false", "no", nil, 1.0} {
		assert.False(t, ToBool(v), "%v", v)
	}
}
