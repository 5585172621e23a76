package kmi

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"kmi-checker/core/symbols"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCache(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		c := newTableCache(0)
		var loads int
		for i := 0; i < 3; i++ {
			_, err := c.getOrLoad("k", func() (symbols.Table, error) {
				loads++
				return symbols.Table{}, nil
			})
			require.NoError(t, err)
		}
		assert.Equal(t, 3, loads)
	})

	t.Run("Reuses Fresh Entry", func(t *testing.T) {
		c := newTableCache(time.Minute)
		var loads int32
		load := func() (symbols.Table, error) {
			atomic.AddInt32(&loads, 1)
			return symbols.Table{"foo": 1}, nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				table, err := c.getOrLoad("k", load)
				assert.NoError(t, err)
				assert.Equal(t, symbols.CRC(1), table["foo"])
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), atomic.LoadInt32(&loads))

	})

	t.Run("Reloads Expired Entry", func(t *testing.T) {
		c := newTableCache(10 * time.Millisecond)
		var loads int
		load := func() (symbols.Table, error) {
			loads++
			return symbols.Table{}, nil
		}

		_, err := c.getOrLoad("k", load)
		require.NoError(t, err)
		_, err = c.getOrLoad("k", load)
		require.NoError(t, err)
		assert.Equal(t, 1, loads)

		time.Sleep(20 * time.Millisecond)
		_, err = c.getOrLoad("k", load)
		require.NoError(t, err)
		assert.Equal(t, 2, loads)
	})

	t.Run("Errors Are Not Cached", func(t *testing.T) {
		c := newTableCache(time.Minute)
		_, err := c.getOrLoad("k", func() (symbols.Table, error) {
			return nil, errors.New("boom")
		})
		assert.Error(t, err)

		table, err := c.getOrLoad("k", func() (symbols.Table, error) {
			return symbols.Table{"bar": 2}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, symbols.CRC(2), table["bar"])
	})
}
