//go:build unit

package ticketno_test

import (
	"strings"
	"testing"
	"time"

	"playpark/internal/pkg/ticketno"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)

	t.Run("format", func(t *testing.T) {
		no, err := ticketno.Generate(now)
		require.NoError(t, err)

		parts := strings.Split(no, "-")
		require.Len(t, parts, 3)
		assert.Equal(t, "PP", parts[0])
		assert.Equal(t, "20250110", parts[1])
		assert.Len(t, parts[2], 6)
	})

	t.Run("suffix avoids ambiguous characters", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			no, err := ticketno.Generate(now)
			require.NoError(t, err)
			suffix := no[strings.LastIndex(no, "-")+1:]
			assert.NotContains(t, suffix, "0")
			assert.NotContains(t, suffix, "O")
			assert.NotContains(t, suffix, "1")
			assert.NotContains(t, suffix, "I")
		}
	})

	t.Run("no immediate collisions", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 1000; i++ {
			no, err := ticketno.Generate(now)
			require.NoError(t, err)
			_, dup := seen[no]
			require.False(t, dup, "generated duplicate %s", no)
			seen[no] = struct{}{}
		}
	})
}
