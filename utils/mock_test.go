package utils_test

import (
	"testing"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

// captureArg matches any argument and remembers the last one it saw.
type captureArg struct {
	value any
}

func (c *captureArg) Match(v any) bool {
	c.value = v
	return true
}
