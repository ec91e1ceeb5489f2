package messaging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedial(t *testing.T) {
	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		calls := 0
		ok := redial(make(chan struct{}), func() error {
			calls++
			return nil
		})
		assert.True(t, ok)
		assert.Equal(t, 1, calls)
	})

	t.Run("StopsWhenClosed", func(t *testing.T) {
		stop := make(chan struct{})
		close(stop)

		calls := 0
		ok := redial(stop, func() error {
			calls++
			return errors.New("connection refused")
		})
		assert.False(t, ok)
		assert.Equal(t, 1, calls)
	})
}
