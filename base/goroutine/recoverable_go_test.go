package goroutine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecoverableGo(t *testing.T) {
	req := require.New(t)

	ch := RecoverableGo(func() {})
	_, ok := <-ch
	req.False(ok)

	ch = RecoverableGo(func() { panic("boom") })
	ev, ok := <-ch
	req.True(ok)
	req.Equal("boom", ev.Panic)
	req.NotEmpty(ev.Stack)
}

func TestRecoverableGoHooks(t *testing.T) {
	req := require.New(t)

	started := make(chan struct{}, 1)
	ended := make(chan struct{}, 1)
	recovered := make(chan interface{}, 1)

	ch := RecoverableGo(
		func() { panic("boom") },
		WithBeforeStart(func() { started <- struct{}{} }),
		WithAfterEnded(func() { ended <- struct{}{} }),
		WithAfterRecovered(func(p interface{}, stack []byte) { recovered <- p }),
	)

	<-ch
	req.Len(started, 1)
	req.Len(ended, 1)
	req.Equal("boom", <-recovered)
}
