package ownership_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/shared_instance_go/ownership"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeak_LockWhileAlive(t *testing.T) {
	f := &file{name: "a"}
	s := ownership.NewShared(f)
	w := ownership.NewWeak(s)
	defer w.Reset()

	assert.False(t, w.Expired())
	assert.Equal(t, int64(1), w.UseCount())
	assert.Equal(t, s.Owner(), w.Owner())

	locked := w.Lock()
	require.False(t, locked.IsNil())
	assert.Same(t, f, locked.Get())
	assert.Equal(t, int64(2), s.UseCount())

	locked.Reset()
	s.Reset()
	assert.True(t, w.Expired())
	assert.Equal(t, int32(1), f.closed.Load())
}

func TestWeak_LockAfterRelease(t *testing.T) {
	s := ownership.NewShared(&file{name: "a"})
	w := ownership.NewWeak(s)
	c := w.Clone()
	s.Reset()

	assert.True(t, w.Lock().IsNil())
	assert.True(t, c.Lock().IsNil())
	w.Reset()
	c.Reset()
}

func TestWeak_ZeroValue(t *testing.T) {
	var w ownership.Weak[*file]
	assert.True(t, w.Expired())
	assert.True(t, w.Lock().IsNil())
	assert.True(t, w.Owner().IsZero())
	assert.True(t, ownership.NewWeak(ownership.Shared[*file]{}).Expired())
}

func TestWeak_OwnerBefore(t *testing.T) {
	a := ownership.NewShared(&file{name: "a"})
	b := ownership.NewShared(&file{name: "b"})
	wb := ownership.NewWeak(b)
	defer a.Reset()
	defer b.Reset()
	defer wb.Reset()

	assert.NotEqual(t, a.OwnerBefore(wb), wb.OwnerBefore(a))
	assert.False(t, wb.OwnerBefore(wb))
	assert.False(t, wb.OwnerBefore(b))
}

func TestWeak_NeverRevivesUnderConcurrentRelease(t *testing.T) {
	for i := 0; i < 50; i++ {
		f := &file{name: "a"}
		s := ownership.NewShared(f)
		w := ownership.NewWeak(s)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Reset()
		}()
		go func() {
			defer wg.Done()
			locked := w.Lock()
			if !locked.IsNil() {
				assert.Equal(t, int32(0), f.closed.Load())
				locked.Reset()
			}
		}()
		wg.Wait()

		assert.True(t, w.Expired())
		assert.Equal(t, int32(1), f.closed.Load())
		w.Reset()
	}
}

func TestUnique_ReleaseAndReset(t *testing.T) {
	f := &file{name: "a"}
	u := ownership.NewUnique(f)
	assert.False(t, u.IsNil())
	assert.Same(t, f, u.Get())

	got := u.Release()
	assert.Same(t, f, got)
	assert.True(t, u.IsNil())
	assert.Equal(t, int32(0), f.closed.Load())

	g := &file{name: "b"}
	u = ownership.NewUnique(g)
	u.Reset()
	assert.True(t, u.IsNil())
	assert.Equal(t, int32(1), g.closed.Load())
	u.Reset()
	assert.Equal(t, int32(1), g.closed.Load())
}

func TestUnique_TooManyDeletersPanics(t *testing.T) {
	d := ownership.DeleterFunc[*file](func(*file) {})
	assert.Panics(t, func() {
		ownership.NewUnique[*file](&file{}, d, d)
	})
}
