package symbol

import (
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
	"golang.org/x/sync/errgroup"
)

func TestIntern_ConcurrentSameText(t *testing.T) {
	const goroutines = 64

	symbols := make([]Symbol, goroutines)
	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		i := i
		g.Go(func() error {
			symbols[i] = Intern("concurrent-same-text")
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	// Racing interns of equal text must all observe one identity.
	for i := 1; i < goroutines; i++ {
		assert.Equal(t, symbols[0], symbols[i])
	}
	assert.Equal(t, "concurrent-same-text", symbols[0].String())
}

func TestIntern_ConcurrentDistinctTexts(t *testing.T) {
	const (
		goroutines     = 16
		perGoroutine   = 200
		distinctTotals = goroutines * perGoroutine
	)

	symbols := make([]Symbol, distinctTotals)
	var g errgroup.Group
	for w := 0; w < goroutines; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < perGoroutine; i++ {
				n := w*perGoroutine + i
				symbols[n] = Intern(fmt.Sprintf("concurrent-distinct-%d", n))
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	seen := make(map[Symbol]int, distinctTotals)
	for n, sym := range symbols {
		if prev, ok := seen[sym]; ok {
			t.Fatalf("texts %d and %d interned to the same symbol %v", prev, n, sym)
		}
		seen[sym] = n
		assert.Equal(t, fmt.Sprintf("concurrent-distinct-%d", n), sym.String())
	}
}

func TestIntern_ConcurrentMixedReadWrite(t *testing.T) {
	// Resolving established symbols while other goroutines insert new text
	// must always observe the original text.
	established := make([]Symbol, 100)
	for i := range established {
		established[i] = Intern(fmt.Sprintf("mixed-established-%d", i))
	}

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < 500; i++ {
				Intern(fmt.Sprintf("mixed-writer-%d-%d", w, i))
			}
			return nil
		})
		g.Go(func() error {
			for i := 0; i < 500; i++ {
				sym := established[i%len(established)]
				want := fmt.Sprintf("mixed-established-%d", i%len(established))
				if got := sym.String(); got != want {
					return fmt.Errorf("resolve returned %q, want %q", got, want)
				}
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}
