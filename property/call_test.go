package property

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hooks struct {
	fn     func(int) int
	say    func(string)
	reads  int
	writes int
}

func (h *hooks) Fn() func(int) int {
	h.reads++
	return h.fn
}

func (h *hooks) SetFn(f func(int) int) {
	h.writes++
	h.fn = f
}

func (h *hooks) Say() func(string)     { return h.say }
func (h *hooks) SetSay(f func(string)) { h.writes++; h.say = f }

func TestCallWritesBackThroughReadWrite(t *testing.T) {
	h := &hooks{fn: func(v int) int { return v * 2 }}
	p := New(h, (*hooks).Fn, (*hooks).SetFn)

	assert.Equal(t, 6, Call1(p, 3))
	assert.Equal(t, 1, h.reads)
	assert.Equal(t, 1, h.writes)
}

func TestCallOnReadOnlyDoesNotWrite(t *testing.T) {
	h := &hooks{fn: func(v int) int { return v + 1 }}
	r := NewReadOnly(h, (*hooks).Fn)

	assert.Equal(t, 4, Call1(r, 3))
	assert.Zero(t, h.writes)
}

func TestDoForwardsArguments(t *testing.T) {
	var got strings.Builder
	h := &hooks{say: func(s string) { got.WriteString(s) }}
	p := New(h, (*hooks).Say, (*hooks).SetSay)

	Do1(p, "hi")
	Do1(p.ReadOnly(), "!")
	assert.Equal(t, "hi!", got.String())
	assert.Equal(t, 1, h.writes)
}

func TestCallArities(t *testing.T) {
	type calls struct {
		zero func() string
		two  func(int, int) int
		done func()
	}
	c := &calls{
		zero: func() string { return "z" },
		two:  func(a, b int) int { return a - b },
	}
	ran := 0
	c.done = func() { ran++ }

	zero := NewReadOnly(c, func(c *calls) func() string { return c.zero })
	two := NewReadOnly(c, func(c *calls) func(int, int) int { return c.two })
	done := NewReadOnly(c, func(c *calls) func() { return c.done })

	assert.Equal(t, "z", Call0(zero))
	assert.Equal(t, 3, Call2(two, 5, 2))
	Do0(done)
	assert.Equal(t, 1, ran)
}

// grid is a value type with an element accessor.
type grid struct {
	rows [3][2]int
}

func (g grid) At(i int) [2]int { return g.rows[i] }

type board struct {
	g      grid
	writes int
}

func (b *board) Grid() grid { return b.g }

func (b *board) SetGrid(g grid) {
	b.writes++
	b.g = g
}

func TestIndexReturnsCopyAndWritesBackOnce(t *testing.T) {
	b := &board{g: grid{rows: [3][2]int{{1, 2}, {3, 4}, {5, 6}}}}
	p := New(b, (*board).Grid, (*board).SetGrid)

	row := Index(p, 1)
	assert.Equal(t, [2]int{3, 4}, row)
	assert.Equal(t, 1, b.writes)

	row[0] = 99
	assert.Equal(t, [2]int{3, 4}, p.Get().At(1))

	Index(p.ReadOnly(), 0)
	assert.Equal(t, 1, b.writes)
}

type bag struct {
	items []string
	tags  map[string]int
	n     int
}

func (b *bag) Items() []string          { return b.items }
func (b *bag) SetItems(v []string)      { b.n++; b.items = v }
func (b *bag) Tags() map[string]int     { return b.tags }
func (b *bag) SetTags(v map[string]int) { b.n++; b.tags = v }

func TestElemAndLookup(t *testing.T) {
	b := &bag{items: []string{"a", "b"}, tags: map[string]int{"x": 1}}
	items := New(b, (*bag).Items, (*bag).SetItems)
	tags := New(b, (*bag).Tags, (*bag).SetTags)

	assert.Equal(t, "b", Elem(items, 1))
	v, ok := Lookup(tags, "x")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = Lookup(tags.ReadOnly(), "y")
	assert.False(t, ok)
	assert.Equal(t, 2, b.n)
}
