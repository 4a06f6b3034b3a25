package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type flags struct {
	bits uint8
	on   bool
	name string
	f    float64
}

func (f *flags) Bits() uint8        { return f.bits }
func (f *flags) SetBits(v uint8)    { f.bits = v }
func (f *flags) On() bool           { return f.on }
func (f *flags) SetOn(v bool)       { f.on = v }
func (f *flags) Name() string       { return f.name }
func (f *flags) SetName(v string)   { f.name = v }
func (f *flags) Float() float64     { return f.f }
func (f *flags) SetFloat(v float64) { f.f = v }

func TestArithmeticDoesNotWrite(t *testing.T) {
	c, p := newCounter(7)
	c.sets = 0

	assert.Equal(t, 10, Add(p, 3))
	assert.Equal(t, 4, Sub(p, 3))
	assert.Equal(t, 21, Mul(p, 3))
	assert.Equal(t, 2, Quo(p, 3))
	assert.Equal(t, 1, Rem(p, 3))
	assert.Equal(t, 7, Pos(p))
	assert.Equal(t, -7, Neg(p))
	assert.Equal(t, 7, c.v)
	assert.Zero(t, c.sets)
}

func TestArithmeticOnReadOnly(t *testing.T) {
	_, p := newCounter(7)
	r := p.ReadOnly()
	assert.Equal(t, 14, Mul(r, 2))
	assert.True(t, Gt(r, 6))
}

func TestCompoundAssignment(t *testing.T) {
	c, p := newCounter(10)

	AddAssign(p, 5)
	assert.Equal(t, 15, c.v)
	SubAssign(p, 3)
	assert.Equal(t, 12, c.v)
	MulAssign(p, 2)
	assert.Equal(t, 24, c.v)
	QuoAssign(p, 5)
	assert.Equal(t, 4, c.v)
	RemAssign(p, 3)
	assert.Equal(t, 1, c.v)

	// Handles are returned so calls chain.
	AddAssign(MulAssign(p, 10), 1)
	assert.Equal(t, 11, c.v)
}

func TestCompoundIsOneReadModifyWrite(t *testing.T) {
	c, p := newCounter(1)
	c.gets, c.sets = 0, 0

	AddAssign(p, 1)
	assert.Equal(t, 1, c.gets)
	assert.Equal(t, 1, c.sets)
}

func TestIncDec(t *testing.T) {
	c, p := newCounter(5)

	assert.Equal(t, 6, Inc(p).Get())
	assert.Equal(t, 5, Dec(p).Get())

	assert.Equal(t, 5, PostInc(p))
	assert.Equal(t, 6, c.v)
	assert.Equal(t, 6, PostDec(p))
	assert.Equal(t, 5, c.v)
}

func TestFloatAndString(t *testing.T) {
	f := &flags{f: 1.5, name: "node"}
	fp := New(f, (*flags).Float, (*flags).SetFloat)
	np := New(f, (*flags).Name, (*flags).SetName)

	QuoAssign(fp, 2)
	assert.InDelta(t, 0.75, f.f, 1e-9)
	Inc(fp)
	assert.InDelta(t, 1.75, f.f, 1e-9)

	assert.Equal(t, "node-1", Add(np, "-1"))
	AddAssign(np, "_a")
	assert.Equal(t, "node_a", f.name)
}

func TestBitwise(t *testing.T) {
	f := &flags{bits: 0b1010}
	p := New(f, (*flags).Bits, (*flags).SetBits)

	assert.Equal(t, uint8(0b1000), And(p, 0b1100))
	assert.Equal(t, uint8(0b1110), Or(p, 0b0100))
	assert.Equal(t, uint8(0b0110), Xor(p, 0b1100))
	assert.Equal(t, uint8(0b0010), AndNot(p, 0b1000))
	assert.Equal(t, uint8(0b11110101), Complement(p))
	assert.Equal(t, uint8(0b10100), Shl(p, 1))
	assert.Equal(t, uint8(0b101), Shr(p, 1))
	assert.Equal(t, uint8(0b1010), f.bits)

	OrAssign(p, 0b0001)
	assert.Equal(t, uint8(0b1011), f.bits)
	AndAssign(p, 0b0011)
	assert.Equal(t, uint8(0b0011), f.bits)
	XorAssign(p, 0b0110)
	assert.Equal(t, uint8(0b0101), f.bits)
	AndNotAssign(p, 0b0001)
	assert.Equal(t, uint8(0b0100), f.bits)
	ShlAssign(p, 2)
	assert.Equal(t, uint8(0b10000), f.bits)
	ShrAssign(p, uint(3))
	assert.Equal(t, uint8(0b10), f.bits)
}

func TestNot(t *testing.T) {
	f := &flags{on: true}
	p := New(f, (*flags).On, (*flags).SetOn)
	assert.False(t, Not(p))
	assert.True(t, f.on)
}

func TestComparison(t *testing.T) {
	_, p := newCounter(4)

	assert.True(t, Eq(p, 4))
	assert.False(t, Ne(p, 4))
	assert.True(t, Lt(p, 5))
	assert.True(t, Le(p, 4))
	assert.False(t, Gt(p, 4))
	assert.True(t, Ge(p, 4))
}
