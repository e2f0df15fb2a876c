package curve

import "math/big"

// Point is an immutable affine point (x, y) on a named Edwards curve.
// Operations return new points rather than mutating receivers.
type Point struct {
	Curve ID
	X     *big.Int
	Y     *big.Int
}

func modP(x, p *big.Int) *big.Int {
	m := new(big.Int).Mod(x, p)
	return m
}

// NewPoint constructs a point at (x, y) on curve id without validating that
// it lies on the curve; callers that need validation should check
// IsOnCurve explicitly (e.g. after deserializing an untrusted point).
func NewPoint(id ID, x, y *big.Int) Point {
	c := Get(id)
	return Point{Curve: id, X: modP(x, c.P), Y: modP(y, c.P)}
}

// Neutral returns the curve's identity element (0, 1).
func Neutral(id ID) Point {
	return Point{Curve: id, X: big.NewInt(0), Y: big.NewInt(1)}
}

// Generator returns the curve's standard base point, or its negation (same
// y, negated x) when neg is true.
func Generator(id ID, neg bool) Point {
	c := Get(id)
	if !neg {
		return Point{Curve: id, X: new(big.Int).Set(c.Gx), Y: new(big.Int).Set(c.Gy)}
	}
	return Point{Curve: id, X: modP(new(big.Int).Neg(c.Gx), c.P), Y: new(big.Int).Set(c.Gy)}
}

// IsOnCurve reports whether p satisfies x^2 + y^2 = 1 + d*x^2*y^2 (mod p).
func IsOnCurve(p Point) bool {
	c := Get(p.Curve)
	x2 := new(big.Int).Mul(p.X, p.X)
	y2 := new(big.Int).Mul(p.Y, p.Y)
	lhs := modP(new(big.Int).Add(x2, y2), c.P)

	rhs := new(big.Int).Mul(c.D, x2)
	rhs.Mul(rhs, y2)
	rhs.Add(rhs, big.NewInt(1))
	rhs = modP(rhs, c.P)

	return lhs.Cmp(rhs) == 0
}

// Equal compares two points' coordinates; it does not normalize curve IDs,
// so points from different curves are never equal.
func Equal(a, b Point) bool {
	return a.Curve == b.Curve && a.X.Cmp(b.X) == 0 && a.Y.Cmp(b.Y) == 0
}

// Negate returns the opposite of p: if p = (x, y), -p = (-x, y).
func Negate(p Point) Point {
	c := Get(p.Curve)
	return Point{Curve: p.Curve, X: modP(new(big.Int).Neg(p.X), c.P), Y: new(big.Int).Set(p.Y)}
}

// Add computes the unified Edwards addition formula (spec §4.4):
//
//	x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)  mod p
//	y3 = (y1*y2 - x1*x2) / (1 - d*x1*x2*y1*y2)  mod p
//
// The formula is complete on the curve; no special case is needed for
// doubling or for either operand being the neutral element.
func Add(a, b Point) Point {
	if a.Curve != b.Curve {
		panic("curve: cannot add points from different curves")
	}
	c := Get(a.Curve)
	p := c.P

	x1y2 := new(big.Int).Mul(a.X, b.Y)
	y1x2 := new(big.Int).Mul(a.Y, b.X)
	xNum := modP(new(big.Int).Add(x1y2, y1x2), p)

	y1y2 := new(big.Int).Mul(a.Y, b.Y)
	x1x2 := new(big.Int).Mul(a.X, b.X)
	yNum := modP(new(big.Int).Sub(y1y2, x1x2), p)

	dx1x2y1y2 := new(big.Int).Mul(c.D, x1x2)
	dx1x2y1y2.Mul(dx1x2y1y2, y1y2)

	xDenom := modP(new(big.Int).Add(big.NewInt(1), dx1x2y1y2), p)
	xDenom.ModInverse(xDenom, p)

	yDenom := modP(new(big.Int).Sub(big.NewInt(1), dx1x2y1y2), p)
	yDenom.ModInverse(yDenom, p)

	x3 := modP(new(big.Int).Mul(xNum, xDenom), p)
	y3 := modP(new(big.Int).Mul(yNum, yDenom), p)

	return Point{Curve: a.Curve, X: x3, Y: y3}
}

// ScalarMul computes scalar*p with a double-and-add ladder that performs
// the same two additions on every iteration regardless of the scalar bit.
// It is not branch-free: each iteration branches on the current bit to pick
// which register receives which sum, the iteration count follows the
// scalar's bit length, and a zero scalar returns early.
func ScalarMul(p Point, scalar *big.Int) Point {
	r0 := Neutral(p.Curve)
	r1 := p
	if scalar.Sign() == 0 {
		return r0
	}
	for i := scalar.BitLen(); i >= 0; i-- {
		if scalar.Bit(i) == 1 {
			r0 = Add(r0, r1)
			r1 = Add(r1, r1)
		} else {
			r1 = Add(r0, r1)
			r0 = Add(r0, r0)
		}
	}
	return r0
}

// sqrtModP computes a square root of v modulo the curve's prime p, where p
// is congruent to 3 mod 4 (true for E521, E448, and E222's primes), with
// the requested least-significant bit. Returns nil if v is not a quadratic
// residue mod p.
func sqrtModP(v, p *big.Int, lsb uint) *big.Int {
	if v.Sign() == 0 {
		return big.NewInt(0)
	}
	exp := new(big.Int).Rsh(p, 2)
	exp.Add(exp, big.NewInt(1))
	r := new(big.Int).Exp(v, exp, p)

	if r.Bit(0) != lsb {
		r.Sub(p, r)
	}
	check := new(big.Int).Mul(r, r)
	check.Sub(check, v)
	check = modP(check, p)
	if check.Sign() != 0 {
		return nil
	}
	return r
}

// solveForY solves x^2 + y^2 = 1 + d*x^2*y^2 for y given x, returning the
// root whose least significant bit matches lsb.
func solveForY(c *Curve, x *big.Int, lsb uint) *big.Int {
	x2 := new(big.Int).Mul(x, x)
	num := modP(new(big.Int).Sub(big.NewInt(1), x2), c.P)

	denom := new(big.Int).Mul(c.D, x2)
	denom = modP(new(big.Int).Sub(big.NewInt(1), denom), c.P)
	denom.ModInverse(denom, c.P)

	radicand := modP(new(big.Int).Mul(num, denom), c.P)
	return sqrtModP(radicand, c.P, lsb)
}

// FromX recovers a point from its x-coordinate and the desired parity of y,
// returning false if the radicand in the curve equation is not a quadratic
// residue mod p (spec §4.4 "point from x").
func FromX(id ID, x *big.Int, yLSB uint) (Point, bool) {
	c := Get(id)
	y := solveForY(c, x, yLSB)
	if y == nil {
		return Point{}, false
	}
	return Point{Curve: id, X: modP(new(big.Int).Set(x), c.P), Y: y}, true
}
