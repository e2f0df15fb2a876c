// Package curve implements affine Edwards-curve arithmetic: point addition,
// scalar multiplication, and point recovery from an x-coordinate, over a
// small registry of named curves. Modular arithmetic is built on math/big,
// the same dependency the teacher repository uses for this purpose.
package curve

import "math/big"

// ID names a supported Edwards curve.
type ID int

const (
	// E521 is the primary curve: p = 2^521 - 1, the default pairing with
	// d = 512 KMAC-XOF calls in the protocol layer.
	E521 ID = iota
	// E448 is RFC 8032's Ed448 (Goldilocks) curve.
	E448
	// E222 is a small toy curve used only by this package's own tests,
	// where cheap arithmetic keeps group-law property tests fast; it is
	// never selected by the protocol layer.
	E222
)

func (id ID) String() string {
	switch id {
	case E521:
		return "E521"
	case E448:
		return "E448"
	case E222:
		return "E222"
	default:
		return "unknown"
	}
}

// Curve holds the parameters of an Edwards curve x^2 + y^2 = 1 + d*x^2*y^2
// over F_p: the field prime p, the curve coefficient D, the prime subgroup
// order R, the full group order N = 4R (cofactor times R), and the standard
// generator (Gx, Gy). SecurityD is the KMAC-XOF security strength this
// curve is meant to be used alongside.
type Curve struct {
	ID        ID
	P         *big.Int
	D         *big.Int
	R         *big.Int
	N         *big.Int
	Gx        *big.Int
	Gy        *big.Int
	SecurityD int
}

var registry map[ID]*Curve

func bigFromString(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("curve: bad constant literal: " + s)
	}
	return v
}

func init() {
	registry = map[ID]*Curve{
		E521: newE521(),
		E448: newE448(),
		E222: newE222(),
	}
}

// Cofactor is fixed at 4 for every curve this toolkit supports.
const Cofactor = 4

func newE521() *Curve {
	p := new(big.Int).Lsh(big.NewInt(1), 521)
	p.Sub(p, big.NewInt(1))

	r := bigFromString("1716199415032652428745475199770348304317358825035826352348615864796385795849413675475876651663657849636693659065234142604319282948702542317993421293670108523")
	n := new(big.Int).Mul(r, big.NewInt(Cofactor))

	return &Curve{
		ID:        E521,
		P:         p,
		D:         big.NewInt(-376014),
		R:         r,
		N:         n,
		Gx:        bigFromString("1571054894184995387535939749894317568645297350402905821437625181152304994381188529632591196067604100772673927915114267193389905003276673749012051148356041324"),
		Gy:        big.NewInt(12),
		SecurityD: 512,
	}
}

func newE448() *Curve {
	p := new(big.Int).Lsh(big.NewInt(1), 448)
	t := new(big.Int).Lsh(big.NewInt(1), 224)
	p.Sub(p, t)
	p.Sub(p, big.NewInt(1))

	l := new(big.Int).Lsh(big.NewInt(1), 446)
	l.Sub(l, bigFromString("13818066809895115352007386748515426880336692474882178609894547503885"))
	n := new(big.Int).Mul(l, big.NewInt(Cofactor))

	return &Curve{
		ID:        E448,
		P:         p,
		D:         big.NewInt(-39081),
		R:         l,
		N:         n,
		Gx:        bigFromString("224580040295924300187604334099896036246789641632564134246125461686950415467406032909029192869357953282578032075146446173674602635247710"),
		Gy:        bigFromString("298819210078481492676017930443930673437544040154080242095928241372331506189835876003536878655418784733982303233503462500531545062832660"),
		SecurityD: 512,
	}
}

func newE222() *Curve {
	p := new(big.Int).Lsh(big.NewInt(1), 222)
	p.Sub(p, big.NewInt(117))

	r := bigFromString("1684996666696914987166688442938726735569737456760058294185521417407")
	n := new(big.Int).Mul(r, big.NewInt(Cofactor))

	return &Curve{
		ID:        E222,
		P:         p,
		D:         big.NewInt(160102),
		R:         r,
		N:         n,
		Gx:        bigFromString("2705691079882681090389589001251962954446177367541711474502428610129"),
		Gy:        big.NewInt(28),
		SecurityD: 256,
	}
}

// Get returns the parameter set for id. It panics on an unregistered id
// because IDs are a closed, compile-time-checked enum internal to this
// module; callers never construct arbitrary ID values.
func Get(id ID) *Curve {
	c, ok := registry[id]
	if !ok {
		panic("curve: unregistered curve id")
	}
	return c
}
