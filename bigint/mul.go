package bigint

import "golang.org/x/sync/errgroup"

// Mul returns a * b.
//
// The magnitude is the convolution of the two limb vectors. Small operands
// use the schoolbook loop; larger ones switch to Karatsuba splitting, and
// very large ones evaluate the three Karatsuba branches concurrently. All
// paths produce identical results.
func (a Int) Mul(b Int) Int {
	if a.sign == Zero || b.sign == Zero {
		return Int{}
	}
	return makeInt(a.sign*b.sign, magMul(a.mag, b.mag))
}

// Square returns a * a. Squaring skips the redundant half of the cross
// products, but is semantically identical to general multiplication.
func (a Int) Square() Int {
	if a.sign == Zero {
		return Int{}
	}
	return makeInt(Positive, magSqr(a.mag))
}

// magMul multiplies two magnitudes, dispatching on operand size.
func magMul(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	short := len(a)
	if len(b) < short {
		short = len(b)
	}
	switch {
	case short < karatsubaThreshold:
		return basicMul(a, b)
	case short >= parallelThreshold:
		return karatsubaMul(a, b, true)
	default:
		return karatsubaMul(a, b, false)
	}
}

// basicMul is the schoolbook O(n*m) convolution with carry propagation.
func basicMul(a, b []uint32) []uint32 {
	z := make([]uint32, len(a)+len(b))
	for i := 0; i < len(a); i++ {
		ai := uint64(a[i])
		if ai == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < len(b); j++ {
			p := ai*uint64(b[j]) + uint64(z[i+j]) + carry
			z[i+j] = uint32(p)
			carry = p >> limbBits
		}
		z[i+len(b)] = uint32(carry)
	}
	return trimMag(z)
}

// karatsubaMul multiplies by splitting both operands at half the longer
// length:
//
//	a = a1*B^m + a0,  b = b1*B^m + b0
//	a*b = z2*B^2m + z1*B^m + z0
//	z0 = a0*b0,  z2 = a1*b1,  z1 = (a0+a1)*(b0+b1) - z0 - z2
//
// When parallel is set the three sub-products run on separate goroutines.
func karatsubaMul(a, b []uint32, parallel bool) []uint32 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	m := n / 2

	a0, a1 := splitMag(a, m)
	b0, b1 := splitMag(b, m)
	sa := magAdd(a0, a1)
	sb := magAdd(b0, b1)

	var z0, z1, z2 []uint32
	if parallel {
		var g errgroup.Group
		g.Go(func() error { z0 = magMul(a0, b0); return nil })
		g.Go(func() error { z2 = magMul(a1, b1); return nil })
		g.Go(func() error { z1 = magMul(sa, sb); return nil })
		_ = g.Wait()
	} else {
		z0 = magMul(a0, b0)
		z2 = magMul(a1, b1)
		z1 = magMul(sa, sb)
	}
	z1 = magSub(magSub(z1, z0), z2)

	z := make([]uint32, len(a)+len(b))
	addInto(z, z0, 0)
	addInto(z, z1, m)
	addInto(z, z2, 2*m)
	return trimMag(z)
}

// magSqr squares a magnitude, recursing through Karatsuba above the
// threshold and using a dedicated schoolbook squaring loop below it.
func magSqr(a []uint32) []uint32 {
	if len(a) == 0 {
		return nil
	}
	if len(a) < karatsubaThreshold {
		return basicSqr(a)
	}
	m := len(a) / 2
	a0, a1 := splitMag(a, m)
	z0 := magSqr(a0)
	z2 := magSqr(a1)
	z1 := magSub(magSub(magSqr(magAdd(a0, a1)), z0), z2)

	z := make([]uint32, 2*len(a))
	addInto(z, z0, 0)
	addInto(z, z1, m)
	addInto(z, z2, 2*m)
	return trimMag(z)
}

// basicSqr computes a*a with the upper cross-product triangle evaluated
// once, doubled, and then merged with the diagonal squares.
func basicSqr(a []uint32) []uint32 {
	n := len(a)
	z := make([]uint32, 2*n)
	for i := 0; i < n; i++ {
		ai := uint64(a[i])
		if ai == 0 {
			continue
		}
		var carry uint64
		for j := i + 1; j < n; j++ {
			p := ai*uint64(a[j]) + uint64(z[i+j]) + carry
			z[i+j] = uint32(p)
			carry = p >> limbBits
		}
		z[i+n] = uint32(carry)
	}
	// Double the cross products.
	var carry uint64
	for i := range z {
		s := uint64(z[i])<<1 | carry
		z[i] = uint32(s)
		carry = s >> limbBits
	}
	// Merge the diagonal squares.
	carry = 0
	for i := 0; i < n; i++ {
		p := uint64(a[i])*uint64(a[i]) + uint64(z[2*i]) + carry
		z[2*i] = uint32(p)
		s := uint64(z[2*i+1]) + (p >> limbBits)
		z[2*i+1] = uint32(s)
		carry = s >> limbBits
	}
	return trimMag(z)
}

// splitMag splits a magnitude at limb index m into canonical low and high
// parts. The parts alias the input and must not be written.
func splitMag(a []uint32, m int) (lo, hi []uint32) {
	if len(a) <= m {
		return trimMag(a), nil
	}
	return trimMag(a[:m]), trimMag(a[m:])
}

// addInto adds x into z starting at limb offset off, propagating the carry
// in place. The caller guarantees z is large enough for the final sum.
func addInto(z, x []uint32, off int) {
	var carry uint64
	for i := 0; i < len(x); i++ {
		s := uint64(z[off+i]) + uint64(x[i]) + carry
		z[off+i] = uint32(s)
		carry = s >> limbBits
	}
	for k := off + len(x); carry != 0; k++ {
		s := uint64(z[k]) + carry
		z[k] = uint32(s)
		carry = s >> limbBits
	}
}
