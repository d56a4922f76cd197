// Package noise provides deterministic 2D value noise for terrain synthesis.
package noise

import "math"

// Octaves is the number of FBM octaves summed per sample.
const Octaves = 5

// Hash maps an integer lattice point and seed to a float in [0,1).
// Pure and reproducible: the same inputs always yield the same output.
func Hash(ix, iz, seed int) float32 {
	h := uint32(ix*374761393+iz*668265263) ^ uint32(seed)
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float32(h&0x00FFFFFF) / float32(0x01000000)
}

// smoothstep eases t through 3t^2-2t^3 to avoid linear creases at cell edges.
func smoothstep(t float32) float32 {
	return t * t * (3.0 - 2.0*t)
}

// ValueNoise returns smooth noise in [0,1) by easing a bilinear blend of the
// four lattice hashes surrounding (x, z).
func ValueNoise(x, z float32, seed int) float32 {
	x0 := int(math.Floor(float64(x)))
	z0 := int(math.Floor(float64(z)))
	x1 := x0 + 1
	z1 := z0 + 1

	tx := x - float32(x0)
	tz := z - float32(z0)

	a := Hash(x0, z0, seed)
	b := Hash(x1, z0, seed)
	c := Hash(x0, z1, seed)
	d := Hash(x1, z1, seed)

	ux := smoothstep(tx)
	uz := smoothstep(tz)

	ab := a + (b-a)*ux
	cd := c + (d-c)*ux
	return ab + (cd-ab)*uz
}

// FBM sums Octaves octaves of ValueNoise, halving amplitude and doubling
// frequency per octave. Each octave is re-seeded so the layers decorrelate.
// The result lands roughly in [-1, 1].
func FBM(x, z float32, seed int) float32 {
	sum := float32(0.0)
	amp := float32(0.5)
	freq := float32(1.0)
	for i := 0; i < Octaves; i++ {
		n := ValueNoise(x*freq, z*freq, seed+i*17)
		n = n*2.0 - 1.0
		sum += amp * n
		freq *= 2.0
		amp *= 0.5
	}
	return sum
}
