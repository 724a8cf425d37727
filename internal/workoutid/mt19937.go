package workoutid

const (
	mtN         = 624
	mtM         = 397
	matrixA     = 0x9908b0df
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	initArrSeed = 19650218
)

// MT19937 is a 32-bit Mersenne Twister seeded through init_by_array with the
// 32-bit chunks of the seed, so workout ids created by earlier imports are
// reproduced exactly. Not safe for concurrent use.
type MT19937 struct {
	mt  [mtN]uint32
	idx int
}

// NewMT19937 returns a generator seeded with seed.
// Only the absolute value of the seed is used.
func NewMT19937(seed int64) *MT19937 {
	g := &MT19937{}
	g.Seed(seed)
	return g
}

func (g *MT19937) Seed(seed int64) {
	u := uint64(seed)
	if seed < 0 {
		u = uint64(-seed)
	}

	// the seed is split into 32-bit little-endian chunks, zero gives [0]
	var key []uint32
	for {
		key = append(key, uint32(u&0xffffffff))
		u >>= 32
		if u == 0 {
			break
		}
	}

	g.initByArray(key)
}

func (g *MT19937) initGenrand(s uint32) {
	g.mt[0] = s
	for i := 1; i < mtN; i++ {
		g.mt[i] = 1812433253*(g.mt[i-1]^(g.mt[i-1]>>30)) + uint32(i)
	}
	g.idx = mtN
}

func (g *MT19937) initByArray(key []uint32) {
	g.initGenrand(initArrSeed)

	i, j := 1, 0
	k := mtN
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			g.mt[0] = g.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		g.mt[i] = (g.mt[i] ^ ((g.mt[i-1] ^ (g.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			g.mt[0] = g.mt[mtN-1]
			i = 1
		}
	}

	g.mt[0] = upperMask
}

func (g *MT19937) twist() {
	for kk := 0; kk < mtN; kk++ {
		y := (g.mt[kk] & upperMask) | (g.mt[(kk+1)%mtN] & lowerMask)
		next := g.mt[(kk+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		g.mt[kk] = next
	}
	g.idx = 0
}

// Uint32 returns the next tempered 32-bit output.
func (g *MT19937) Uint32() uint32 {
	if g.idx >= mtN {
		g.twist()
	}

	y := g.mt[g.idx]
	g.idx++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Float64 returns a float in [0.0, 1.0) with 53 bits of randomness.
func (g *MT19937) Float64() float64 {
	a := g.Uint32() >> 5
	b := g.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Bits128 returns 128 random bits as big-endian bytes. The first generated
// word ends up least significant, the same as getrandbits(128).
func (g *MT19937) Bits128() [16]byte {
	var out [16]byte
	for w := 0; w < 4; w++ {
		v := g.Uint32()
		off := 12 - 4*w
		out[off] = byte(v >> 24)
		out[off+1] = byte(v >> 16)
		out[off+2] = byte(v >> 8)
		out[off+3] = byte(v)
	}
	return out
}
