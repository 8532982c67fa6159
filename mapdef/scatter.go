package mapdef

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/RH2/hexnav/hex"
)

// scatter marks roughly density*len(cells) additional cells blocked,
// chosen by hashing each coordinate with the seed. The same seed and map
// always produce the same obstacle set, and each cell's fate is
// independent of map size, so growing a map keeps its existing terrain.
func scatter(cells, blocked hex.Set, seed int64, density float64) {
	threshold := uint64(density * math.MaxUint64)
	for c := range cells {
		if blocked[c] {
			continue
		}
		if hashCell(seed, c) < threshold {
			blocked[c] = true
		}
	}
}

func hashCell(seed int64, c hex.Cube) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(c.Q)))
	binary.LittleEndian.PutUint64(buf[16:], uint64(int64(c.R)))
	return xxhash.Sum64(buf[:])
}
