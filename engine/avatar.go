package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/arena-brawl/parameter"
)

// ShufflePalettes assigns each slot a distinct avatar palette index
func ShufflePalettes(rng *rand.Rand) [parameter.MaxPlayers]int {
	var out [parameter.MaxPlayers]int
	for i := range out {
		out[i] = i
	}
	// Fisher-Yates
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
