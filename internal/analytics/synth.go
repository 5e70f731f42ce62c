package analytics

import (
	"math"
	"sort"
)

// hashSeed computes a 32-bit FNV-1a hash of s. Deterministic across runs, so
// demo metrics keyed by an entity id are stable for that entity forever.
func hashSeed(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

// StableTotal derives a deterministic integer in [min, max] from a seed
// string. Used for demo totals (followers, attendees) keyed by entity id.
func StableTotal(seed string, min, max int) int {
	if max < min {
		min, max = max, min
	}
	span := uint32(max - min + 1)
	return min + int(hashSeed(seed)%span)
}

// rng is a mulberry32 generator: tiny, fast, and reproducible from a 32-bit
// seed, which is all the demo breakdowns need.
type rng struct {
	state uint32
}

func newRNG(seed string) *rng {
	return &rng{state: hashSeed(seed)}
}

// Float64 returns the next value in [0, 1).
func (r *rng) Float64() float64 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return float64(z^(z>>14)) / 4294967296.0
}

// largestRemainder apportions total across weights so the parts sum exactly
// to total: each part gets the floor of its proportional share, then the
// shortfall is handed out one unit at a time to the largest fractional
// remainders, ties broken by index order.
func largestRemainder(total int, weights []float64) []int {
	counts := make([]int, len(weights))
	if total <= 0 || len(weights) == 0 {
		return counts
	}

	var weightSum float64
	for _, w := range weights {
		weightSum += w
	}
	if weightSum <= 0 {
		counts[0] = total
		return counts
	}

	type remainder struct {
		index int
		frac  float64
	}
	remainders := make([]remainder, len(weights))
	allocated := 0
	for i, w := range weights {
		exact := float64(total) * w / weightSum
		floor := math.Floor(exact)
		counts[i] = int(floor)
		allocated += int(floor)
		remainders[i] = remainder{index: i, frac: exact - floor}
	}

	sort.SliceStable(remainders, func(a, b int) bool {
		return remainders[a].frac > remainders[b].frac
	})
	for i := 0; i < total-allocated; i++ {
		counts[remainders[i%len(remainders)].index]++
	}
	return counts
}

// SplitByPercent allocates total across percent weights using the largest
// remainder method. The returned parts always sum exactly to total, even
// when total is not evenly divisible.
func SplitByPercent(total int, percents []float64) []int {
	return largestRemainder(total, percents)
}

// AgeCount is one age bracket in a demo age breakdown.
type AgeCount struct {
	Age   int `json:"age"`
	Count int `json:"count"`
}

const (
	ageBracketCount = 12
	ageMin          = 18
	ageMax          = 65
)

// StableAges produces a deterministic demo age breakdown for a seed string:
// 12 distinct ages in [18, 65], each weighted in [0.25, 2.0], with total
// allocated across them by largest remainder. Zero-count ages are dropped
// and the result is sorted descending by count.
func StableAges(seed string, total int) []AgeCount {
	r := newRNG(seed)

	ages := make([]int, 0, ageBracketCount)
	seen := make(map[int]bool, ageBracketCount)
	for len(ages) < ageBracketCount {
		age := ageMin + int(r.Float64()*float64(ageMax-ageMin+1))
		if age > ageMax {
			age = ageMax
		}
		if seen[age] {
			continue
		}
		seen[age] = true
		ages = append(ages, age)
	}

	weights := make([]float64, ageBracketCount)
	for i := range weights {
		weights[i] = 0.25 + r.Float64()*1.75
	}

	counts := largestRemainder(total, weights)

	out := make([]AgeCount, 0, ageBracketCount)
	for i, c := range counts {
		if c == 0 {
			continue
		}
		out = append(out, AgeCount{Age: ages[i], Count: c})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })
	return out
}
