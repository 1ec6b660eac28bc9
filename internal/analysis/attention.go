package analysis

import "math"

// LowAttentionThreshold marks the score below which an entity is flagged as
// sitting in a degraded-attention zone.
const LowAttentionThreshold = 0.65

// Attention scores a token position inside a chunk of the given size.
// A size below 1 is clamped to 1.
func Attention(pos, chunkSize int) float64 {
	if chunkSize < 1 {
		chunkSize = 1
	}
	return AttentionAt(float64(pos) / float64(chunkSize))
}

// AttentionAt maps a relative position r in [0,1] to an attention score,
// modeling the primacy/recency bias of attention-based models: strong at the
// start of a chunk, strong again at the end, and a U-shaped trough between
// 15% and 85% bottoming out at 0.55 mid-chunk.
func AttentionAt(r float64) float64 {
	switch {
	case r < 0.15:
		return 0.95 - r*0.5
	case r > 0.85:
		return 0.70 + (r-0.85)*1.5
	default:
		return 0.55 + math.Abs(r-0.5)*0.3
	}
}
