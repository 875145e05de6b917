package visualization

import "math"

// normalizePositions scales positions to fit within bounds. A collapsed axis
// is centered.
func normalizePositions(positions map[uint64]Position, width, height, padding float64) map[uint64]Position {
	if len(positions) == 0 {
		return positions
	}

	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64

	for _, pos := range positions {
		minX = math.Min(minX, pos.X)
		maxX = math.Max(maxX, pos.X)
		minY = math.Min(minY, pos.Y)
		maxY = math.Max(maxY, pos.Y)
	}

	targetWidth := width - 2*padding
	targetHeight := height - 2*padding

	scale := func(v, lo, hi, target float64) float64 {
		if hi-lo < 0.01 {
			return padding + target/2
		}
		return padding + ((v-lo)/(hi-lo))*target
	}

	normalized := make(map[uint64]Position, len(positions))
	for nodeID, pos := range positions {
		normalized[nodeID] = Position{
			X: scale(pos.X, minX, maxX, targetWidth),
			Y: scale(pos.Y, minY, maxY, targetHeight),
		}
	}

	return normalized
}
