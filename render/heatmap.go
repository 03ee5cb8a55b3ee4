// Package render - distance heatmap shading.
package render

// ShadeIndex buckets a BFS distance into one of ten heatmap shades,
// 0 (closest to the start) through 9 (farthest). The mapping is linear
// in distance/maxDistance with the top bucket clamped, so the farthest
// cell always lands on shade 9 and everything at or past maxDistance
// saturates there too. Degenerate inputs (non-positive maxDistance or
// negative distance) shade as 0.
func ShadeIndex(distance, maxDistance int) int {
	if maxDistance <= 0 || distance <= 0 {
		return 0
	}
	shade := distance * 10 / maxDistance
	if shade > 9 {
		shade = 9
	}
	return shade
}
