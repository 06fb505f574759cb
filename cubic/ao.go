package cubic

// vertexAmbientOcclusion implements the standard Minecraft-style per-vertex
// ambient occlusion: a vertex is fully occluded (0) when both edge-adjacent
// cells are filled, regardless of the corner cell; otherwise the value starts
// at 3 (unoccluded) and decreases by one for each of the (up to three)
// contributing cells that are filled.
//
// https://0fps.net/2013/07/03/ambient-occlusion-for-minecraft-like-worlds/
func vertexAmbientOcclusion(side1, side2, corner bool) uint8 {
	if side1 && side2 {
		return 0
	}
	count := 0
	if side1 {
		count++
	}
	if side2 {
		count++
	}
	if corner {
		count++
	}
	return uint8(3 - count)
}
