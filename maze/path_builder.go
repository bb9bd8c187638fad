package maze

import "slices"

// buildPath walks the predecessor map back from end until it reaches start
// or a point with no predecessor, then reverses the walk so it runs
// start to end. Both solvers reconstruct through here.
func buildPath(prev map[Point]Point, start, end Point) Path {
	path := Path{end}
	current := end
	for current != start {
		p, ok := prev[current]
		if !ok {
			break
		}
		path = append(path, p)
		current = p
	}
	slices.Reverse(path)
	return path
}
