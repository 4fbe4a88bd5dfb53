package raster

import "math"

// depthTestPasses reports whether a fragment at testZ passes the depth test
// against the depth attachment's stored value refZ. The pipeline's default
// (and the spec's mandated) comparison is CompareGreaterEqual: the fragment
// passes when refZ is farther from the viewer than, or equal to, testZ. A
// NaN reference (such as an out-of-bounds read) always fails.
func depthTestPasses(fn CompareFunc, refZ, testZ float32) bool {
	if math.IsNaN(float64(refZ)) {
		return false
	}
	switch fn {
	case CompareNever:
		return false
	case CompareLess:
		return testZ < refZ
	case CompareEqual:
		return testZ == refZ
	case CompareLessEqual:
		return testZ <= refZ
	case CompareGreater:
		return testZ > refZ
	case CompareNotEqual:
		return testZ != refZ
	case CompareGreaterEqual:
		return refZ >= testZ
	case CompareAlways:
		return true
	default:
		return false
	}
}
