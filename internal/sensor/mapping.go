package sensor

// MapConstrain maps x from the input range [inMin, inMax] onto the output
// range [outMin, outMax], constraining x into the input range first. The
// intermediate math is done in int64 so raw ADC values cannot overflow.
// A zero-width input range means no signal variation; the bottom of the
// output range is returned.
func MapConstrain(x, inMin, inMax, outMin, outMax int) int {
	if inMin == inMax {
		return outMin
	}

	lo, hi := inMin, inMax
	if lo > hi {
		lo, hi = hi, lo
	}
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}

	val := int64(x-inMin)*int64(outMax-outMin)/int64(inMax-inMin) + int64(outMin)
	return int(val)
}

// MapConstrainBi maps x between two range boundaries whose orientation is
// not known up front. When inA > inB the input range runs backwards
// (higher raw value means lower output), so the operands and output bounds
// are swapped before delegating to MapConstrain. Callers never need to
// know which physical direction a sensor runs.
func MapConstrainBi(x, inA, inB, outMin, outMax int) int {
	if inA == inB {
		return outMin
	}
	if inA < inB {
		return MapConstrain(x, inA, inB, outMin, outMax)
	}
	return MapConstrain(x, inB, inA, outMax, outMin)
}
