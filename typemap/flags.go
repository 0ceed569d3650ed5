package typemap

// ExtractFlags decomposes a bitmask into its constituent single-bit values,
// ordered from the highest bit to the lowest. The sum of the returned values
// equals the input; ExtractFlags(0) returns nil.
//
// Used to render an unclassifiable type's raw checker flags in diagnostics.
func ExtractFlags(mask uint32) []uint32 {
	var flags []uint32
	for bit := uint32(1) << 31; bit != 0; bit >>= 1 {
		if mask&bit != 0 {
			flags = append(flags, bit)
		}
	}
	return flags
}
