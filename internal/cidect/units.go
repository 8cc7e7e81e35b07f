package cidect

// Conversion factors from user units to SI
const (
	MM    = 1e-3 // mm -> m
	MM2   = 1e-6 // mm² -> m²
	MM4E6 = 1e-6 // 10⁶ mm⁴ -> m⁴
	KN    = 1e3  // kN -> N
	KNM   = 1e3  // kN·m -> N·m
	MPa   = 1e6  // MPa -> Pa
)
