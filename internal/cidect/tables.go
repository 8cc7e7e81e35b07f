package cidect

// CHS K-joint SCF charts digitised at β ∈ {0.3, 0.6} and θ ∈ {30°, 45°, 60°}.
// Rows follow ChartTheta, columns follow ChartBeta.

var (
	ChartBeta  = [2]float64{0.3, 0.6}
	ChartTheta = [3]float64{30, 45, 60}

	// SCF_o,ch,ax chart for balanced axial load in the chord
	ChartOChax = [3][2]float64{
		{2.73, 2.50},
		{3.18, 2.83},
		{3.52, 3.19},
	}

	// SCF_o,b,ax chart for balanced axial load in the brace
	ChartObax = [3][2]float64{
		{1.45, 1.15},
		{2.03, 1.70},
		{2.50, 2.08},
	}

	// Lower bound of SCF_b,ax as a function of θ
	ChartBaxMin = [3]float64{2.64, 2.30, 2.12}
)
