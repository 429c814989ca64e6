// Package forecast provides simple series forecasting, trend analysis and
// scenario projection. The strategies are closed-form: least squares,
// averaged relative growth, and a flat moving average. There is no
// statistical model here and none is intended.
package forecast

// Method selects the forecasting strategy.
type Method string

const (
	MethodLinear        Method = "linear"
	MethodExponential   Method = "exponential"
	MethodMovingAverage Method = "moving_average"
)

// defaultGrowthRate is assumed by the exponential strategy when the
// series has no usable history.
const defaultGrowthRate = 0.05

// Result is a forecast of future periods. Method-specific diagnostics are
// populated only for the strategy that produced them.
type Result struct {
	Method   Method    `json:"method"`
	Forecast []float64 `json:"forecast"`

	// Linear diagnostics.
	TrendSlope    float64 `json:"trend_slope,omitempty"`
	GrowthRatePct float64 `json:"growth_rate_pct,omitempty"`

	// Exponential diagnostics.
	AvgGrowthRatePct float64 `json:"avg_growth_rate_pct,omitempty"`

	// Moving average diagnostics.
	AverageValue float64 `json:"average_value,omitempty"`

	Confidence string `json:"confidence,omitempty"`
}

// Series forecasts a value series for the given number of future periods.
// Unknown methods fall back to the moving average.
func Series(values []float64, periods int, method Method) Result {
	switch method {
	case MethodLinear:
		return linear(values, periods)
	case MethodExponential:
		return exponential(values, periods)
	default:
		return movingAverage(values, periods)
	}
}

// linear fits an ordinary least-squares line over the series index and
// extrapolates it forward. The growth rate is the slope relative to the
// series mean.
func linear(values []float64, periods int) Result {
	n := len(values)
	result := Result{Method: MethodLinear}
	if n == 0 {
		result.Forecast = make([]float64, periods)
		return result
	}

	slope, intercept := leastSquares(values)

	result.TrendSlope = slope
	if m := mean(values); m != 0 {
		result.GrowthRatePct = slope / m * 100
	}

	result.Forecast = make([]float64, periods)
	for i := 0; i < periods; i++ {
		x := float64(n + i)
		result.Forecast[i] = slope*x + intercept
	}
	return result
}

// exponential averages the period-over-period relative growth rates and
// compounds the last value forward.
func exponential(values []float64, periods int) Result {
	result := Result{Method: MethodExponential, Confidence: "Medium"}

	var rates []float64
	for i := 1; i < len(values); i++ {
		if values[i-1] != 0 {
			rates = append(rates, (values[i]-values[i-1])/values[i-1])
		}
	}

	growth := defaultGrowthRate
	if len(rates) > 0 {
		growth = mean(rates)
	}
	result.AvgGrowthRatePct = growth * 100

	var last float64
	if len(values) > 0 {
		last = values[len(values)-1]
	}

	result.Forecast = make([]float64, periods)
	compounded := last
	for i := 0; i < periods; i++ {
		compounded *= 1 + growth
		result.Forecast[i] = compounded
	}
	return result
}

// movingAverage repeats the mean of the last min(3, n/2) values flat for
// every future period.
func movingAverage(values []float64, periods int) Result {
	result := Result{Method: MethodMovingAverage, Confidence: "Low"}

	var avg float64
	if n := len(values); n > 0 {
		window := n / 2
		if window > 3 {
			window = 3
		}
		if window > 0 {
			avg = mean(values[n-window:])
		} else {
			avg = mean(values)
		}
	}
	result.AverageValue = avg

	result.Forecast = make([]float64, periods)
	for i := range result.Forecast {
		result.Forecast[i] = avg
	}
	return result
}

// leastSquares returns the slope and intercept of the best-fit line
// through (i, values[i]). A single point yields a flat line.
func leastSquares(values []float64) (slope, intercept float64) {
	n := float64(len(values))
	if n == 1 {
		return 0, values[0]
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
