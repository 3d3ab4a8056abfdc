package numeric

// DefaultAnomalyFactor is the usual IQR fence multiplier.
const DefaultAnomalyFactor = 1.5

// Anomaly is a series value falling outside the IQR fences.
type Anomaly struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
	Lower float64 `json:"lower_fence"`
	Upper float64 `json:"upper_fence"`
}

// High reports whether the anomaly sits above the upper fence.
func (a Anomaly) High() bool {
	return a.Value > a.Upper
}

// DetectAnomalies flags values of series outside [q1-k*iqr, q3+k*iqr]. Series
// shorter than four values produce no anomalies. Non-finite values are
// ignored when computing the fences but are never flagged themselves.
func DetectAnomalies(series []float64, k float64) []Anomaly {
	finite := FilterFinite(series)
	if len(finite) < 4 {
		return nil
	}
	if k <= 0 {
		k = DefaultAnomalyFactor
	}

	q1 := Quantile(finite, 0.25)
	q3 := Quantile(finite, 0.75)
	iqr := q3 - q1
	lower := q1 - k*iqr
	upper := q3 + k*iqr

	var anomalies []Anomaly
	for i, v := range series {
		if !IsFinite(v) {
			continue
		}
		if v < lower || v > upper {
			anomalies = append(anomalies, Anomaly{
				Index: i,
				Value: v,
				Lower: lower,
				Upper: upper,
			})
		}
	}
	return anomalies
}
