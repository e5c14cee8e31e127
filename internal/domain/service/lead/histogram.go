package lead

import "slices"

// Bin is a half-open [Low, High) interval; the last bin also holds High.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram splits the range of values into equal-width bins.
func Histogram(values []int, bins int) []Bin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	low, high := slices.Min(values), slices.Max(values)

	if low == high {
		return []Bin{{Low: float64(low), High: float64(high), Count: len(values)}}
	}

	width := float64(high-low) / float64(bins)
	result := make([]Bin, bins)

	for i := range result {
		result[i].Low = float64(low) + float64(i)*width
		result[i].High = float64(low) + float64(i+1)*width
	}

	result[bins-1].High = float64(high)

	for _, v := range values {
		i := min(int(float64(v-low)/width), bins-1)
		result[i].Count++
	}

	return result
}
