package model

import (
	"math"
	"time"
)

// PricePoint is a single daily bar. High, Low and Volume may be absent in the
// source data; absent values are stored as NaN, never as zero.
type PricePoint struct {
	Date   time.Time
	Close  float64
	High   float64
	Low    float64
	Volume float64
}

// HighOrClose returns the bar's high, falling back to close when absent.
func (p PricePoint) HighOrClose() float64 {
	if math.IsNaN(p.High) {
		return p.Close
	}
	return p.High
}

// LowOrClose returns the bar's low, falling back to close when absent.
func (p PricePoint) LowOrClose() float64 {
	if math.IsNaN(p.Low) {
		return p.Close
	}
	return p.Low
}

// Closes extracts the close values from a price series.
func Closes(points []PricePoint) []float64 {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Close
	}
	return closes
}
