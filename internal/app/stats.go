package app

import "time"

// Stats tracks simulation throughput for the HUD readout.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

// NewStats returns a Stats anchored at the current time.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one completed generation. sinceLast is the time elapsed
// since the previous generation was installed.
func (s *Stats) Update(generation, population int, sinceLast time.Duration) {
	s.TotalGenerations = generation
	if sinceLast > 0 {
		s.GenerationsPerSecond = 1.0 / sinceLast.Seconds()
	}

	// Exponential moving average keeps the readout steady.
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
	}
}
