package main

import "time"

// Default command-line flag values
const (
	defaultRate = 60.0 // Frames per second for -stats and table steps
)

// Quantiles printed with -stats
const (
	medianQuantile = 0.5
	upperQuantile  = 0.95
)

// Demo track layout
const (
	demoChannels = 2
	demoStep     = 250 * time.Millisecond
	demoLength   = 2 * time.Second
)

// Output formatting
const (
	valuePrecision = 6
)
