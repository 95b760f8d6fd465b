package cmd

import "time"

// Config carries the process configuration resolved from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OrderAutoProgress selects the lifecycle mode: true runs the
	// autonomous progression engine, false leaves status changes to
	// explicit update requests only.
	OrderAutoProgress bool

	// OrderProgressInterval is the spacing between autonomous status
	// transitions when OrderAutoProgress is enabled.
	OrderProgressInterval time.Duration
}
