package master

import "time"

// Config holds the master configuration.
type Config struct {
	// Logger is used for logging exchange activity (optional)
	Logger Logger

	// Retries is the number of additional attempts for a failed exchange
	Retries int

	// CommandDelay is an optional pause between writing a request and
	// reading the response
	CommandDelay time.Duration

	// AutoSequence assigns sequence numbers to modified-family requests
	// from an internal counter and verifies the response echo
	AutoSequence bool

	// VerifyChecksum recomputes and checks the response checksum
	VerifyChecksum bool
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Retries:        0,
		AutoSequence:   true,
		VerifyChecksum: true,
	}
}

// Option is a functional option for configuring the Master.
type Option func(*Config)

// WithLogger sets a logger for exchange activity.
//
// Example:
//
//	m := master.New(device, master.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithRetries sets the number of additional attempts for failed exchanges.
//
// Example:
//
//	m := master.New(device, master.WithRetries(2))
func WithRetries(retries int) Option {
	return func(c *Config) {
		if retries >= 0 {
			c.Retries = retries
		}
	}
}

// WithCommandDelay sets a pause between writing a request and reading the
// response. Some slave devices poll their UART slowly and need this.
//
// Example:
//
//	m := master.New(device, master.WithCommandDelay(10*time.Millisecond))
func WithCommandDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.CommandDelay = delay
		}
	}
}

// WithAutoSequence enables or disables automatic sequence numbering for
// modified-family requests. Default is true. Disable it to manage SEQ
// bytes manually.
func WithAutoSequence(auto bool) Option {
	return func(c *Config) {
		c.AutoSequence = auto
	}
}

// WithChecksumVerification enables or disables response checksum
// verification. Default is true.
func WithChecksumVerification(verify bool) Option {
	return func(c *Config) {
		c.VerifyChecksum = verify
	}
}
