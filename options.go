package nxncube

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	moveHistory  bool
	historyLimit int
}

func defaultConfig() *config {
	return &config{
		moveHistory:  true,
		historyLimit: 0,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), applied moves are stored and accessible via Moves()
// and can be reverted with Undo().
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithHistoryLimit caps the number of moves kept in the history; the oldest
// moves are dropped first. Zero or less means no limit.
func WithHistoryLimit(n int) Option {
	return func(c *config) {
		c.historyLimit = n
	}
}
