package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetOutput redirects log output. Used by tests and the MCP server,
	// which must keep stdout clean for the protocol stream.
	SetOutput(w io.Writer)
}
