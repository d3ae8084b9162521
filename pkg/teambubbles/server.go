package teambubbles

import (
	"io"
)

// Server is a transport exposing a Service. Start returns once the server
// is accepting connections.
type Server interface {
	io.Closer

	Start() error
}
