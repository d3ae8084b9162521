package http_test

import (
	"fmt"
	"testing"

	"github.com/phayes/freeport"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()

	port, err := freeport.GetFreePort()
	require.NoError(t, err)
	return port
}

func serverURL(port int, path string) string {
	return fmt.Sprintf("http://127.0.0.1:%d%s", port, path)
}
