// Package testutil provides helpers for tests that need live sockets.
package testutil

import (
	"fmt"
	"net"
	"sync"
)

var (
	portMu   sync.Mutex
	lastPort = 25000 // Start allocation from this port
)

// AllocateUDPPort finds an available UDP port on the loopback interface.
func AllocateUDPPort() (int, error) {
	portMu.Lock()
	defer portMu.Unlock()

	// Try sequential ports first so consecutive allocations don't collide.
	for i := 0; i < 100; i++ {
		port := lastPort + 1 + i
		if port > 65535 {
			port = 25000 + (port - 65535)
		}
		if isUDPPortAvailable(port) {
			lastPort = port
			return port, nil
		}
	}

	// Fall back to a system-allocated port.
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("failed to allocate port: %w", err)
	}
	defer conn.Close()

	addr := conn.LocalAddr().(*net.UDPAddr)
	lastPort = addr.Port
	return addr.Port, nil
}

func isUDPPortAvailable(port int) bool {
	conn, err := net.ListenPacket("udp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
