// Package port checks host port availability ahead of the container
// session.
//
// The session publishes a fixed host port, and both engines fail the whole
// `run` invocation when that port is already bound — after the image build,
// with an error that does not obviously point at the port. A preflight bind
// probe lets the CLI warn up front instead. The probe asks the OS directly
// via net.Listen rather than parsing /proc/net or shelling out to ss, and
// binds all interfaces since engines publish on 0.0.0.0 by default.
package port

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Available reports whether the given TCP port can currently be bound on
// the host. A successful bind is immediately released; the check is
// inherently racy against other processes, which is fine for an advisory
// warning.
func Available(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	_ = listener.Close()
	return true
}

// HostPort extracts the host-side port from a "host:container" publish
// mapping.
func HostPort(mapping string) (int, error) {
	host, _, ok := strings.Cut(mapping, ":")
	if !ok {
		return 0, fmt.Errorf("invalid port mapping %q: want host:container", mapping)
	}

	port, err := strconv.Atoi(host)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid host port in mapping %q", mapping)
	}
	return port, nil
}
