// internal/app/system/launcher/classify.go
package launcher

import (
	"errors"
	"net"
	"syscall"
)

// Kind buckets launch errors for retry policy decisions.
type Kind int

const (
	// KindUnknown is anything we cannot identify; treated as retryable so
	// transient failures we have no mapping for still get their attempts.
	KindUnknown Kind = iota

	// KindPortInUse means the bind address is held by another process
	// (or a just-stopped instance whose socket is in TIME_WAIT).
	KindPortInUse

	// KindPermissionDenied means the process may not bind the address
	// (privileged port, container policy). Retrying cannot help.
	KindPermissionDenied

	// KindTransportInit covers other listener/transport setup failures.
	KindTransportInit
)

// String returns the log label for the kind.
func (k Kind) String() string {
	switch k {
	case KindPortInUse:
		return "port_in_use"
	case KindPermissionDenied:
		return "permission_denied"
	case KindTransportInit:
		return "transport_init"
	default:
		return "unknown"
	}
}

// Retryable reports whether another attempt could plausibly succeed.
func (k Kind) Retryable() bool {
	return k != KindPermissionDenied
}

// Classify inspects a launch error and returns its Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, syscall.EADDRINUSE):
		return KindPortInUse
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return KindPermissionDenied
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "listen" {
		return KindTransportInit
	}
	return KindUnknown
}
