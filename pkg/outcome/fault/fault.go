package fault

// Fault is the closed set of failure classifications an Outcome can carry.
// The unexported marker keeps the set sealed to this package: callers cannot
// smuggle arbitrary error payloads into an outcome's fault slot.
type Fault interface {
	error
	String() string
	fault()
}

// Remote classifies a failed network interaction.
type Remote uint8

const (
	RemoteUnknown Remote = iota
	RemoteTimeout
	RemoteTooManyRequests
	RemoteNoRoute
	RemoteServer
	RemoteDecode
)

func (r Remote) fault() {}

func (r Remote) String() string {
	switch r {
	case RemoteTimeout:
		return "request_timed_out"
	case RemoteTooManyRequests:
		return "too_many_requests"
	case RemoteNoRoute:
		return "no_network_route"
	case RemoteServer:
		return "server_fault"
	case RemoteDecode:
		return "body_decode_failed"
	default:
		return "unknown"
	}
}

func (r Remote) Error() string {
	return "remote: " + r.String()
}

// Local classifies a failed on-device operation. No producer exists in this
// module yet; the enum is declared for data-access code built on top of it.
type Local uint8

const (
	LocalUnknown Local = iota
	LocalStorageFull
	LocalInsufficientBalance
)

func (l Local) fault() {}

func (l Local) String() string {
	switch l {
	case LocalStorageFull:
		return "storage_full"
	case LocalInsufficientBalance:
		return "insufficient_balance"
	default:
		return "unknown"
	}
}

func (l Local) Error() string {
	return "local: " + l.String()
}
