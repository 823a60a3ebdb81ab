package fault

import "testing"

func TestRemoteNames(t *testing.T) {
	t.Parallel()
	cases := map[Remote]string{
		RemoteUnknown:         "unknown",
		RemoteTimeout:         "request_timed_out",
		RemoteTooManyRequests: "too_many_requests",
		RemoteNoRoute:         "no_network_route",
		RemoteServer:          "server_fault",
		RemoteDecode:          "body_decode_failed",
	}
	for f, want := range cases {
		if got := f.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
		if got := f.Error(); got != "remote: "+want {
			t.Fatalf("expected error %q, got %q", "remote: "+want, got)
		}
	}
}

func TestLocalNames(t *testing.T) {
	t.Parallel()
	cases := map[Local]string{
		LocalUnknown:             "unknown",
		LocalStorageFull:         "storage_full",
		LocalInsufficientBalance: "insufficient_balance",
	}
	for f, want := range cases {
		if got := f.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestBothKindsAreFaults(t *testing.T) {
	t.Parallel()
	var f Fault = RemoteTimeout
	if f.Error() == "" {
		t.Fatalf("remote kind must be usable as Fault")
	}
	f = LocalStorageFull
	if f.Error() == "" {
		t.Fatalf("local kind must be usable as Fault")
	}
}
