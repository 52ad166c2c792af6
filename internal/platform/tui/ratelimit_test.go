package tui

import (
	"net"
	"testing"
	"time"
)

func tcpAddr(ip string) net.Addr {
	return &net.TCPAddr{IP: net.ParseIP(ip), Port: 40000}
}

func TestConnLimiterPerHost(t *testing.T) {
	cl := NewConnLimiter(RateLimitConfig{PerMinute: 0.001, Burst: 2})
	defer cl.Stop()

	a := tcpAddr("10.0.0.1")
	if !cl.Allow(a) || !cl.Allow(a) {
		t.Fatal("burst connections should be allowed")
	}
	if cl.Allow(a) {
		t.Error("connection past the burst should be rejected")
	}

	// Another port on the same host shares the budget.
	if cl.Allow(&net.TCPAddr{IP: net.ParseIP("10.0.0.1"), Port: 50000}) {
		t.Error("limit should be keyed by host, not port")
	}

	if !cl.Allow(tcpAddr("10.0.0.2")) {
		t.Error("other hosts have their own budget")
	}
}

func TestConnLimiterCleanup(t *testing.T) {
	cl := NewConnLimiter(RateLimitConfig{PerMinute: 0.001, Burst: 1})
	defer cl.Stop()

	a := tcpAddr("10.0.0.1")
	cl.Allow(a)
	if cl.Allow(a) {
		t.Fatal("second connection should be rejected")
	}

	cl.cleanup(time.Now().Add(time.Minute))
	if len(cl.limiters) != 0 {
		t.Fatalf("cleanup left %d limiters", len(cl.limiters))
	}
	if !cl.Allow(a) {
		t.Error("a forgotten host starts with a fresh budget")
	}
}

func TestRemoteHost(t *testing.T) {
	if got := remoteHost(tcpAddr("192.168.1.5")); got != "192.168.1.5" {
		t.Errorf("remoteHost() = %q", got)
	}
	if got := remoteHost(nil); got != "" {
		t.Errorf("remoteHost(nil) = %q", got)
	}
}
