package commands

import (
	"bytes"
	"net"
	"strings"
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	want := []string{"ui", "list", "facets", "show", "serve", "mcp", "tiles", "check", "version", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("missing command %q: %v", name, err)
		}
	}
	if cmd, _, err := root.Find([]string{"tiles", "prefetch"}); err != nil || cmd.Name() != "prefetch" {
		t.Fatalf("missing tiles prefetch: %v", err)
	}
}

func TestCompletionBash(t *testing.T) {
	root := New()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(buf.String(), "folio") {
		t.Fatalf("expected bash completion for folio")
	}
}

func TestEndpointURL(t *testing.T) {
	a := &net.TCPAddr{IP: net.IPv4zero, Port: 4321}
	if got := endpointURL(a, "0.0.0.0", "/mcp", false); got != "http://127.0.0.1:4321/mcp" {
		t.Fatalf("unexpected url %q", got)
	}
	b := &net.TCPAddr{IP: net.ParseIP("10.0.0.2"), Port: 443}
	if got := endpointURL(b, "example.test", "/x", true); got != "https://example.test:443/x" {
		t.Fatalf("unexpected url %q", got)
	}
}
