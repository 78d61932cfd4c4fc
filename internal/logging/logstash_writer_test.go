package logging

import (
	"bufio"
	"net"
	"testing"
	"time"
)

func TestNewLogstashWriterRejectsEmptyAddress(t *testing.T) {
	if _, err := NewLogstashWriter("  "); err == nil {
		t.Fatalf("expected error for empty address")
	}
}

func TestLogstashWriterDeliversLines(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	lines := make(chan string, 2)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	w, err := NewLogstashWriter(ln.Addr().String())
	if err != nil {
		t.Fatalf("NewLogstashWriter: %v", err)
	}
	if n, err := w.Write([]byte(`{"msg":"one"}`)); err != nil || n != 13 {
		t.Fatalf("Write returned %d, %v", n, err)
	}
	_, _ = w.Write([]byte("{\"msg\":\"two\"}\n"))

	for _, want := range []string{`{"msg":"one"}`, `{"msg":"two"}`} {
		select {
		case got := <-lines:
			if got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
	_ = w.Close()
}

func TestLogstashWriterDropsWhileUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	w, err := NewLogstashWriter(addr, WithDialTimeout(100*time.Millisecond), WithRetryInterval(time.Minute))
	if err != nil {
		t.Fatalf("NewLogstashWriter: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := w.Write([]byte("line")); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	_ = w.Close()

	if got := w.Dropped(); got != 3 {
		t.Fatalf("expected 3 dropped lines, got %d", got)
	}
	if _, err := w.Write([]byte("late")); err == nil {
		t.Fatalf("expected write after close to fail")
	}
}
