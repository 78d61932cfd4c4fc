package main

import (
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestServeReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	errc := make(chan error, 1)
	go func() { errc <- serve(e, ln.Addr().String(), make(chan os.Signal)) }()

	select {
	case err := <-errc:
		if err == nil {
			t.Fatalf("expected error for an address in use")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("serve did not return after a listen failure")
	}
}

func TestServeStopsOnSignal(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM
	if err := serve(e, "127.0.0.1:0", quit); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}
