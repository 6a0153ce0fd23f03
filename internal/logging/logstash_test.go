package logging

import (
	"bufio"
	"net"
	"testing"
	"time"
)

func TestLogstashWriter_ForwardsLines(t *testing.T) {
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
		t.Fatalf("NewLogstashWriter returned error: %v", err)
	}
	defer w.Close()

	if _, err := w.Write([]byte(`{"msg":"hello"}`)); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	select {
	case got := <-lines:
		if got != `{"msg":"hello"}` {
			t.Fatalf("unexpected line %q", got)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for forwarded line")
	}
}

func TestLogstashWriter_UnreachableDoesNotBlock(t *testing.T) {
	w, err := NewLogstashWriter("127.0.0.1:1", WithDialTimeout(50*time.Millisecond), WithQueueSize(1))
	if err != nil {
		t.Fatalf("NewLogstashWriter returned error: %v", err)
	}
	defer w.Close()

	start := time.Now()
	for i := 0; i < 100; i++ {
		if n, err := w.Write([]byte("line")); err != nil || n != 4 {
			t.Fatalf("Write = %d, %v", n, err)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("writes blocked for %v", elapsed)
	}
	if w.Dropped() == 0 {
		t.Fatalf("expected dropped lines to be counted")
	}
}

func TestNewLogstashWriter_RejectsEmptyAddress(t *testing.T) {
	if _, err := NewLogstashWriter("  "); err == nil {
		t.Fatalf("expected error for empty address")
	}
}
