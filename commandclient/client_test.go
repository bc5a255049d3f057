package commandclient

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"
)

// fakeHostCommandServer accepts connections and answers a small fixed set of
// commands: GETLEVEL echoes back a canned level, STATUS/ADDSTATUS/ELENABLE/
// ELLOG are acknowledged and, for ADDSTATUS, followed by one S: event so
// subscription tests have something to observe.
func fakeHostCommandServer(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go serveFakeConn(conn)
		}
	}()

	return ln.Addr().String()
}

func serveFakeConn(conn net.Conn) {
	defer conn.Close()
	reader := bufio.NewReader(conn)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "LOGIN":
			fmt.Fprint(conn, "R:LOGIN\r\n")
		case "GETLEVEL":
			fmt.Fprintf(conn, "R:GETLEVEL %s 100.000\r\n", fields[1])
		case "STATUS":
			fmt.Fprint(conn, "R:STATUS\r\n")
		case "ADDSTATUS":
			fmt.Fprint(conn, "R:ADDSTATUS\r\n")
			fmt.Fprintf(conn, "S:LOAD %s 75.000\r\n", fields[1])
		case "DELSTATUS":
			fmt.Fprint(conn, "R:DELSTATUS\r\n")
		case "ELENABLE":
			fmt.Fprint(conn, "R:ELENABLE\r\n")
		case "ELLOG":
			fmt.Fprint(conn, "R:ELLOG\r\n")
		case "INVOKE":
			fmt.Fprintf(conn, "R:INVOKE %s 1 %s\r\n", fields[1], fields[2])
		case "BADCMD":
			fmt.Fprint(conn, "R:ERROR:23 Login failed\r\n")
		default:
			fmt.Fprintf(conn, "R:%s\r\n", strings.ToUpper(fields[0]))
		}
	}
}

func newTestCommandClient(t *testing.T, addr string) *Client {
	t.Helper()
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatal(err)
	}
	var port int
	fmt.Sscanf(portStr, "%d", &port)

	c := New(host, WithTLS(false), WithPort(port), WithConnTimeout(2*time.Second), WithReadTimeout(2*time.Second))
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCommandRoundTrip(t *testing.T) {
	addr := fakeHostCommandServer(t)
	c := newTestCommandClient(t, addr)

	args, err := c.Command(context.Background(), "GETLEVEL", "42")
	if err != nil {
		t.Fatal(err)
	}
	if len(args) != 2 || args[0] != "42" || args[1] != "100.000" {
		t.Errorf("args = %v, want [42 100.000]", args)
	}
}

func TestCommandErrorReply(t *testing.T) {
	addr := fakeHostCommandServer(t)
	c := newTestCommandClient(t, addr)

	_, err := c.Command(context.Background(), "BADCMD")
	if err == nil {
		t.Fatal("expected error for R:ERROR reply")
	}
}

func TestInvokeReturnsFullReplyArgs(t *testing.T) {
	addr := fakeHostCommandServer(t)
	c := newTestCommandClient(t, addr)

	result, err := c.Invoke(context.Background(), 42, "Load.GetLevel")
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 3 || result[0] != "42" || result[1] != "1" || result[2] != "Load.GetLevel" {
		t.Errorf("result = %v, want [42 1 Load.GetLevel]", result)
	}
}

func TestSubscribeObjectsReceivesStatusEvent(t *testing.T) {
	addr := fakeHostCommandServer(t)
	c := newTestCommandClient(t, addr)

	received := make(chan Event, 1)
	_, err := c.SubscribeObjects(context.Background(), func(e Event) {
		received <- e
	}, 42)
	if err != nil {
		t.Fatal(err)
	}

	select {
	case e := <-received:
		if e.ID != 42 || e.StatusType != "LOAD" {
			t.Errorf("event = %+v, want ID=42 StatusType=LOAD", e)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for status event")
	}
}
