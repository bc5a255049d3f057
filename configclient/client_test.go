package configclient

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"
)

// fakeACIServer accepts a single connection and answers OpenFilter/
// GetFilterResults/CloseFilter requests against an in-memory list of
// objects, paginating them pageSize at a time.
func fakeACIServer(t *testing.T, objectCount int) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		reader := bufio.NewReader(conn)
		served := 0
		for {
			request, err := readUntilCloseTag(reader, "IConfiguration")
			if err != nil {
				return
			}

			switch {
			case strings.Contains(request, "<OpenFilter>"):
				fmt.Fprint(conn, "<IConfiguration><OpenFilter><return>1</return></OpenFilter></IConfiguration>\n")
			case strings.Contains(request, "<GetFilterResults>"):
				remaining := objectCount - served
				n := remaining
				if n > pageSize {
					n = pageSize
				}
				var objs strings.Builder
				for i := 0; i < n; i++ {
					objs.WriteString(fmt.Sprintf(`<Object><Load VID="%d"/></Object>`, served+i+1))
				}
				served += n
				fmt.Fprintf(conn, "<IConfiguration><GetFilterResults><return>%s</return></GetFilterResults></IConfiguration>\n", objs.String())
			case strings.Contains(request, "<CloseFilter>"):
				fmt.Fprint(conn, "<IConfiguration><CloseFilter><return>true</return></CloseFilter></IConfiguration>\n")
			default:
				return
			}
		}
	}()

	return ln.Addr().String()
}

// readUntilCloseTag reads from r until it has seen </tag>, mirroring how the
// real client frames Configuration requests with no trailing newline.
func readUntilCloseTag(r *bufio.Reader, tag string) (string, error) {
	delim := "</" + tag + ">"
	var buf strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		buf.WriteByte(b)
		s := buf.String()
		if strings.HasSuffix(s, delim) {
			return s, nil
		}
	}
}

func dialFakeServer(addr string) (string, int) {
	host, portStr, _ := net.SplitHostPort(addr)
	var port int
	fmt.Sscanf(portStr, "%d", &port)
	return host, port
}

func newTestClient(addr string) *Client {
	host, port := dialFakeServer(addr)
	return New(host, WithTLS(false), WithPort(port), WithConnTimeout(2*time.Second), WithReadTimeout(2*time.Second))
}

func TestObjectCursorPaginates125Objects(t *testing.T) {
	addr := fakeACIServer(t, 125)
	c := newTestClient(addr)
	defer c.Close()

	ctx := context.Background()
	cursor, err := c.Objects(ctx)
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for {
		obj, err := cursor.Next(ctx)
		if err != nil {
			break
		}
		if obj.Kind != "Load" {
			t.Errorf("object %d: Kind = %q, want %q", count, obj.Kind, "Load")
		}
		count++
	}

	if count != 125 {
		t.Errorf("got %d objects, want 125", count)
	}
}
