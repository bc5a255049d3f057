package controller

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// fakeACIServer answers one OpenFilter/GetFilterResults/CloseFilter cycle
// per entry in rounds, each cycle returning the given VIDs as <Load>
// objects, mirroring configclient's own fakeACIServer test fixture
// (configclient/client_test.go) one layer up the stack.
func fakeACIServer(t *testing.T, rounds [][]int) string {
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
		round := 0
		for {
			request, err := readUntilCloseTag(reader, "IConfiguration")
			if err != nil {
				return
			}

			switch {
			case strings.Contains(request, "<OpenFilter>"):
				fmt.Fprint(conn, "<IConfiguration><OpenFilter><return>1</return></OpenFilter></IConfiguration>\n")
			case strings.Contains(request, "<GetFilterResults>"):
				var objs strings.Builder
				if round < len(rounds) {
					for _, vid := range rounds[round] {
						objs.WriteString(fmt.Sprintf(`<Object><Load VID="%d"/></Object>`, vid))
					}
				}
				fmt.Fprintf(conn, "<IConfiguration><GetFilterResults><return>%s</return></GetFilterResults></IConfiguration>\n", objs.String())
			case strings.Contains(request, "<CloseFilter>"):
				fmt.Fprint(conn, "<IConfiguration><CloseFilter><return>true</return></CloseFilter></IConfiguration>\n")
				round++
			default:
				return
			}
		}
	}()

	return ln.Addr().String()
}

func readUntilCloseTag(r *bufio.Reader, tag string) (string, error) {
	delim := "</" + tag + ">"
	var buf strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		buf.WriteByte(b)
		if strings.HasSuffix(buf.String(), delim) {
			return buf.String(), nil
		}
	}
}

func newTestConfigClient(t *testing.T, addr string) *configclient.Client {
	t.Helper()
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatal(err)
	}
	var port int
	fmt.Sscanf(portStr, "%d", &port)
	c := configclient.New(host,
		configclient.WithTLS(false),
		configclient.WithPort(port),
		configclient.WithConnTimeout(2*time.Second),
		configclient.WithReadTimeout(2*time.Second),
	)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestBaseInitializeEmitsObjectAdded(t *testing.T) {
	addr := fakeACIServer(t, [][]int{{1, 2}})
	cfg := newTestConfigClient(t, addr)
	cmd := commandclient.New("127.0.0.1")
	dispatcher := &events.Dispatcher{}

	var added []objects.VID
	dispatcher.Subscribe(func(e any) {
		if a, ok := e.(events.ObjectAdded); ok {
			added = append(added, a.Object.ObjectVID())
		}
	})

	base := NewBase[*objects.Load](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindLoad}

	if err := base.Initialize(context.Background(), false, false); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if len(added) != 2 {
		t.Fatalf("got %d ObjectAdded events, want 2: %v", len(added), added)
	}

	all := base.All()
	if len(all) != 2 {
		t.Fatalf("got %d objects in QuerySet, want 2", len(all))
	}
	if _, ok := base.Get(1); !ok {
		t.Errorf("Get(1) not found")
	}
	if _, ok := base.Get(2); !ok {
		t.Errorf("Get(2) not found")
	}
}

func TestBaseInitializeDiffsAddedAndDeleted(t *testing.T) {
	addr := fakeACIServer(t, [][]int{{1, 2}, {2, 3}})
	cfg := newTestConfigClient(t, addr)
	cmd := commandclient.New("127.0.0.1")
	dispatcher := &events.Dispatcher{}

	var added, deleted []objects.VID
	dispatcher.Subscribe(func(e any) {
		switch e := e.(type) {
		case events.ObjectAdded:
			added = append(added, e.Object.ObjectVID())
		case events.ObjectDeleted:
			deleted = append(deleted, e.Object.ObjectVID())
		}
	})

	base := NewBase[*objects.Load](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindLoad}
	ctx := context.Background()

	if err := base.Initialize(ctx, false, false); err != nil {
		t.Fatalf("Initialize (round 1): %v", err)
	}
	if err := base.Initialize(ctx, false, false); err != nil {
		t.Fatalf("Initialize (round 2): %v", err)
	}

	if len(deleted) != 1 || deleted[0] != 1 {
		t.Fatalf("got ObjectDeleted %v, want [1]", deleted)
	}

	wantAdded := map[objects.VID]bool{1: true, 2: true, 3: true}
	for _, vid := range added {
		if !wantAdded[vid] {
			t.Errorf("unexpected ObjectAdded for vid %d", vid)
		}
		delete(wantAdded, vid)
	}
	if len(wantAdded) != 0 {
		t.Errorf("missing ObjectAdded for vids %v", wantAdded)
	}

	if _, ok := base.Get(1); ok {
		t.Errorf("vid 1 still present after deletion")
	}
	all := base.All()
	if len(all) != 2 {
		t.Fatalf("got %d objects after round 2, want 2", len(all))
	}
}

func TestBaseLazyInitializeRunsOnce(t *testing.T) {
	addr := fakeACIServer(t, [][]int{{1}})
	cfg := newTestConfigClient(t, addr)
	cmd := commandclient.New("127.0.0.1")
	dispatcher := &events.Dispatcher{}

	base := NewBase[*objects.Load](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindLoad}

	obj, ok, err := base.AFirst(context.Background())
	if err != nil || !ok || obj.ObjectVID() != 1 {
		t.Fatalf("AFirst() = %v, %v, %v", obj, ok, err)
	}

	// A second AFirst must not re-enumerate (the fake server only answers
	// one OpenFilter/GetFilterResults/CloseFilter cycle).
	obj, ok, err = base.AFirst(context.Background())
	if err != nil || !ok || obj.ObjectVID() != 1 {
		t.Fatalf("second AFirst() = %v, %v, %v", obj, ok, err)
	}
}
