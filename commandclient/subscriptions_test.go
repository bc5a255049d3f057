package commandclient

import "testing"

func TestBatchIntsSplitsAtSize(t *testing.T) {
	vals := make([]int, 40)
	for i := range vals {
		vals[i] = i + 1
	}

	batches := batchInts(vals, 16)
	if len(batches) != 3 {
		t.Fatalf("got %d batches, want 3", len(batches))
	}
	if len(batches[0]) != 16 || len(batches[1]) != 16 || len(batches[2]) != 8 {
		t.Errorf("batch sizes = %d,%d,%d, want 16,16,8", len(batches[0]), len(batches[1]), len(batches[2]))
	}
}

func TestBatchIntsEmpty(t *testing.T) {
	if got := batchInts(nil, 16); got != nil {
		t.Errorf("batchInts(nil) = %v, want nil", got)
	}
}

func TestActiveKeysOnlyPositive(t *testing.T) {
	counts := map[string]int{"LOAD": 2, "BLIND": 0, "TASK": -1, "BTN": 1}
	got := activeKeys(counts)
	want := []string{"BTN", "LOAD"}
	if len(got) != len(want) {
		t.Fatalf("activeKeys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("activeKeys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSubscribeAndUnsubscribeRemovesCallback(t *testing.T) {
	c := New("127.0.0.1")

	var received []Event
	unsub := c.Subscribe(func(e Event) { received = append(received, e) })

	c.emit(Event{Tag: StatusEvent, StatusType: "LOAD", ID: 1})
	if len(received) != 1 {
		t.Fatalf("got %d events, want 1", len(received))
	}

	unsub()
	c.emit(Event{Tag: StatusEvent, StatusType: "LOAD", ID: 2})
	if len(received) != 1 {
		t.Errorf("got %d events after unsubscribe, want 1", len(received))
	}
}

func TestSubscribeFiltersByType(t *testing.T) {
	c := New("127.0.0.1")

	var statusCount, logCount int
	c.Subscribe(func(e Event) { statusCount++ }, StatusEvent)
	c.Subscribe(func(e Event) { logCount++ }, EnhancedLogEvent)

	c.emit(Event{Tag: StatusEvent})
	c.emit(Event{Tag: EnhancedLogEvent})
	c.emit(Event{Tag: Connected})

	if statusCount != 1 {
		t.Errorf("statusCount = %d, want 1", statusCount)
	}
	if logCount != 1 {
		t.Errorf("logCount = %d, want 1", logCount)
	}
}

func TestUnsubscribeOutOfOrderDoesNotCorruptOtherSubscriptions(t *testing.T) {
	c := New("127.0.0.1")

	var aCount, bCount, cCount int
	unsubA := c.Subscribe(func(e Event) { aCount++ })
	unsubB := c.Subscribe(func(e Event) { bCount++ })
	_ = c.Subscribe(func(e Event) { cCount++ })

	unsubA()
	unsubB()

	c.emit(Event{Tag: Connected})
	if aCount != 0 || bCount != 0 || cCount != 1 {
		t.Errorf("aCount=%d bCount=%d cCount=%d, want 0,0,1", aCount, bCount, cCount)
	}
}
