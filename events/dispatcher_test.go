package events

import "testing"

func TestDispatcherDeliversToAllSubscribers(t *testing.T) {
	var d Dispatcher
	var gotA, gotB any

	d.Subscribe(func(e any) { gotA = e })
	d.Subscribe(func(e any) { gotB = e })

	d.Emit(Connected{})

	if _, ok := gotA.(Connected); !ok {
		t.Errorf("gotA = %#v, want Connected", gotA)
	}
	if _, ok := gotB.(Connected); !ok {
		t.Errorf("gotB = %#v, want Connected", gotB)
	}
}

func TestDispatcherUnsubscribeRemovesCallback(t *testing.T) {
	var d Dispatcher
	calls := 0

	unsub := d.Subscribe(func(e any) { calls++ })
	d.Emit(Connected{})
	unsub()
	d.Emit(Connected{})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDispatcherUnsubscribeIsIdempotent(t *testing.T) {
	var d Dispatcher
	unsub := d.Subscribe(func(e any) {})
	unsub()
	unsub()
}

func TestDispatcherTypeSwitchDispatch(t *testing.T) {
	var d Dispatcher
	var updated ObjectUpdated

	d.Subscribe(func(e any) {
		if ou, ok := e.(ObjectUpdated); ok {
			updated = ou
		}
	})

	d.Emit(ObjectUpdated{ChangedFields: []string{"Level"}})

	if len(updated.ChangedFields) != 1 || updated.ChangedFields[0] != "Level" {
		t.Errorf("updated = %#v", updated)
	}
}
