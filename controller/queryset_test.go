package controller

import (
	"context"
	"testing"

	"github.com/loopj/aiovantage-sub001/objects"
)

type fakeObject struct {
	objects.Base
	level float64
}

func (f *fakeObject) Kind() string                    { return "Fake" }
func (f *fakeObject) Capabilities() []objects.Capability { return nil }

func newQuerySetFixture() (map[objects.VID]*fakeObject, QuerySet[*fakeObject]) {
	data := map[objects.VID]*fakeObject{
		1: {Base: objects.Base{VID: 1}, level: 0},
		2: {Base: objects.Base{VID: 2}, level: 50},
		3: {Base: objects.Base{VID: 3}, level: 100},
	}
	populate := func(ctx context.Context) error {
		return nil
	}
	qs := NewQuerySet(&data, func(ctx context.Context) error {
		return populate(ctx)
	})
	return data, qs
}

func TestQuerySetGet(t *testing.T) {
	_, qs := newQuerySetFixture()

	obj, ok := qs.Get(2)
	if !ok || obj.ObjectVID() != 2 {
		t.Fatalf("Get(2) = %v, %v", obj, ok)
	}

	if _, ok := qs.Get(99); ok {
		t.Errorf("Get(99) found an object, want none")
	}
}

func TestQuerySetFilter(t *testing.T) {
	_, qs := newQuerySetFixture()

	on := qs.Filter(func(f *fakeObject) bool { return f.level > 0 })
	all := on.All()
	if len(all) != 2 {
		t.Fatalf("got %d objects, want 2", len(all))
	}
	for _, obj := range all {
		if obj.level <= 0 {
			t.Errorf("Filter leaked a zero-level object: %+v", obj)
		}
	}
}

func TestQuerySetFilterComposes(t *testing.T) {
	_, qs := newQuerySetFixture()

	narrowed := qs.
		Filter(func(f *fakeObject) bool { return f.level > 0 }).
		Filter(func(f *fakeObject) bool { return f.level < 100 })

	all := narrowed.All()
	if len(all) != 1 || all[0].ObjectVID() != 2 {
		t.Fatalf("got %v, want only VID 2", all)
	}
}

func TestQuerySetFirst(t *testing.T) {
	_, qs := newQuerySetFixture()

	obj, ok := qs.First()
	if !ok || obj.ObjectVID() != 1 {
		t.Fatalf("First() = %v, %v, want VID 1", obj, ok)
	}
}

func TestQuerySetFirstEmpty(t *testing.T) {
	data := map[objects.VID]*fakeObject{}
	qs := NewQuerySet(&data, func(ctx context.Context) error { return nil })

	if _, ok := qs.First(); ok {
		t.Errorf("First() on empty set found something")
	}
}

func TestQuerySetAFirstTriggersPopulate(t *testing.T) {
	data := map[objects.VID]*fakeObject{}
	calls := 0
	qs := NewQuerySet(&data, func(ctx context.Context) error {
		calls++
		data[1] = &fakeObject{Base: objects.Base{VID: 1}}
		return nil
	})

	obj, ok, err := qs.AFirst(context.Background())
	if err != nil || !ok || obj.ObjectVID() != 1 {
		t.Fatalf("AFirst() = %v, %v, %v", obj, ok, err)
	}
	if calls != 1 {
		t.Errorf("populate called %d times, want 1", calls)
	}
}

func TestQuerySetIterRangesOverAll(t *testing.T) {
	_, qs := newQuerySetFixture()

	var vids []objects.VID
	for obj := range qs.Iter(context.Background()) {
		vids = append(vids, obj.ObjectVID())
	}
	if len(vids) != 3 {
		t.Fatalf("got %d objects, want 3", len(vids))
	}
}

func TestQuerySetIterStopsEarly(t *testing.T) {
	_, qs := newQuerySetFixture()

	count := 0
	for range qs.Iter(context.Background()) {
		count++
		break
	}
	if count != 1 {
		t.Errorf("got %d iterations, want 1 (early break)", count)
	}
}

func TestQuerySetGetWhere(t *testing.T) {
	_, qs := newQuerySetFixture()

	obj, ok := qs.GetWhere(func(f *fakeObject) bool { return f.level == 100 })
	if !ok || obj.ObjectVID() != 3 {
		t.Fatalf("GetWhere = %v, %v, want VID 3", obj, ok)
	}
}
