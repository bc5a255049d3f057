package controller

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/internal/vlog"
	"github.com/loopj/aiovantage-sub001/objects"
)

var log = vlog.Get("controller")

// Controller is the non-generic surface every Base[T] satisfies, letting
// the vantage facade drive every concrete controller (whatever its object
// type) through one slice during Connect/Close, instead of repeating the
// same calls once per family.
type Controller interface {
	Initialize(ctx context.Context, fetchState, enableStateMonitoring bool) error
	FetchState(ctx context.Context) error
	EnableStateMonitoring(ctx context.Context) error
	DisableStateMonitoring()
	HandleReconnect()
	SetSupportsEnhancedLog(bool)
}

// fetcher is implemented by any objects.Object whose runtime fields can be
// refreshed from the controller, grounded on _objects/*.py's fetch_state
// methods.
type fetcher interface {
	FetchState(ctx context.Context) ([]string, error)
}

// binder is implemented by every objects.Object (via the embedded
// objects.Base), letting Base[T] attach a command client to each object it
// decodes regardless of the object's concrete type.
type binder interface {
	BindClient(cc *commandclient.Client)
}

// Base is the generic per-object-family controller, grounded on
// _controllers/base.py's Controller. It owns the authoritative in-memory
// set of objects of type T, keeps it in sync with the config client, and
// optionally subscribes to live status updates from the command client.
type Base[T objects.Object] struct {
	QuerySet[T]

	// WireTags restricts the config client's object enumeration to these
	// tags; every concrete controller sets this to its family's tags.
	WireTags []string

	// ForceCategoryStatus makes EnableStateMonitoring always use
	// category-status (S:<CAT>) dispatch instead of object-status
	// (EL: STATUS/STATUSEX), matching _controllers/gmem.py's override
	// (GMem values are reported only via "S:VARIABLE", never Enhanced Log).
	ForceCategoryStatus bool

	// StatusCategories names the S:<CAT> categories this family's objects
	// report under, used only when status monitoring falls back to
	// category mode.
	StatusCategories []string

	// SupportsEnhancedLog records whether the connected controller's
	// firmware answers config-client introspection (and so is assumed to
	// support Enhanced Log status reporting). The vantage facade sets this
	// once per connection, from a configclient.GetVersion probe, before
	// calling Initialize with state monitoring enabled; it defaults to
	// true so a controller built without going through the facade (e.g. in
	// a test) still exercises the richer object-status path.
	SupportsEnhancedLog bool

	configClient  *configclient.Client
	commandClient *commandclient.Client
	dispatcher    *events.Dispatcher

	mu          sync.RWMutex
	data        map[objects.VID]T
	initialized bool

	unsubscribe commandclient.Unsubscribe
}

// NewBase wires a Base[T] to its owning facade's config/command clients and
// event dispatcher. Concrete controllers call this from their constructor.
func NewBase[T objects.Object](cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *Base[T] {
	b := &Base[T]{
		configClient:        cfg,
		commandClient:       cmd,
		dispatcher:          dispatcher,
		data:                make(map[objects.VID]T),
		SupportsEnhancedLog: true,
	}
	b.QuerySet = NewQuerySet(&b.data, b.lazyInitialize)
	return b
}

// SetSupportsEnhancedLog overrides the firmware-capability assumption used
// by EnableStateMonitoring, satisfying Controller.
func (b *Base[T]) SetSupportsEnhancedLog(v bool) { b.SupportsEnhancedLog = v }

// lazyInitialize is QuerySet's populate callback: it runs Initialize(fetch
// state and monitoring both off) exactly once, mirroring
// _controllers/base.py's Controller._lazy_initialize.
func (b *Base[T]) lazyInitialize(ctx context.Context) error {
	b.mu.RLock()
	done := b.initialized
	b.mu.RUnlock()
	if done {
		return nil
	}
	return b.Initialize(ctx, false, false)
}

// Initialize enumerates every object of this controller's WireTags from the
// config client and diffs the result against the previously known set:
// newly seen VIDs are added and emitted as ObjectAdded, and VIDs no longer
// seen are removed and emitted as ObjectDeleted. An object whose VID is
// already known keeps its existing value: its configuration fields are not
// refreshed and enumeration emits no ObjectUpdated for it. When
// fetchState is true, every surviving object's FetchState is called and any
// resulting field changes are emitted as ObjectUpdated. When
// enableStateMonitoring is true, live status subscriptions are (re)opened
// afterward.
func (b *Base[T]) Initialize(ctx context.Context, fetchState, enableStateMonitoring bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	cursor, err := b.configClient.Objects(ctx, b.WireTags...)
	if err != nil {
		return fmt.Errorf("controller: enumerate %v: %w", b.WireTags, err)
	}

	seen := make(map[objects.VID]bool, len(b.data))
	for {
		raw, err := cursor.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("controller: enumerate %v: %w", b.WireTags, err)
		}

		obj, err := b.decode(raw)
		if err != nil {
			log.Warningf("controller: decode %s %d: %v", raw.Kind, rawVID(raw), err)
			continue
		}

		vid := obj.ObjectVID()
		seen[vid] = true

		if _, known := b.data[vid]; known {
			continue
		}
		b.data[vid] = obj
		b.dispatcher.Emit(events.ObjectAdded{Object: obj})
	}

	for vid, obj := range b.data {
		if seen[vid] {
			continue
		}
		delete(b.data, vid)
		b.dispatcher.Emit(events.ObjectDeleted{Object: obj})
	}

	b.initialized = true

	if fetchState {
		for _, obj := range b.data {
			b.fetchOne(ctx, obj)
		}
	}

	if enableStateMonitoring {
		if err := b.enableStateMonitoringLocked(ctx); err != nil {
			return err
		}
	}

	return nil
}

// decode builds a new T from a raw config-client object, binds the command
// client, and returns it as T (so callers keep the family's concrete
// pointer type rather than the objects.Object interface).
func (b *Base[T]) decode(raw configclient.RawObject) (T, error) {
	var zero T

	ctor, ok := objects.Registry[raw.Kind]
	if !ok {
		return zero, fmt.Errorf("unknown object kind %q", raw.Kind)
	}

	obj := ctor()
	if err := xml.Unmarshal(raw.Inner, obj); err != nil {
		return zero, err
	}

	typed, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("object kind %q is not a %T", raw.Kind, zero)
	}

	if bindable, ok := any(typed).(binder); ok {
		bindable.BindClient(b.commandClient)
	}

	return typed, nil
}

func (b *Base[T]) fetchOne(ctx context.Context, obj T) {
	f, ok := any(obj).(fetcher)
	if !ok {
		return
	}
	changed, err := f.FetchState(ctx)
	if err != nil {
		log.Warningf("controller: fetch state %d: %v", obj.ObjectVID(), err)
		return
	}
	if len(changed) > 0 {
		b.dispatcher.Emit(events.ObjectUpdated{Object: obj, ChangedFields: changed})
	}
}

// FetchState refreshes every known object's runtime fields and emits
// ObjectUpdated for each that changed.
func (b *Base[T]) FetchState(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return fmt.Errorf("controller: FetchState before Initialize")
	}
	for _, obj := range b.data {
		b.fetchOne(ctx, obj)
	}
	return nil
}

// EnableStateMonitoring opens live status subscriptions for this
// controller's objects, grounded on _controllers/base.py's
// enable_state_monitoring: object-status (Enhanced Log) dispatch when the
// connection supports it, category-status otherwise.
func (b *Base[T]) EnableStateMonitoring(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enableStateMonitoringLocked(ctx)
}

func (b *Base[T]) enableStateMonitoringLocked(ctx context.Context) error {
	if b.unsubscribe != nil {
		return nil
	}

	if b.ForceCategoryStatus || !b.SupportsEnhancedLog {
		unsub, err := b.commandClient.SubscribeStatus(ctx, b.handleCategoryStatus, b.StatusCategories...)
		if err != nil {
			return fmt.Errorf("controller: subscribe status %v: %w", b.StatusCategories, err)
		}
		b.unsubscribe = unsub
		return nil
	}

	unsub, err := b.commandClient.SubscribeEnhancedLog(ctx, b.handleEnhancedLog, "STATUS", "STATUSEX")
	if err != nil {
		return fmt.Errorf("controller: subscribe enhanced log: %w", err)
	}
	b.unsubscribe = unsub
	return nil
}

// DisableStateMonitoring closes any open status subscription.
func (b *Base[T]) DisableStateMonitoring() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

// handleCategoryStatus handles an "S:<CAT> <vid> <args>" event for a VID
// this controller owns. Rather than parsing args into fields per category
// (which would need a dedicated decoder per capability), it re-fetches the
// object's state directly, reusing the same FetchState path Initialize
// already exercises.
func (b *Base[T]) handleCategoryStatus(e commandclient.Event) {
	b.mu.RLock()
	obj, ok := b.data[objects.VID(e.ID)]
	b.mu.RUnlock()
	if !ok {
		return
	}
	b.dispatcher.Emit(events.StatusReceived{Category: e.StatusType, VID: objects.VID(e.ID), Args: e.Args})
	go b.fetchAndEmit(obj)
}

// handleEnhancedLog handles an "EL: <vid> <method> ..." object-status line,
// tokenizing it and, if the VID belongs to this controller, re-fetching
// that object's state.
func (b *Base[T]) handleEnhancedLog(e commandclient.Event) {
	b.dispatcher.Emit(events.EnhancedLogReceived{Log: e.Log})

	fields := strings.Fields(e.Log)
	if len(fields) < 1 {
		return
	}
	vid, err := strconv.Atoi(fields[0])
	if err != nil {
		return
	}

	b.mu.RLock()
	obj, ok := b.data[objects.VID(vid)]
	b.mu.RUnlock()
	if !ok {
		return
	}
	go b.fetchAndEmit(obj)
}

func (b *Base[T]) fetchAndEmit(obj T) {
	f, ok := any(obj).(fetcher)
	if !ok {
		return
	}
	changed, err := f.FetchState(context.Background())
	if err != nil {
		log.Warningf("controller: fetch state %d: %v", obj.ObjectVID(), err)
		return
	}
	if len(changed) > 0 {
		b.dispatcher.Emit(events.ObjectUpdated{Object: obj, ChangedFields: changed})
	}
}

// HandleReconnect schedules a full FetchState in response to the command
// client's event connection coming back up, mirroring
// _controllers/base.py's _handle_reconnect_event (asyncio.create_task).
func (b *Base[T]) HandleReconnect() {
	go func() {
		if err := b.FetchState(context.Background()); err != nil {
			log.Warningf("controller: reconnect fetch state: %v", err)
		}
	}()
}

func rawVID(raw configclient.RawObject) int {
	var probe struct {
		VID int `xml:"VID,attr"`
	}
	_ = xml.Unmarshal(raw.Inner, &probe)
	return probe.VID
}
