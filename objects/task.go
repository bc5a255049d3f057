package objects

import (
	"context"
	"fmt"

	"github.com/loopj/aiovantage-sub001/capability"
)

// Task is a programmed automation sequence, grounded on
// config_client/objects/task.py.
type Task struct {
	Base

	IsRunning bool `xml:"-"`
	State     bool `xml:"-"`
}

func (t *Task) Kind() string { return KindTask }

func (t *Task) Capabilities() []Capability {
	return []Capability{capability.KindTask, capability.KindObject}
}

func (t *Task) taskCapability() capability.Task { return capability.Task{Client: t.Client()} }

// Trigger starts the task.
func (t *Task) Trigger(ctx context.Context) error {
	return t.taskCapability().Trigger(ctx, int(t.VID))
}

// Stop halts the task if it's running.
func (t *Task) Stop(ctx context.Context) error {
	return t.taskCapability().Stop(ctx, int(t.VID))
}

// FetchState refreshes IsRunning/State from the controller and returns the
// field names that changed.
func (t *Task) FetchState(ctx context.Context) ([]string, error) {
	var changed []string
	tc := t.taskCapability()
	vid := int(t.VID)

	running, err := tc.IsRunning(ctx, vid)
	if err != nil {
		return nil, fmt.Errorf("objects: Task %d: %w", t.VID, err)
	}
	if running != t.IsRunning {
		t.IsRunning = running
		changed = append(changed, "IsRunning")
	}

	state, err := tc.GetState(ctx, vid)
	if err != nil {
		return nil, fmt.Errorf("objects: Task %d: %w", t.VID, err)
	}
	if state != t.State {
		t.State = state
		changed = append(changed, "State")
	}

	return changed, nil
}
