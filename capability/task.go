package capability

import (
	"context"
	"fmt"
	"strconv"

	"github.com/loopj/aiovantage-sub001/commandclient"
)

// Task implements the Task.* INVOKE interface, grounded on
// command_client/interfaces/task.py.
type Task struct {
	Client *commandclient.Client
}

func (t Task) IsRunning(ctx context.Context, vid int) (bool, error) {
	result, err := t.Client.Invoke(ctx, vid, "Task.IsRunning")
	if err != nil {
		return false, err
	}
	return parseBoolArg(result[1])
}

func (t Task) GetState(ctx context.Context, vid int) (bool, error) {
	result, err := t.Client.Invoke(ctx, vid, "Task.GetState")
	if err != nil {
		return false, err
	}
	return parseBoolArg(result[1])
}

// Trigger starts the task, mirroring TaskInterface.start.
func (t Task) Trigger(ctx context.Context, vid int) error {
	_, err := t.Client.Invoke(ctx, vid, "Task.Start")
	return err
}

func (t Task) Stop(ctx context.Context, vid int) error {
	_, err := t.Client.Invoke(ctx, vid, "Task.Stop")
	return err
}

// ParseCategoryStatus parses an "S:TASK" event into the task's run state.
func (t Task) ParseCategoryStatus(args []string) (field string, value any, err error) {
	if len(args) < 1 {
		return "", nil, fmt.Errorf("capability: S:TASK: missing argument")
	}
	state, err := parseBoolArg(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("capability: S:TASK: %w", err)
	}
	return "State", state, nil
}

// ParseObjectStatus handles Task.GetState and Task.IsRunning.
func (t Task) ParseObjectStatus(method string, args []string) (field string, value any, err error) {
	if len(args) < 1 {
		return "", nil, fmt.Errorf("capability: %s: missing argument", method)
	}
	state, err := parseBoolArg(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("capability: %s: %w", method, err)
	}
	switch method {
	case "Task.GetState":
		return "State", state, nil
	case "Task.IsRunning":
		return "IsRunning", state, nil
	default:
		return "", nil, fmt.Errorf("capability: Task: unhandled method %q", method)
	}
}

func parseBoolArg(s string) (bool, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}
