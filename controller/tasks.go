package controller

import (
	"github.com/loopj/aiovantage-sub001/commandclient"
	"github.com/loopj/aiovantage-sub001/configclient"
	"github.com/loopj/aiovantage-sub001/events"
	"github.com/loopj/aiovantage-sub001/objects"
)

// TasksController tracks every Task, grounded on _controllers/tasks.py's
// TasksController.
type TasksController struct {
	*Base[*objects.Task]
}

// NewTasksController builds a TasksController bound to cfg/cmd/dispatcher.
func NewTasksController(cfg *configclient.Client, cmd *commandclient.Client, dispatcher *events.Dispatcher) *TasksController {
	base := NewBase[*objects.Task](cfg, cmd, dispatcher)
	base.WireTags = []string{objects.KindTask}
	base.StatusCategories = []string{"TASK"}
	return &TasksController{Base: base}
}
