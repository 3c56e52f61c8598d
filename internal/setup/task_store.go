package setup

import (
	"context"

	"github.com/averlon/taskboard/internal/adapter/instrumented"
	"github.com/averlon/taskboard/internal/adapter/memory"
	"github.com/averlon/taskboard/internal/config"
	"github.com/averlon/taskboard/internal/core/port"
)

var getTaskStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.TaskStore, error) {
	return instrumented.NewTaskStore(memory.NewTaskStore()), nil
})
