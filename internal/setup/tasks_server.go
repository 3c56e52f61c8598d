package setup

import (
	"context"

	"github.com/averlon/taskboard/internal/config"
	"github.com/averlon/taskboard/internal/http"
	"github.com/averlon/taskboard/internal/http/handler/metrics"
	"github.com/averlon/taskboard/internal/http/handler/tasks"
	"github.com/pkg/errors"
)

func NewTasksServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	store, err := getTaskStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure task store from config")
	}

	server := http.NewServer(
		http.WithAddress(conf.HTTP.TasksAddress),
		http.WithMount("/metrics/", metrics.NewHandler()),
		http.WithMount("/", tasks.NewHandler(store)),
	)

	return server, nil
}
