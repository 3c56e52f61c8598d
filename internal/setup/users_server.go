package setup

import (
	"context"

	"github.com/averlon/taskboard/internal/config"
	"github.com/averlon/taskboard/internal/http"
	"github.com/averlon/taskboard/internal/http/handler/metrics"
	"github.com/averlon/taskboard/internal/http/handler/users"
	"github.com/pkg/errors"
)

func NewUsersServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	store, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure user store from config")
	}

	server := http.NewServer(
		http.WithAddress(conf.HTTP.UsersAddress),
		http.WithMount("/metrics/", metrics.NewHandler()),
		http.WithMount("/", users.NewHandler(store)),
	)

	return server, nil
}
