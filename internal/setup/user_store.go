package setup

import (
	"context"

	gormAdapter "github.com/averlon/taskboard/internal/adapter/gorm"
	"github.com/averlon/taskboard/internal/adapter/instrumented"
	"github.com/averlon/taskboard/internal/config"
	"github.com/averlon/taskboard/internal/core/port"
	"github.com/pkg/errors"
)

var getUserStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.UserStore, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return instrumented.NewUserStore(gormAdapter.NewStore(db)), nil
})
