package config

type HTTP struct {
	TasksAddress string `env:"TASKS_ADDRESS,expand" envDefault:":3000"`
	UsersAddress string `env:"USERS_ADDRESS,expand" envDefault:":8080"`
}
