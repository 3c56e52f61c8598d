package metrics

const Namespace = "taskboard"

const (
	LabelCollection = "collection"

	CollectionTasks = "tasks"
	CollectionUsers = "users"
)
