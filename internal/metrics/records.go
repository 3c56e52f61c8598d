package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameRecordsCreated     = "records_created_total"
	NameRecordsUpdated     = "records_updated_total"
	NameRecordsDeleted     = "records_deleted_total"
	NameRecordConflicts    = "record_conflicts_total"
	NameValidationFailures = "validation_failures_total"
)

var RecordsCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameRecordsCreated,
		Help:      "Total records created",
		Namespace: Namespace,
	},
	[]string{LabelCollection},
)

var RecordsUpdated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameRecordsUpdated,
		Help:      "Total records updated",
		Namespace: Namespace,
	},
	[]string{LabelCollection},
)

var RecordsDeleted = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameRecordsDeleted,
		Help:      "Total records deleted",
		Namespace: Namespace,
	},
	[]string{LabelCollection},
)

var RecordConflicts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameRecordConflicts,
		Help:      "Total uniqueness conflicts rejected at the store boundary",
		Namespace: Namespace,
	},
	[]string{LabelCollection},
)

var ValidationFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameValidationFailures,
		Help:      "Total candidates rejected by validation",
		Namespace: Namespace,
	},
	[]string{LabelCollection},
)
