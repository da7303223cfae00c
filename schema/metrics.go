package schema

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	modePermissive = "permissive"
	modeStrict     = "strict"
)

var validations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dfschema_validations_total",
	Help: "Number of schema validations run, by mode.",
}, []string{"mode"})

var validationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dfschema_validation_failures_total",
	Help: "Number of failed schema validations, by mode and failure kind.",
}, []string{"mode", "kind"})

func observe(mode string, err error) {
	validations.WithLabelValues(mode).Inc()
	if err != nil {
		validationFailures.WithLabelValues(mode, errKind(err)).Inc()
	}
}

func errKind(err error) string {
	switch err.(type) {
	case MissingColumnError:
		return "missing_column"
	case TypeMismatchError:
		return "type_mismatch"
	case ColumnCountMismatchError:
		return "column_count_mismatch"
	case UnexpectedColumnError:
		return "unexpected_column"
	default:
		return "other"
	}
}
