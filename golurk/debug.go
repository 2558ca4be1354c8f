package golurk

import "github.com/go-logr/logr"

var internalLogger = logr.Discard()

func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("golurk")
}

// InternalLogger lets sibling packages log under the same root name
func InternalLogger() logr.Logger {
	return internalLogger
}

var stateLogger = func() logr.Logger {
	return internalLogger.WithName("state_updater")
}
