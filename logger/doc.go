// Package logger provides structured logging for streamkit built on zerolog.
//
// Components receive a *Logger via options and tag their output with
// WithComponent. A global logger is available for code without an injected
// instance.
//
//	log := logger.NewDefault("streamkit")
//	log.WithComponent("flow").Info("subscribed", logger.Fields(
//	    logger.FieldSubscriptionID, id,
//	    logger.FieldCapacity, 128,
//	))
package logger
