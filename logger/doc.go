// Package logger provides structured logging for restkit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers. The client execution pipeline emits its
// per-request diagnostics through this package; logging is a no-fail
// side channel and never affects the outcome of a call.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("transport")
//	log.Info("request sent", logger.Fields(logger.FieldURL, u))
package logger
