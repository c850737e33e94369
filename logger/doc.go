// Package logger provides structured logging for supplier-kit built on
// zerolog. It offers leveled logging with optional field maps, component
// tagging, and a global logger for package-level use. The core registry
// and group types never log; logging enters through the supplier
// middleware and the instrumented group wrapper.
package logger
