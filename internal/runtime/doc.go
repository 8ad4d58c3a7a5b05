// Package runtime provides the execution context for githelper commands.
//
// It encapsulates shared dependencies needed by commands, such as the
// repository handle, logger, and loaded configuration.
package runtime
