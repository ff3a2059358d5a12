// Package memory provides in-memory implementations of driven port
// interfaces. They back tests and hosts that embed marcassist and already
// hold their configuration and Cutter table in memory.
package memory
