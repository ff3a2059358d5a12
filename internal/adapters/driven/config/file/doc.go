// Package file provides file-based implementations of driven port interfaces.
//
// ConfigStore keeps marcassist settings in a TOML file, by default
// ~/.marcassist/config.toml. Dotted keys map onto TOML tables, so
// "cutter.suffix" is written as suffix under [cutter].
package file
