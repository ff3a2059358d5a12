// Package rulepack reads punctuation rule packs from disk and watches them
// for changes with fsnotify.
package rulepack
