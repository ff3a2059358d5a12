package tui

import "errors"

// ErrMissingCutterService is returned when the Cutter service is not provided.
var ErrMissingCutterService = errors.New("tui: cutter service is required")

// ErrMissingPunctuationService is returned when the punctuation service is not provided.
var ErrMissingPunctuationService = errors.New("tui: punctuation service is required")
