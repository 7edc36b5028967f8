package tui

import "errors"

// ErrMissingSession is returned when the conversation session is not provided.
var ErrMissingSession = errors.New("tui: conversation session is required")
