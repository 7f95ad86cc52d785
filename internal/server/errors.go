package server

import "errors"

// errNoServersAreCreated means neither transport had both an address and a
// handler.
var errNoServersAreCreated = errors.New("no servers are created")
