// Package workers runs the server's background tasks.
//
// A [Worker] is started once with a context and keeps running until that
// context is cancelled. [Workers] starts a set of them together and waits
// for them on shutdown.
package workers

import "context"

// Worker is a background task started by [Workers.Run].
//
// Run must not block: implementations spawn their own goroutines and
// stop when ctx is cancelled. Wait blocks until every goroutine started
// by Run has returned.
type Worker interface {
	Run(ctx context.Context)
	Wait()
}
