// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that allows
// running and stopping multiple workers in a unified way, and the
// bcrypt PasswordHasher pool.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns; the work itself happens in goroutines
// the worker owns. Stop asks those goroutines to finish and waits for them.
//
// Example implementation:
//
//	type MyWorker struct{ done chan struct{} }
//
//	func (w *MyWorker) Run()  { go w.loop() }
//	func (w *MyWorker) Stop() { close(w.done) }
type Worker interface {
	Run()
	Stop()
}
