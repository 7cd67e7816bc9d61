// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"obleafusion/internal/shared/logger"
)

// SafeGo runs fn in a goroutine and delivers its result on the returned
// channel. A panic is logged with its stack trace and reported as an error
// instead of crashing the process. The channel is buffered and closed after
// the single result is sent.
func SafeGo(log logger.Interface, name string, fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				done <- fmt.Errorf("goroutine %s panicked: %v", name, r)
			}
		}()
		done <- fn()
	}()
	return done
}
