package universe

import (
	"sync"
	"time"
)

//Every calls fn on each interval tick from its own goroutine until cancel is called
//fn calls never overlap, ticks that fire while fn is still running are dropped
//cancel returns immediately and may be called more than once
func Every(interval time.Duration, fn func()) (cancel func()) {
	t := time.NewTicker(interval)
	stop := make(chan struct{})
	var once sync.Once

	go func() {
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				//the stop can race with the tick
				select {
				case <-stop:
					return
				default:
				}
				fn()
			}
		}
	}()

	return func() {
		once.Do(func() { close(stop) })
	}
}
