package service

import "time"

// cycle is a running render loop. It renders once on start and then on
// every tick until stopped.
type cycle struct {
	stop chan struct{}
	done chan struct{}
}

func startCycle(interval time.Duration, render func()) *cycle {
	c := &cycle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go c.run(interval, render)
	return c
}

func (c *cycle) run(interval time.Duration, render func()) {
	defer close(c.done)

	render()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			render()
		}
	}
}

// Stop ends the loop and waits for an in-progress render to finish.
func (c *cycle) Stop() {
	close(c.stop)
	<-c.done
}
