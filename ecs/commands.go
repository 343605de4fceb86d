package ecs

// Commands buffers work that must run after every system of the frame has
// executed, such as drawing UI from state the systems just updated.
type Commands struct {
	defers []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs all queued functions in order, resetting the buffer state.
func (c *Commands) Flush() {
	for _, df := range c.defers {
		df.fn()
	}
	c.defers = c.defers[:0]
}
