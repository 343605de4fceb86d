package input

// ButtonInput tracks held buttons and the press/release edges seen during the
// current frame. Pressing a button that is already held is not an edge.
type ButtonInput[T comparable] struct {
	pressed      map[T]struct{}
	justPressed  map[T]struct{}
	justReleased map[T]struct{}
}

// NewButtonInput returns a ButtonInput with nothing held.
func NewButtonInput[T comparable]() *ButtonInput[T] {
	return &ButtonInput[T]{
		pressed:      make(map[T]struct{}),
		justPressed:  make(map[T]struct{}),
		justReleased: make(map[T]struct{}),
	}
}

// Press records b as held, and as just pressed if it was not held before.
func (b *ButtonInput[T]) Press(button T) {
	if _, held := b.pressed[button]; held {
		return
	}
	b.pressed[button] = struct{}{}
	b.justPressed[button] = struct{}{}
}

// Release records b as no longer held, and as just released if it was held.
func (b *ButtonInput[T]) Release(button T) {
	if _, held := b.pressed[button]; !held {
		return
	}
	delete(b.pressed, button)
	b.justReleased[button] = struct{}{}
}

// Pressed reports whether button is currently held.
func (b *ButtonInput[T]) Pressed(button T) bool {
	_, ok := b.pressed[button]
	return ok
}

// JustPressed reports whether button went down during this frame.
func (b *ButtonInput[T]) JustPressed(button T) bool {
	_, ok := b.justPressed[button]
	return ok
}

// JustReleased reports whether button went up during this frame.
func (b *ButtonInput[T]) JustReleased(button T) bool {
	_, ok := b.justReleased[button]
	return ok
}

// Set drives the held state from a level reading, generating edges on change.
func (b *ButtonInput[T]) Set(button T, down bool) {
	if down {
		b.Press(button)
	} else {
		b.Release(button)
	}
}

// ReleaseAll releases every held button, e.g. when the window loses focus.
func (b *ButtonInput[T]) ReleaseAll() {
	for button := range b.pressed {
		b.justReleased[button] = struct{}{}
	}
	clear(b.pressed)
}

// Advance clears this frame's edges.
func (b *ButtonInput[T]) Advance() {
	clear(b.justPressed)
	clear(b.justReleased)
}
