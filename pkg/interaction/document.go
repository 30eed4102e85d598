package interaction

// Listener observes input at document level, outside any single note.
type Listener func(Event)

type registration struct {
	id uint32
	fn Listener
}

// Document is the host-wide input source. Notes listen on it only while
// dragging, because the pointer can leave a note's box faster than the note
// follows it.
type Document struct {
	listeners []registration
	nextID    uint32
}

// NewDocument returns a document with no listeners.
func NewDocument() *Document {
	return &Document{}
}

// Handle releases one listener registration.
type Handle struct {
	id  uint32
	doc *Document
}

// Listen registers fn until the returned handle is released.
func (d *Document) Listen(fn Listener) *Handle {
	d.nextID++
	d.listeners = append(d.listeners, registration{id: d.nextID, fn: fn})
	return &Handle{id: d.nextID, doc: d}
}

// Release unregisters the listener. Releasing twice is a no-op.
func (h *Handle) Release() {
	if h == nil || h.doc == nil {
		return
	}
	d := h.doc
	h.doc = nil
	for i := range d.listeners {
		if d.listeners[i].id == h.id {
			copy(d.listeners[i:], d.listeners[i+1:])
			d.listeners[len(d.listeners)-1] = registration{}
			d.listeners = d.listeners[:len(d.listeners)-1]
			return
		}
	}
}

// Dispatch delivers ev to every current listener. Listeners may release
// themselves, or register others, while being dispatched to; such changes
// take effect from the next Dispatch.
func (d *Document) Dispatch(ev Event) {
	if len(d.listeners) == 0 {
		return
	}
	snapshot := make([]registration, len(d.listeners))
	copy(snapshot, d.listeners)
	for _, r := range snapshot {
		r.fn(ev)
	}
}

// Active reports whether any listener is registered, i.e. a drag is running.
func (d *Document) Active() bool {
	return len(d.listeners) > 0
}

// Len returns the number of registered listeners.
func (d *Document) Len() int {
	return len(d.listeners)
}
