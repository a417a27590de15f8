package disposable

import (
	"github.com/arloliu/rx/internal/lock"
	"github.com/arloliu/rx/types"
)

// Key addresses an item stored in a CompositeDisposable.
//
// Keys are opaque and never reused by the composite that issued them.
type Key uint64

// CompositeDisposable is an unordered group of disposables addressed by key.
//
// Insert, Remove and Dispose may be called from any goroutine. Bookkeeping is
// guarded by a spin lock; member disposal always happens outside of it.
// The disposed state is a one-way transition.
type CompositeDisposable struct {
	lock     lock.SpinLock
	items    map[Key]types.Disposable
	nextKey  Key
	disposed bool
}

var _ types.Cancelable = (*CompositeDisposable)(nil)

// NewComposite creates a composite holding the given disposables.
//
// Parameters:
//   - items: Initial members
//
// Returns:
//   - *CompositeDisposable: Active composite
func NewComposite(items ...types.Disposable) *CompositeDisposable {
	c := &CompositeDisposable{items: make(map[Key]types.Disposable, len(items))}
	for _, item := range items {
		c.nextKey++
		c.items[c.nextKey] = item
	}

	return c
}

// Insert adds a disposable to the group.
//
// If the composite is already disposed, d is disposed immediately and
// inserted is false.
//
// Parameters:
//   - d: Disposable to add
//
// Returns:
//   - Key: Key usable with Remove (zero when not inserted)
//   - bool: true if d was stored
func (c *CompositeDisposable) Insert(d types.Disposable) (Key, bool) {
	c.lock.Lock()
	if c.disposed {
		c.lock.Unlock()
		d.Dispose()

		return 0, false
	}
	c.nextKey++
	key := c.nextKey
	c.items[key] = d
	c.lock.Unlock()

	return key, true
}

// Remove deletes the item stored under key and disposes it.
//
// Removing an unknown key, or removing after disposal, is a no-op.
//
// Parameters:
//   - key: Key returned by Insert
func (c *CompositeDisposable) Remove(key Key) {
	c.lock.Lock()
	d, ok := c.items[key]
	if ok {
		delete(c.items, key)
	}
	c.lock.Unlock()

	if ok {
		d.Dispose()
	}
}

// Count returns the number of stored items.
func (c *CompositeDisposable) Count() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return len(c.items)
}

// IsDisposed reports whether Dispose has been called.
func (c *CompositeDisposable) IsDisposed() bool {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.disposed
}

// Dispose disposes every stored item and marks the composite as disposed.
func (c *CompositeDisposable) Dispose() {
	c.lock.Lock()
	if c.disposed {
		c.lock.Unlock()
		return
	}
	c.disposed = true
	items := c.items
	c.items = nil
	c.lock.Unlock()

	for _, d := range items {
		d.Dispose()
	}
}
