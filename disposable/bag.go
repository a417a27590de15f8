package disposable

import (
	"sync"

	"github.com/arloliu/rx/types"
)

// Bag owns a set of subscriptions and disposes them all at once.
//
// Items are disposed in insertion order. A Bag can be reused after Reset.
type Bag struct {
	mu       sync.Mutex
	items    []types.Disposable
	disposed bool
}

var _ types.Cancelable = (*Bag)(nil)

// NewBag creates an empty Bag.
func NewBag() *Bag {
	return &Bag{}
}

// Insert adds d to the bag. If the bag is disposed, d is disposed immediately.
func (b *Bag) Insert(d types.Disposable) {
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		d.Dispose()

		return
	}
	b.items = append(b.items, d)
	b.mu.Unlock()
}

// Len returns the number of held items.
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.items)
}

// Dispose disposes every held item. Later inserts are disposed immediately.
func (b *Bag) Dispose() {
	b.mu.Lock()
	b.disposed = true
	items := b.items
	b.items = nil
	b.mu.Unlock()

	for _, d := range items {
		d.Dispose()
	}
}

// IsDisposed reports whether Dispose has been called.
func (b *Bag) IsDisposed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.disposed
}

// Reset disposes held items and makes the bag accept new items again.
func (b *Bag) Reset() {
	b.Dispose()

	b.mu.Lock()
	b.disposed = false
	b.mu.Unlock()
}

// DisposedBy adds d to bag and returns d for chaining.
//
// Parameters:
//   - d: Subscription to hand over
//   - bag: Owning bag
//
// Returns:
//   - D: The same disposable
func DisposedBy[D types.Disposable](d D, bag *Bag) D {
	bag.Insert(d)
	return d
}
