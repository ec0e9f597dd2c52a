package cache

// EvictionPolicy decides which key leaves a Cache when it grows.
// Policies are not safe for concurrent use; Cache serializes all calls.
type EvictionPolicy[K comparable] interface {
	// Added records a newly stored key.
	Added(key K)
	// Accessed records a hit or an overwrite of an existing key.
	Accessed(key K)
	// Removed records a key deleted by the cache's user.
	Removed(key K)
	// Victim returns a key to evict when size entries are stored, or
	// false when the cache may keep growing.
	Victim(size int) (K, bool)
	// Reset forgets every key.
	Reset()
}

// NoEviction returns a policy that never evicts.
func NoEviction[K comparable]() EvictionPolicy[K] {
	return noEviction[K]{}
}

type noEviction[K comparable] struct{}

func (noEviction[K]) Added(K)    {}
func (noEviction[K]) Accessed(K) {}
func (noEviction[K]) Removed(K)  {}
func (noEviction[K]) Reset()     {}

func (noEviction[K]) Victim(int) (K, bool) {
	var zero K
	return zero, false
}

// DefaultCapacity is the LRU capacity used when NewLRU is given a
// non-positive capacity.
const DefaultCapacity = 64

// LRU evicts the least recently used key once more than Capacity keys
// are stored.
type LRU[K comparable] struct {
	capacity int
	nodes    map[K]*lruNode[K]
	list     lruList[K]
}

// NewLRU returns an LRU policy for at most capacity entries.
func NewLRU[K comparable](capacity int) *LRU[K] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU[K]{capacity: capacity, nodes: make(map[K]*lruNode[K])}
}

// Capacity returns the maximum number of entries.
func (p *LRU[K]) Capacity() int { return p.capacity }

// Added implements EvictionPolicy.
func (p *LRU[K]) Added(key K) {
	if n, ok := p.nodes[key]; ok {
		p.list.moveToFront(n)
		return
	}
	p.nodes[key] = p.list.pushFront(key)
}

// Accessed implements EvictionPolicy.
func (p *LRU[K]) Accessed(key K) {
	if n, ok := p.nodes[key]; ok {
		p.list.moveToFront(n)
	}
}

// Removed implements EvictionPolicy.
func (p *LRU[K]) Removed(key K) {
	if n, ok := p.nodes[key]; ok {
		p.list.unlink(n)
		delete(p.nodes, key)
	}
}

// Victim implements EvictionPolicy.
func (p *LRU[K]) Victim(size int) (K, bool) {
	if size <= p.capacity || p.list.tail == nil {
		var zero K
		return zero, false
	}
	key := p.list.tail.key
	p.Removed(key)
	return key, true
}

// Reset implements EvictionPolicy.
func (p *LRU[K]) Reset() {
	p.nodes = make(map[K]*lruNode[K])
	p.list = lruList[K]{}
}

// lruNode is a node of the recency list; head is the most recent.
type lruNode[K comparable] struct {
	key        K
	prev, next *lruNode[K]
}

type lruList[K comparable] struct {
	head, tail *lruNode[K]
}

func (l *lruList[K]) pushFront(key K) *lruNode[K] {
	n := &lruNode[K]{key: key}
	l.linkFront(n)
	return n
}

func (l *lruList[K]) moveToFront(n *lruNode[K]) {
	if n == l.head {
		return
	}
	l.unlink(n)
	l.linkFront(n)
}

func (l *lruList[K]) linkFront(n *lruNode[K]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
}

func (l *lruList[K]) unlink(n *lruNode[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
