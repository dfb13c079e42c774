package cache

// lruNode links one key into the recency ring.
type lruNode[K comparable] struct {
	key        K
	newer, old *lruNode[K]
}

// lruList is a circular list around a sentinel: root.old is the most
// recently used key and root.newer the least recently used one.
// The zero value is ready to use. Cache guards it with its own mutex.
type lruList[K comparable] struct {
	root lruNode[K]
	len  int
}

func (l *lruList[K]) lazyInit() {
	if l.root.old == nil {
		l.root.old = &l.root
		l.root.newer = &l.root
	}
}

// pushFront records key as the most recently used entry.
func (l *lruList[K]) pushFront(key K) *lruNode[K] {
	n := &lruNode[K]{key: key}
	l.linkFront(n)
	return n
}

// moveToFront marks n as the most recently used entry.
func (l *lruList[K]) moveToFront(n *lruNode[K]) {
	if l.root.old == n {
		return
	}
	l.unlink(n)
	l.linkFront(n)
}

// removeOldest drops the least recently used entry and returns its key.
func (l *lruList[K]) removeOldest() (K, bool) {
	if l.len == 0 {
		var zero K
		return zero, false
	}
	n := l.root.newer
	l.unlink(n)
	return n.key, true
}

func (l *lruList[K]) linkFront(n *lruNode[K]) {
	l.lazyInit()
	front := l.root.old
	n.old = front
	n.newer = &l.root
	front.newer = n
	l.root.old = n
	l.len++
}

func (l *lruList[K]) unlink(n *lruNode[K]) {
	n.old.newer = n.newer
	n.newer.old = n.old
	n.old, n.newer = nil, nil
	l.len--
}

func (l *lruList[K]) clear() {
	l.root.old, l.root.newer = &l.root, &l.root
	l.len = 0
}
