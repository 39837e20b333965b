package utils

import "sync"

// KeyedMutex serializes work per key. Locks for distinct keys never block
// each other.
type KeyedMutex struct {
	locks sync.Map
}

func (m *KeyedMutex) Lock(key string) func() {
	value, _ := m.locks.LoadOrStore(key, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
