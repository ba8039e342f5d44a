package generator

import "sync"

// MemoryStore 是基于内存的 [PersistencePort] 实现，可被多个 goroutine 同时使用。
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]string
}

var _ PersistencePort = (*MemoryStore)(nil)

// NewMemoryStore 创建一个空的 MemoryStore 。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		m: make(map[string]string),
	}
}

// Read 实现 PersistencePort.Read() 。
func (s *MemoryStore) Read(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[key]
}

// Write 实现 PersistencePort.Write() 。 value 为空字符串时删除 key 。
func (s *MemoryStore) Write(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == "" {
		delete(s.m, key)
		return
	}
	s.m[key] = value
}

// Len 返回已保存的 key 的数量。
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
