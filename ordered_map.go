package tokenv2

// OrderedMap 是按插入顺序记录的 string-key 映射表。
// 对已存在的 key 调用 Set 时，值被覆盖，但 key 保持在其首次出现的位置，这与 JavaScript 对象的属性顺序一致。
//
// 零值不可用，需通过 [NewOrderedMap] 创建。
type OrderedMap[V any] struct {
	keys  []string
	index map[string]int
	vals  []V
}

// NewOrderedMap 创建一个空的 [OrderedMap] 。
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{
		index: make(map[string]int),
	}
}

// Set 设置 key 对应的值。后写入的值覆盖先写入的，但 key 的顺序不变。
func (m *OrderedMap[V]) Set(key string, value V) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = value
		return
	}

	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
}

// Get 获取 key 对应的值。返回一个 bool 表示 key 是否存在。
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.vals[i], true
}

// Has 判断 key 是否存在。
func (m *OrderedMap[V]) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Len 返回元素个数。
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Keys 按顺序返回全部 key 的副本。
func (m *OrderedMap[V]) Keys() []string {
	res := make([]string, len(m.keys))
	copy(res, m.keys)
	return res
}

// Range 按顺序遍历每个元素，若 f 返回 false 则停止遍历。
func (m *OrderedMap[V]) Range(f func(key string, value V) bool) {
	for i, k := range m.keys {
		if !f(k, m.vals[i]) {
			return
		}
	}
}
