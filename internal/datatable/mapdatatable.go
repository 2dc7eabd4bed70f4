package datatable

import "simpledb/internal/common"

type MapDataTable struct {
	table map[string]int64
}

func NewMapDataTable() *MapDataTable {
	return &MapDataTable{
		table: make(map[string]int64),
	}
}

func (m *MapDataTable) Get(key string) common.Value {
	value, ok := m.table[key]
	if !ok {
		return common.Null()
	}
	return common.Int(value)
}

func (m *MapDataTable) Put(key string, value int64) {
	m.table[key] = value
}

func (m *MapDataTable) Delete(key string) {
	delete(m.table, key)
}

func (m *MapDataTable) Size() int {
	return len(m.table)
}

func (m *MapDataTable) Keys() []string {
	keys := make([]string, 0, len(m.table))
	for key := range m.table {
		keys = append(keys, key)
	}
	return keys
}
