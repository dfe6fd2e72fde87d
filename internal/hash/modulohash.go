package hash

// ModuloHashAlgorithm - The internally used bucket selection algorithm, bucket = customerID mod tableSize.
// Negative ids are folded into range as well so that the function is total.
type ModuloHashAlgorithm struct {
	tableSize int64
}

// NewModuloHashAlgorithm - Returns a pointer to a new ModuloHashAlgorithm instance
func NewModuloHashAlgorithm(tableSize int64) *ModuloHashAlgorithm {
	ha := &ModuloHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the directory will address
func (M *ModuloHashAlgorithm) SetTableSize(tableSize int64) {
	M.tableSize = tableSize
}

// HashFunc1 - Given a customer id it generates an index (bucket) between 0 and table size - 1
func (M *ModuloHashAlgorithm) HashFunc1(customerID int32) int64 {
	h := int64(customerID) % M.tableSize
	if h < 0 {
		h += M.tableSize
	}
	return h
}

// GetTableSize - Returns the table size the hash function is supporting
func (M *ModuloHashAlgorithm) GetTableSize() int64 {
	return M.tableSize
}
