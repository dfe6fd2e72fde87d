package hashfunc

// HashAlgorithm - Interface that permits a caller of the Directory to supply a custom bucket
// selection algorithm suited for its particular distribution of customer ids.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a directory is created, so if a custom hash algorithm already has a table size
	// it will be overwritten by the number of buckets configured for the directory.
	//   - tableSize is the number of buckets the directory will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given a customer id it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(customerID int32) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// The directory allocates this many buckets, so it is read right after SetTableSize.
	GetTableSize() int64
}
