package salesdirectory

import (
	"iter"
)

// RecordIterator - Is used to iterate over all records one by one, bucket by bucket and within a bucket in chain order.
type RecordIterator struct {
	directory *Directory
	bucketNo  int64
	index     int
}

// Iterator - Returns a pointer to a new RecordIterator positioned before the first record.
// Every call gives a fresh full pass over the directory.
func (D *Directory) Iterator() *RecordIterator {
	return &RecordIterator{directory: D}
}

// Records - Returns a sequence over all records in the same order as Iterator
func (D *Directory) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for iterator := D.Iterator(); iterator.HasNext(); {
			record, err := iterator.Next()
			if err != nil || !yield(record) {
				return
			}
		}
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *RecordIterator) HasNext() bool {
	R.skipEmpty()
	return R.bucketNo < R.directory.numberOfBuckets
}

// Next - Returns record.
// It returns:
//   - record is the next record.
//   - err is an error of type NoRecordFound if there are no more records when calling this function.
func (R *RecordIterator) Next() (record Record, err error) {
	if !R.HasNext() {
		err = NoRecordFound{}
		return
	}

	record = R.directory.buckets[R.bucketNo].Records[R.index]
	R.index++

	return
}

// skipEmpty - Moves forward to the next position holding a record, or past the last bucket
func (R *RecordIterator) skipEmpty() {
	for R.bucketNo < R.directory.numberOfBuckets && R.index >= len(R.directory.buckets[R.bucketNo].Records) {
		R.bucketNo++
		R.index = 0
	}
}
