package salesdirectory

import (
	"fmt"
	"go.uber.org/zap"
	"slices"
)

// BucketNo - Returns which bucket number that the given customer id results in
//   - customerID is the identifier of a record
func (D *Directory) BucketNo(customerID int32) (bucketNo int64, err error) {
	bucketNo = D.hashAlgorithm.HashFunc1(customerID)
	if bucketNo < 0 || bucketNo >= D.numberOfBuckets {
		err = fmt.Errorf("recieved bucket number from bucket algorithm is outside permitted range")
		return
	}

	return
}

// Insert - Adds a record first in the chain of the bucket given by its customer id.
// Insert does not check that the customer id is unique, use ValidateID before calling it.
//   - record is the record to add, it is copied into the directory
//
// It returns:
//   - err is either of type DirectoryFull, if the directory already holds max records, or a standard error
func (D *Directory) Insert(record Record) (err error) {
	if D.count >= D.maxRecords {
		err = DirectoryFull{}
		return
	}

	bucketNo, err := D.BucketNo(record.CustomerID)
	if err != nil {
		return
	}

	bucket := &D.buckets[bucketNo]
	bucket.Records = slices.Insert(bucket.Records, 0, record)
	D.count++

	D.logger.Debug("inserted record",
		zap.Int32("customer_id", record.CustomerID),
		zap.Int64("bucket", bucketNo),
		zap.Int64("count", D.count))

	return
}

// Search - Gets the record that corresponds to the given customer id.
//   - customerID is the identifier of a record
//
// It returns:
//   - record is a copy of the matching record if found, if not found an error of type NoRecordFound is also returned.
//   - err is either of type NoRecordFound or a standard error, if something went wrong
func (D *Directory) Search(customerID int32) (record Record, err error) {
	bucketNo, index, err := D.locate(customerID)
	if err != nil {
		return
	}

	record = D.buckets[bucketNo].Records[index]

	return
}

// Delete - Returns the record corresponding to customer id and removes it from the directory.
// The order of the remaining records in the chain is preserved.
//   - customerID is the identifier of a record
//
// It returns:
//   - record is the removed record if found, if not found an error of type NoRecordFound is also returned.
//   - err is either of type NoRecordFound or a standard error, if something went wrong
func (D *Directory) Delete(customerID int32) (record Record, err error) {
	bucketNo, index, err := D.locate(customerID)
	if err != nil {
		return
	}

	bucket := &D.buckets[bucketNo]
	record = bucket.Records[index]
	bucket.Records = slices.Delete(bucket.Records, index, index+1)
	if len(bucket.Records) == 0 {
		bucket.Records = nil
	}
	D.count--

	D.logger.Debug("deleted record",
		zap.Int32("customer_id", customerID),
		zap.Int64("bucket", bucketNo),
		zap.Int64("count", D.count))

	return
}

// ValidateID - Checks that a customer id can be used for a new record.
//   - candidateID is the customer id to check
//
// It returns:
//   - err is nil if the id is free, of type MalformedID if it is not positive or of type DuplicateID if a record already holds it
func (D *Directory) ValidateID(candidateID int32) (err error) {
	return D.validateID(candidateID, 0, false)
}

// ValidateIDExcluding - Checks that a customer id can be given to the record currently holding currentID,
// that record itself is not counted as a holder of the id.
//   - candidateID is the customer id to check
//   - currentID is the customer id of the record being modified
//
// It returns:
//   - err is nil if the id is free, of type MalformedID if it is not positive or of type DuplicateID if another record holds it
func (D *Directory) ValidateIDExcluding(candidateID, currentID int32) (err error) {
	return D.validateID(candidateID, currentID, true)
}

// Modify - Applies the fields given in update to the record holding customer id. Fields left as nil keep their value.
// If the customer id itself changes, the new id is validated and the record is moved to the bucket of the new id.
//   - customerID is the identifier of the record to modify
//   - update holds the fields to change
//
// It returns:
//   - record is a copy of the record as it is after the modification
//   - err is of type NoRecordFound, MalformedID, DuplicateID or a standard error, in which case nothing was changed
func (D *Directory) Modify(customerID int32, update RecordUpdate) (record Record, err error) {
	bucketNo, index, err := D.locate(customerID)
	if err != nil {
		return
	}

	record = update.Apply(D.buckets[bucketNo].Records[index])

	// Unchanged id, update in place
	if record.CustomerID == customerID {
		D.buckets[bucketNo].Records[index] = record
		return
	}

	err = D.ValidateIDExcluding(record.CustomerID, customerID)
	if err != nil {
		record = Record{}
		return
	}

	// Check the new bucket before anything is unlinked from the old one
	_, err = D.BucketNo(record.CustomerID)
	if err != nil {
		record = Record{}
		return
	}

	// Rehash, the count drops by one in Delete so Insert can not hit the max records limit
	_, err = D.Delete(customerID)
	if err != nil {
		record = Record{}
		return
	}
	err = D.Insert(record)
	if err != nil {
		record = Record{}
		return
	}

	D.logger.Debug("moved record to new customer id",
		zap.Int32("from_customer_id", customerID),
		zap.Int32("to_customer_id", record.CustomerID))

	return
}

// locate - Returns bucket number and chain index of the first record matching customer id.
// It returns an error of type NoRecordFound if there is no match.
func (D *Directory) locate(customerID int32) (bucketNo int64, index int, err error) {
	bucketNo, err = D.BucketNo(customerID)
	if err != nil {
		return
	}

	for i, r := range D.buckets[bucketNo].Records {
		if r.CustomerID == customerID {
			index = i
			return
		}
	}

	err = NoRecordFound{}
	return
}

// validateID - Checks candidate id for being positive and not already held. If exclude is set the first record
// holding currentID, that is the one Search returns, is not counted.
func (D *Directory) validateID(candidateID, currentID int32, exclude bool) (err error) {
	if candidateID <= 0 {
		err = MalformedID{}
		return
	}

	bucketNo, err := D.BucketNo(candidateID)
	if err != nil {
		return
	}

	skip := exclude && candidateID == currentID
	for _, r := range D.buckets[bucketNo].Records {
		if r.CustomerID != candidateID {
			continue
		}
		if skip {
			skip = false
			continue
		}
		err = DuplicateID{}
		return
	}

	return
}
