package salesdirectory

import (
	"fmt"
	"github.com/gostonefire/salesdirectory/hashfunc"
	"github.com/gostonefire/salesdirectory/internal/conf"
	"github.com/gostonefire/salesdirectory/internal/hash"
	"github.com/gostonefire/salesdirectory/internal/model"
	"go.uber.org/zap"
)

// Record - A sales transaction record keyed by its CustomerID
type Record = model.Record

// Conf - Is a struct to be passed in the call to NewDirectory and contains configuration for the directory.
//   - NumberOfBuckets is the fixed number of buckets, zero gives the default of 1000
//   - MaxRecords is the max number of records the directory will hold regardless of buckets, zero gives the default of 1000
//   - HashAlgorithm is an optional custom bucket algorithm, nil gives customerID mod NumberOfBuckets. Its table size after SetTableSize becomes the number of buckets
//   - Logger is an optional zap logger, nil discards all logging
type Conf struct {
	NumberOfBuckets int64
	MaxRecords      int64
	HashAlgorithm   hashfunc.HashAlgorithm
	Logger          *zap.Logger
}

// DirectoryStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the most populated bucket
//   - BucketDistribution is the number of records stored in each bucket
type DirectoryStat struct {
	Records            int64
	UsedBuckets        int64
	LongestChain       int64
	BucketDistribution []int64
}

// Directory - The main implementation struct, a fixed bucket count hash table with chained collision resolution
type Directory struct {
	buckets           []model.Bucket
	count             int64
	maxRecords        int64
	numberOfBuckets   int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	logger            *zap.Logger
}

// NewDirectory - Returns a new empty directory.
//   - dirConf is a Conf struct, its zero value gives a directory with default settings
//
// It returns:
//   - directory is a pointer to a Directory struct
//   - err is a normal go Error which should be nil if everything went ok
func NewDirectory(dirConf Conf) (directory *Directory, err error) {
	if dirConf.NumberOfBuckets == 0 {
		dirConf.NumberOfBuckets = conf.DefaultNumberOfBuckets
	}
	if dirConf.MaxRecords == 0 {
		dirConf.MaxRecords = conf.DefaultMaxRecords
	}

	// Check if number of buckets is valid
	if dirConf.NumberOfBuckets < 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}

	// Check if max records is valid
	if dirConf.MaxRecords < 0 {
		err = fmt.Errorf("max records must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if dirConf.HashAlgorithm == nil {
		dirConf.HashAlgorithm = hash.NewModuloHashAlgorithm(dirConf.NumberOfBuckets)
		internalAlg = true
	} else {
		dirConf.HashAlgorithm.SetTableSize(dirConf.NumberOfBuckets)
	}

	// The algorithm decides the table size it addresses, buckets follow it
	dirConf.NumberOfBuckets = dirConf.HashAlgorithm.GetTableSize()
	if dirConf.NumberOfBuckets <= 0 {
		err = fmt.Errorf("table size from hash algorithm must be a positive value higher than 0 (zero)")
		return
	}

	if dirConf.Logger == nil {
		dirConf.Logger = zap.NewNop()
	}

	directory = &Directory{
		buckets:           make([]model.Bucket, dirConf.NumberOfBuckets),
		maxRecords:        dirConf.MaxRecords,
		numberOfBuckets:   dirConf.NumberOfBuckets,
		hashAlgorithm:     dirConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
		logger:            dirConf.Logger,
	}

	return
}

// NewSeededDirectory - Returns a new directory populated with the records from DefaultRecords.
// It is the fallback used when no data file could be loaded.
func NewSeededDirectory(dirConf Conf) (directory *Directory, err error) {
	directory, err = NewDirectory(dirConf)
	if err != nil {
		return
	}

	for _, record := range DefaultRecords() {
		if directory.count >= directory.maxRecords {
			break
		}
		err = directory.Insert(record)
		if err != nil {
			directory = nil
			return
		}
	}

	return
}

// Count - Returns the number of records in the directory
func (D *Directory) Count() int64 {
	return D.count
}

// NumberOfBuckets - Returns the fixed number of buckets
func (D *Directory) NumberOfBuckets() int64 {
	return D.numberOfBuckets
}

// MaxRecords - Returns the max number of records the directory will hold
func (D *Directory) MaxRecords() int64 {
	return D.maxRecords
}

// GetStorageParameters - Returns a struct with the parameters the directory was created with
func (D *Directory) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBuckets:   D.numberOfBuckets,
		MaxRecords:        D.maxRecords,
		InternalAlgorithm: D.internalAlgorithm,
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a DirectoryStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set DirectoryStat.BucketDistribution to nil.
func (D *Directory) Stat(includeDistribution bool) (directoryStat *DirectoryStat) {
	var ds DirectoryStat

	if includeDistribution {
		ds.BucketDistribution = make([]int64, D.numberOfBuckets)
	}

	for i, bucket := range D.buckets {
		n := int64(len(bucket.Records))
		if n == 0 {
			continue
		}
		ds.Records += n
		ds.UsedBuckets++
		if n > ds.LongestChain {
			ds.LongestChain = n
		}
		if includeDistribution {
			ds.BucketDistribution[i] = n
		}
	}

	directoryStat = &ds
	return
}

// Release - Drops every chain and resets the count. The directory is empty but still usable afterwards.
func (D *Directory) Release() {
	for i := range D.buckets {
		D.buckets[i].Records = nil
	}
	D.count = 0

	D.logger.Debug("released directory")
}
