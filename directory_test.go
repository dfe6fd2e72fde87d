//go:build unit

package salesdirectory

import (
	"github.com/gostonefire/salesdirectory/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// testRecord - Returns a record with the given customer id and otherwise fixed field values
func testRecord(customerID int32) Record {
	return Record{
		OrderDate:       "2023-06-01",
		OrderTime:       "12:00:00",
		Aging:           4.0,
		CustomerID:      customerID,
		Gender:          "Female",
		DeviceType:      "Mobile",
		LoginType:       "Member",
		ProductCategory: "Books",
		Product:         "Atlas",
		Sales:           30.5,
		Quantity:        2,
		Discount:        0.25,
		Profit:          -2.5,
		ShippingCost:    3.0,
		OrderPriority:   "Low",
		PaymentMethod:   "Debit",
	}
}

// fixedSizeHash - A custom hash algorithm that keeps its own table size
type fixedSizeHash struct {
	tableSize int64
}

func (F *fixedSizeHash) SetTableSize(int64)              {}
func (F *fixedSizeHash) HashFunc1(customerID int32) int64 { return int64(customerID) % F.tableSize }
func (F *fixedSizeHash) GetTableSize() int64              { return F.tableSize }

// newTestDirectory - Returns an empty directory with the given buckets and max records
func newTestDirectory(t *testing.T, buckets, maxRecords int64) *Directory {
	d, err := NewDirectory(Conf{NumberOfBuckets: buckets, MaxRecords: maxRecords})
	require.NoError(t, err, "creates directory")
	return d
}

func TestNewDirectory(t *testing.T) {
	t.Run("creates an empty directory with defaults", func(t *testing.T) {
		// Execute
		d, err := NewDirectory(Conf{})

		// Check
		assert.NoError(t, err, "creates directory")
		assert.Equal(t, int64(0), d.Count(), "no records")
		assert.Equal(t, int64(1000), d.NumberOfBuckets(), "default buckets")
		assert.Equal(t, int64(1000), d.MaxRecords(), "default max records")
		assert.Len(t, d.buckets, 1000, "all buckets allocated")
		assert.True(t, d.GetStorageParameters().InternalAlgorithm, "internal hash algorithm")
		assert.NotNil(t, d.logger, "has a logger")
	})

	t.Run("uses a custom hash algorithm", func(t *testing.T) {
		// Prepare
		ha := hash.NewModuloHashAlgorithm(3)

		// Execute
		d, err := NewDirectory(Conf{NumberOfBuckets: 10, HashAlgorithm: ha})

		// Check
		assert.NoError(t, err, "creates directory")
		assert.Equal(t, int64(10), ha.GetTableSize(), "table size set from directory")
		assert.False(t, d.GetStorageParameters().InternalAlgorithm, "custom hash algorithm")
	})

	t.Run("takes number of buckets from the hash algorithm", func(t *testing.T) {
		// Prepare
		ha := &fixedSizeHash{tableSize: 7}

		// Execute
		d, err := NewDirectory(Conf{NumberOfBuckets: 10, HashAlgorithm: ha})

		// Check
		require.NoError(t, err, "creates directory")
		assert.Equal(t, int64(7), d.NumberOfBuckets(), "buckets from algorithm")
		assert.Len(t, d.buckets, 7, "buckets allocated to match")
		assert.Equal(t, int64(7), d.GetStorageParameters().NumberOfBuckets, "parameters follow algorithm")
		require.NoError(t, d.Insert(testRecord(13)), "inserts record")
		_, err = d.Search(13)
		assert.NoError(t, err, "finds record")
	})

	t.Run("error when hash algorithm has no table size", func(t *testing.T) {
		// Execute
		_, err := NewDirectory(Conf{HashAlgorithm: &fixedSizeHash{}})

		// Check
		assert.Error(t, err)
	})

	t.Run("error when supplying invalid number of buckets", func(t *testing.T) {
		// Execute
		_, err := NewDirectory(Conf{NumberOfBuckets: -1})

		// Check
		assert.Error(t, err)
	})

	t.Run("error when supplying invalid max records", func(t *testing.T) {
		// Execute
		_, err := NewDirectory(Conf{MaxRecords: -5})

		// Check
		assert.Error(t, err)
	})
}

func TestNewSeededDirectory(t *testing.T) {
	t.Run("creates a directory holding the default records", func(t *testing.T) {
		// Execute
		d, err := NewSeededDirectory(Conf{})

		// Check
		assert.NoError(t, err, "creates seeded directory")
		assert.Equal(t, int64(5), d.Count(), "five default records")
		for _, r := range DefaultRecords() {
			found, err := d.Search(r.CustomerID)
			assert.NoErrorf(t, err, "finds default record %d", r.CustomerID)
			assert.Equal(t, r, found, "record preserved")
		}
	})

	t.Run("stops seeding at max records", func(t *testing.T) {
		// Execute
		d, err := NewSeededDirectory(Conf{MaxRecords: 3})

		// Check
		assert.NoError(t, err, "creates seeded directory")
		assert.Equal(t, int64(3), d.Count(), "seeded up to max records")
	})
}

func TestDirectory_Stat(t *testing.T) {
	t.Run("gets statistics with distribution", func(t *testing.T) {
		// Prepare
		d := newTestDirectory(t, 10, 100)
		for _, id := range []int32{1, 11, 21, 2, 5} {
			require.NoError(t, d.Insert(testRecord(id)), "inserts record")
		}

		// Execute
		stat := d.Stat(true)

		// Check
		assert.Equal(t, int64(5), stat.Records, "number of records")
		assert.Equal(t, int64(3), stat.UsedBuckets, "number of used buckets")
		assert.Equal(t, int64(3), stat.LongestChain, "longest chain")
		assert.Equal(t, []int64{0, 3, 1, 0, 0, 1, 0, 0, 0, 0}, stat.BucketDistribution, "distribution")
	})

	t.Run("gets statistics without distribution", func(t *testing.T) {
		// Prepare
		d := newTestDirectory(t, 10, 100)

		// Execute
		stat := d.Stat(false)

		// Check
		assert.Equal(t, int64(0), stat.Records, "no records")
		assert.Nil(t, stat.BucketDistribution, "no distribution")
	})
}

func TestDirectory_Release(t *testing.T) {
	t.Run("releases all records", func(t *testing.T) {
		// Prepare
		d, err := NewSeededDirectory(Conf{})
		require.NoError(t, err, "creates seeded directory")

		// Execute
		d.Release()

		// Check
		assert.Equal(t, int64(0), d.Count(), "no records")
		assert.False(t, d.Iterator().HasNext(), "nothing to iterate")
		_, err = d.Search(1001)
		assert.ErrorIs(t, err, NoRecordFound{}, "record gone")

		err = d.Insert(testRecord(7))
		assert.NoError(t, err, "directory still usable")
	})
}
