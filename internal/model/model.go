package model

// Record - Represents one sales transaction. It carries no identity beyond CustomerID and is copied
// by value into and out of a directory.
//   - OrderDate is the calendar date formatted as YYYY-MM-DD
//   - OrderTime is the time of day formatted as HH:MM:SS
//   - Aging is a non-negative number of days
//   - CustomerID is the positive key that is unique within a directory
//   - Sales, ShippingCost are non-negative amounts, Profit may be negative
//   - Quantity is at least 1 and Discount lies in [0,1]
type Record struct {
	OrderDate       string  `yaml:"order_date"`
	OrderTime       string  `yaml:"order_time"`
	Aging           float32 `yaml:"aging"`
	CustomerID      int32   `yaml:"customer_id"`
	Gender          string  `yaml:"gender"`
	DeviceType      string  `yaml:"device_type"`
	LoginType       string  `yaml:"login_type"`
	ProductCategory string  `yaml:"product_category"`
	Product         string  `yaml:"product"`
	Sales           float32 `yaml:"sales"`
	Quantity        int32   `yaml:"quantity"`
	Discount        float32 `yaml:"discount"`
	Profit          float32 `yaml:"profit"`
	ShippingCost    float32 `yaml:"shipping_cost"`
	OrderPriority   string  `yaml:"order_priority"`
	PaymentMethod   string  `yaml:"payment_method"`
}

// Bucket - Represents one chain of records, most recently inserted first
type Bucket struct {
	Records []Record
}

// StorageParameters - Represents the parameters a directory was created with
type StorageParameters struct {
	NumberOfBuckets   int64
	MaxRecords        int64
	InternalAlgorithm bool
}
