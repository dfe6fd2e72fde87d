package conf

// DefaultNumberOfBuckets - Number of buckets in a directory when nothing else is configured
const DefaultNumberOfBuckets int64 = 1000

// DefaultMaxRecords - Max number of records a directory accepts when nothing else is configured
const DefaultMaxRecords int64 = 1000

// CountLength - Length of the leading record count in a data file - 4 bytes
const CountLength int64 = 4

// NumericLength - Length of every numeric field (int32 or float32) in a record block - 4 bytes
const NumericLength int64 = 4

// DateSlotLength - Length of the order date slot, 10 characters plus terminator
const DateSlotLength int64 = 11

// TimeSlotLength - Length of the order time slot, 8 characters plus terminator
const TimeSlotLength int64 = 9

// TextSlotLength - Length of each short text slot, 29 characters plus terminator
const TextSlotLength int64 = 30

// OrderDateOffset - Record block offset to the order date - 11 bytes
const OrderDateOffset int64 = 0

// OrderTimeOffset - Record block offset to the order time - 9 bytes
const OrderTimeOffset int64 = 11

// AgingOffset - Record block offset to aging - 4 bytes float
const AgingOffset int64 = 20

// CustomerIDOffset - Record block offset to the customer id - 4 bytes int
const CustomerIDOffset int64 = 24

// GenderOffset - Record block offset to gender - 30 bytes
const GenderOffset int64 = 28

// DeviceTypeOffset - Record block offset to device type - 30 bytes
const DeviceTypeOffset int64 = 58

// LoginTypeOffset - Record block offset to customer login type - 30 bytes
const LoginTypeOffset int64 = 88

// ProductCategoryOffset - Record block offset to product category - 30 bytes
const ProductCategoryOffset int64 = 118

// ProductOffset - Record block offset to product - 30 bytes
const ProductOffset int64 = 148

// SalesOffset - Record block offset to sales - 4 bytes float
const SalesOffset int64 = 178

// QuantityOffset - Record block offset to quantity - 4 bytes int
const QuantityOffset int64 = 182

// DiscountOffset - Record block offset to discount - 4 bytes float
const DiscountOffset int64 = 186

// ProfitOffset - Record block offset to profit - 4 bytes float
const ProfitOffset int64 = 190

// ShippingCostOffset - Record block offset to shipping cost - 4 bytes float
const ShippingCostOffset int64 = 194

// OrderPriorityOffset - Record block offset to order priority - 30 bytes
const OrderPriorityOffset int64 = 198

// PaymentMethodOffset - Record block offset to payment method - 30 bytes
const PaymentMethodOffset int64 = 228

// RecordLength - Total length of one record block
const RecordLength int64 = 258
