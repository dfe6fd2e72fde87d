package salesdirectory

// RecordUpdate - Holds the fields to change in a call to Modify. A nil field keeps the current value.
type RecordUpdate struct {
	OrderDate       *string
	OrderTime       *string
	Aging           *float32
	CustomerID      *int32
	Gender          *string
	DeviceType      *string
	LoginType       *string
	ProductCategory *string
	Product         *string
	Sales           *float32
	Quantity        *int32
	Discount        *float32
	Profit          *float32
	ShippingCost    *float32
	OrderPriority   *string
	PaymentMethod   *string
}

// Apply - Returns a copy of record with every non nil field of the update set
func (U RecordUpdate) Apply(record Record) Record {
	setIf(&record.OrderDate, U.OrderDate)
	setIf(&record.OrderTime, U.OrderTime)
	setIf(&record.Aging, U.Aging)
	setIf(&record.CustomerID, U.CustomerID)
	setIf(&record.Gender, U.Gender)
	setIf(&record.DeviceType, U.DeviceType)
	setIf(&record.LoginType, U.LoginType)
	setIf(&record.ProductCategory, U.ProductCategory)
	setIf(&record.Product, U.Product)
	setIf(&record.Sales, U.Sales)
	setIf(&record.Quantity, U.Quantity)
	setIf(&record.Discount, U.Discount)
	setIf(&record.Profit, U.Profit)
	setIf(&record.ShippingCost, U.ShippingCost)
	setIf(&record.OrderPriority, U.OrderPriority)
	setIf(&record.PaymentMethod, U.PaymentMethod)

	return record
}

// IsEmpty - Returns true if the update changes nothing
func (U RecordUpdate) IsEmpty() bool {
	return U == RecordUpdate{}
}

func setIf[T any](field *T, value *T) {
	if value != nil {
		*field = *value
	}
}
