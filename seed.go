package salesdirectory

// DefaultRecords - Returns the sample records a directory is seeded with when no data file could be loaded
func DefaultRecords() []Record {
	return []Record{
		{
			OrderDate: "2023-01-15", OrderTime: "10:30:00", Aging: 5.0, CustomerID: 1001,
			Gender: "Male", DeviceType: "Mobile", LoginType: "Member", ProductCategory: "Electronics", Product: "Smartphone",
			Sales: 599.99, Quantity: 1, Discount: 0.1, Profit: 150.0, ShippingCost: 5.99,
			OrderPriority: "High", PaymentMethod: "Credit",
		},
		{
			OrderDate: "2023-02-20", OrderTime: "14:45:30", Aging: 3.0, CustomerID: 1002,
			Gender: "Female", DeviceType: "Desktop", LoginType: "Guest", ProductCategory: "Clothing", Product: "T-Shirt",
			Sales: 24.99, Quantity: 2, Discount: 0.0, Profit: 10.0, ShippingCost: 2.99,
			OrderPriority: "Medium", PaymentMethod: "PayPal",
		},
		{
			OrderDate: "2023-03-10", OrderTime: "09:15:22", Aging: 7.0, CustomerID: 1003,
			Gender: "Male", DeviceType: "Tablet", LoginType: "Member", ProductCategory: "Books", Product: "Novel",
			Sales: 12.50, Quantity: 1, Discount: 0.15, Profit: 3.75, ShippingCost: 0.0,
			OrderPriority: "Low", PaymentMethod: "Credit",
		},
		{
			OrderDate: "2023-04-05", OrderTime: "16:20:45", Aging: 2.0, CustomerID: 1004,
			Gender: "Female", DeviceType: "Mobile", LoginType: "Guest", ProductCategory: "Home", Product: "Blender",
			Sales: 45.99, Quantity: 1, Discount: 0.2, Profit: 9.20, ShippingCost: 4.99,
			OrderPriority: "Medium", PaymentMethod: "Debit",
		},
		{
			OrderDate: "2023-05-12", OrderTime: "11:10:33", Aging: 1.0, CustomerID: 1005,
			Gender: "Male", DeviceType: "Desktop", LoginType: "Member", ProductCategory: "Electronics", Product: "Headphones",
			Sales: 89.99, Quantity: 1, Discount: 0.05, Profit: 22.50, ShippingCost: 0.0,
			OrderPriority: "High", PaymentMethod: "Credit",
		},
	}
}
