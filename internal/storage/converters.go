package storage

import (
	"encoding/binary"
	"fmt"
	"github.com/gostonefire/salesdirectory/internal/conf"
	"github.com/gostonefire/salesdirectory/internal/model"
	"github.com/gostonefire/salesdirectory/internal/utils"
	"math"
)

// CountToBytes - Converts a record count to the leading bytes of a data file
func CountToBytes(count int64) (buf []byte) {
	buf = make([]byte, conf.CountLength)
	binary.LittleEndian.PutUint32(buf, uint32(int32(count)))

	return
}

// BytesToCount - Converts the leading bytes of a data file to a record count
func BytesToCount(buf []byte) (count int64, err error) {
	if int64(len(buf)) < conf.CountLength {
		err = fmt.Errorf("length of data in buf (%d) less than count size (%d)", len(buf), conf.CountLength)
		return
	}

	count = int64(int32(binary.LittleEndian.Uint32(buf)))
	if count < 0 {
		err = fmt.Errorf("negative record count (%d)", count)
	}

	return
}

// RecordToBytes - Converts a Record struct to a fixed width record block
func RecordToBytes(record model.Record) (buf []byte) {
	buf = make([]byte, conf.RecordLength)

	putText(buf, conf.OrderDateOffset, conf.DateSlotLength, record.OrderDate)
	putText(buf, conf.OrderTimeOffset, conf.TimeSlotLength, record.OrderTime)
	putFloat(buf, conf.AgingOffset, record.Aging)
	putInt(buf, conf.CustomerIDOffset, record.CustomerID)
	putText(buf, conf.GenderOffset, conf.TextSlotLength, record.Gender)
	putText(buf, conf.DeviceTypeOffset, conf.TextSlotLength, record.DeviceType)
	putText(buf, conf.LoginTypeOffset, conf.TextSlotLength, record.LoginType)
	putText(buf, conf.ProductCategoryOffset, conf.TextSlotLength, record.ProductCategory)
	putText(buf, conf.ProductOffset, conf.TextSlotLength, record.Product)
	putFloat(buf, conf.SalesOffset, record.Sales)
	putInt(buf, conf.QuantityOffset, record.Quantity)
	putFloat(buf, conf.DiscountOffset, record.Discount)
	putFloat(buf, conf.ProfitOffset, record.Profit)
	putFloat(buf, conf.ShippingCostOffset, record.ShippingCost)
	putText(buf, conf.OrderPriorityOffset, conf.TextSlotLength, record.OrderPriority)
	putText(buf, conf.PaymentMethodOffset, conf.TextSlotLength, record.PaymentMethod)

	return
}

// BytesToRecord - Converts a fixed width record block to a Record struct
func BytesToRecord(buf []byte) (record model.Record, err error) {
	actual := int64(len(buf))
	if actual < conf.RecordLength {
		err = fmt.Errorf("length of data in buf (%d) less than record size (%d)", actual, conf.RecordLength)
		return
	}

	record = model.Record{
		OrderDate:       getText(buf, conf.OrderDateOffset, conf.DateSlotLength),
		OrderTime:       getText(buf, conf.OrderTimeOffset, conf.TimeSlotLength),
		Aging:           getFloat(buf, conf.AgingOffset),
		CustomerID:      getInt(buf, conf.CustomerIDOffset),
		Gender:          getText(buf, conf.GenderOffset, conf.TextSlotLength),
		DeviceType:      getText(buf, conf.DeviceTypeOffset, conf.TextSlotLength),
		LoginType:       getText(buf, conf.LoginTypeOffset, conf.TextSlotLength),
		ProductCategory: getText(buf, conf.ProductCategoryOffset, conf.TextSlotLength),
		Product:         getText(buf, conf.ProductOffset, conf.TextSlotLength),
		Sales:           getFloat(buf, conf.SalesOffset),
		Quantity:        getInt(buf, conf.QuantityOffset),
		Discount:        getFloat(buf, conf.DiscountOffset),
		Profit:          getFloat(buf, conf.ProfitOffset),
		ShippingCost:    getFloat(buf, conf.ShippingCostOffset),
		OrderPriority:   getText(buf, conf.OrderPriorityOffset, conf.TextSlotLength),
		PaymentMethod:   getText(buf, conf.PaymentMethodOffset, conf.TextSlotLength),
	}

	return
}

func putText(buf []byte, offset, slotLength int64, s string) {
	_ = copy(buf[offset:offset+slotLength], utils.StringToSlot(s, slotLength))
}

func getText(buf []byte, offset, slotLength int64) string {
	return utils.SlotToString(buf[offset : offset+slotLength])
}

func putFloat(buf []byte, offset int64, f float32) {
	binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(f))
}

func getFloat(buf []byte, offset int64) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func putInt(buf []byte, offset int64, i int32) {
	binary.LittleEndian.PutUint32(buf[offset:], uint32(i))
}

func getInt(buf []byte, offset int64) int32 {
	return int32(binary.LittleEndian.Uint32(buf[offset:]))
}
