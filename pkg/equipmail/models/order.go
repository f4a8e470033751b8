package models

import "strings"

// OrderStatus is the free-text status column of the order log. Values other
// than the constants below are kept as written.
type OrderStatus string

const (
	StatusOrdered   OrderStatus = "Ordered"
	StatusDelivered OrderStatus = "Delivered"
	StatusReceived  OrderStatus = "Received"
	StatusCancelled OrderStatus = "Cancelled"
)

// OrderRow represents one data row of the purchase-order log.
type OrderRow struct {
	// EntryDate is the displayed entry timestamp. Blank marks a non-row.
	EntryDate string `json:"entry_date"`
	// UndeliveredDays is the number of days since ordering without delivery.
	UndeliveredDays int `json:"undelivered_days"`
	// OrderDate is the displayed order date.
	OrderDate string `json:"order_date"`
	// DeliveryDate is the displayed delivery date, blank when unknown.
	DeliveryDate string `json:"delivery_date"`
	// ForWhom is the employee the order is for.
	ForWhom string `json:"for_whom"`
	// Amount is the numeric order amount.
	Amount float64 `json:"amount"`
	// AmountText is the amount as displayed in the sheet.
	AmountText string `json:"amount_text"`
	// Description is the ordered item description.
	Description string `json:"description"`
	// Supplier is the supplier name.
	Supplier string `json:"supplier"`
	// Status is the order status as written in the sheet.
	Status OrderStatus `json:"status"`
	// Row is the 1-based sheet row number the record came from.
	Row int `json:"row"`
}

// HasEntryDate reports whether the row carries an entry date.
func (o OrderRow) HasEntryDate() bool {
	return strings.TrimSpace(o.EntryDate) != ""
}

// HasDeliveryDate reports whether the row carries a delivery date.
func (o OrderRow) HasDeliveryDate() bool {
	return strings.TrimSpace(o.DeliveryDate) != ""
}
