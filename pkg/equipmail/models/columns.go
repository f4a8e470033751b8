package models

// LaptopColumns maps laptop fields to 0-based sheet column indexes.
type LaptopColumns struct {
	Width        int `yaml:"width"`
	EmployeeName int `yaml:"employee_name"`
	Model        int `yaml:"model"`
	Age          int `yaml:"age"`
}

// DefaultLaptopColumns returns the standard laptop sheet layout.
func DefaultLaptopColumns() LaptopColumns {
	return LaptopColumns{
		Width:        8,
		EmployeeName: 0,
		Model:        2,
		Age:          7,
	}
}

// Indexes returns every mapped column index.
func (c LaptopColumns) Indexes() []int {
	return []int{c.EmployeeName, c.Model, c.Age}
}

// OrderColumns maps order fields to 0-based sheet column indexes.
type OrderColumns struct {
	Width           int `yaml:"width"`
	EntryDate       int `yaml:"entry_date"`
	UndeliveredDays int `yaml:"undelivered_days"`
	OrderDate       int `yaml:"order_date"`
	DeliveryDate    int `yaml:"delivery_date"`
	ForWhom         int `yaml:"for_whom"`
	Amount          int `yaml:"amount"`
	Description     int `yaml:"description"`
	Supplier        int `yaml:"supplier"`
	Status          int `yaml:"status"`
}

// DefaultOrderColumns returns the standard order log layout.
func DefaultOrderColumns() OrderColumns {
	return OrderColumns{
		Width:           11,
		EntryDate:       0,
		UndeliveredDays: 1,
		OrderDate:       2,
		DeliveryDate:    3,
		ForWhom:         4,
		Amount:          5,
		Description:     7,
		Supplier:        9,
		Status:          10,
	}
}

// Indexes returns every mapped column index.
func (c OrderColumns) Indexes() []int {
	return []int{
		c.EntryDate, c.UndeliveredDays, c.OrderDate, c.DeliveryDate,
		c.ForWhom, c.Amount, c.Description, c.Supplier, c.Status,
	}
}
