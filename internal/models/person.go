package models

// Person represents a customer. Rows are provisioned externally; the API only
// reads them and references them from orders.
type Person struct {
	ID      int    `json:"id" gorm:"primaryKey"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Address string `json:"address"`
}

// TableName keeps the original schema name
func (Person) TableName() string {
	return "person"
}
