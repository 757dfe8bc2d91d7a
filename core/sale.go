package core

import "gorm.io/gorm"

type SaleStatus string

const (
	SaleConfirmed SaleStatus = "CONFIRMED"
	SaleDelivered SaleStatus = "DELIVERED"
	SalePaid      SaleStatus = "PAID"
)

// SaleRecord is a read-only row from the sales ledger, used as the basis of
// variable-pay achievement.
type SaleRecord struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	NetAmount  float64    `gorm:"type:decimal(13,2);not null" json:"netAmount"`
	ClosedByID uint       `gorm:"not null;index:idx_sales_closer_period" json:"closedById"`
	Month      int        `gorm:"not null;index:idx_sales_closer_period" json:"month"`
	Year       int        `gorm:"not null;index:idx_sales_closer_period" json:"year"`
	Status     SaleStatus `gorm:"type:varchar(20);not null" json:"status"`
}

func (SaleRecord) TableName() string {
	return "sale_records"
}

type Holiday struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Date string `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Name string `gorm:"size:120" json:"name"`
}

func (Holiday) TableName() string {
	return "holidays"
}

// AchievedUpfrontSales sums confirmed revenue closed by an employee in a
// month. Only CONFIRMED, DELIVERED and PAID sales count.
func AchievedUpfrontSales(db *gorm.DB, employeeID uint, month, year int) (float64, error) {
	var total float64
	err := db.Model(&SaleRecord{}).
		Where("closed_by_id = ? AND month = ? AND year = ?", employeeID, month, year).
		Where("status IN ?", []SaleStatus{SaleConfirmed, SaleDelivered, SalePaid}).
		Select("COALESCE(SUM(net_amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
