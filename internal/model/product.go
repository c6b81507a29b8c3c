package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog vehicle. The foreign key columns keep the id_* names
// the list endpoints filter on.
type Product struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"size:255;not null;index"`
	Description    string          `json:"description" gorm:"size:2048;not null"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Seat           int             `json:"seat" gorm:"not null"`
	Image          string          `json:"image" gorm:"size:512"`
	FuelID         uint            `json:"id_fuel" gorm:"column:id_fuel;not null;index"`
	MarkID         uint            `json:"id_mark" gorm:"column:id_mark;not null;index"`
	TypeID         uint            `json:"id_type" gorm:"column:id_type;not null;index"`
	TransmissionID uint            `json:"id_transmission" gorm:"column:id_transmission;not null;index"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Fuel         *Fuel         `json:"fuel,omitempty" gorm:"foreignKey:FuelID"`
	Mark         *Mark         `json:"mark,omitempty" gorm:"foreignKey:MarkID"`
	Type         *VehicleType  `json:"type,omitempty" gorm:"foreignKey:TypeID"`
	Transmission *Transmission `json:"transmission,omitempty" gorm:"foreignKey:TransmissionID"`
}
