package model

import (
	"time"

	"gorm.io/gorm"
)

// Attribute is the shared shape of the vehicle reference entities (fuels,
// marks, types, transmissions). The concrete models embed it so generic
// repositories and services can work across all four.
type Attribute struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:255;not null;index"`
	Description string         `json:"description" gorm:"size:1024;not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// Attr gives generic code access to the embedded attribute fields.
func (a *Attribute) Attr() *Attribute { return a }

// AttributePtr constrains a pointer to a model embedding Attribute.
type AttributePtr[T any] interface {
	*T
	Attr() *Attribute
}

// Fuel is a fuel kind a product can use (petrol, diesel, electric, ...).
type Fuel struct {
	Attribute
}

// Mark is a vehicle brand.
type Mark struct {
	Attribute
}

// Transmission is a gearbox kind.
type Transmission struct {
	Attribute
}

// VehicleType is a body/category kind (SUV, sedan, ...).
type VehicleType struct {
	Attribute
}

// TableName keeps the historical table name for vehicle types.
func (VehicleType) TableName() string { return "types" }
