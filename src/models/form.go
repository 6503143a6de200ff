package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Form แบบฟอร์มที่ผู้ดูแลสร้าง (มีเวอร์ชัน)
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Fields      []FieldSpec        `bson:"fields" json:"fields"`
	Version     int                `bson:"version" json:"version"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	IsDeleted   bool               `bson:"isDeleted" json:"isDeleted"`
	DeletedAt   *time.Time         `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FormSnapshot สำเนาของฟอร์ม ณ เวลาที่ส่งคำตอบ
type FormSnapshot struct {
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description" json:"description"`
	Fields      []FieldSpec `bson:"fields" json:"fields"`
}

// FormListFilter ตัวกรองรายการฟอร์ม
type FormListFilter struct {
	ActiveOnly     bool `query:"activeOnly"`
	IncludeDeleted bool `query:"includeDeleted"`
}

// RawFieldList is the author's field array before schema building.
type RawFieldList = json.RawMessage

// CreateFormRequest payload สำหรับสร้างฟอร์ม; Fields ยังเป็น JSON ดิบให้ schema builder จัดการ
type CreateFormRequest struct {
	Title       string       `json:"title" validate:"required,max=200"`
	Description string       `json:"description" validate:"max=1000"`
	Fields      RawFieldList `json:"fields" swaggertype:"array,object"`
}

// UpdateFormRequest partial update; nil means "leave unchanged".
type UpdateFormRequest struct {
	Title       *string      `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string      `json:"description" validate:"omitempty,max=1000"`
	IsActive    *bool        `json:"isActive"`
	Fields      RawFieldList `json:"fields" swaggertype:"array,object"`
}
