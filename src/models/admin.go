package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminUser ผู้ดูแลระบบ (ผู้สร้างฟอร์ม)
type AdminUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"passwordHash" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AdminCredentials ใช้ทั้ง login และสร้างผู้ดูแลใหม่
type AdminCredentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token ที่ออกให้หลัง login สำเร็จ
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
