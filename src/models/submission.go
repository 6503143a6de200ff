package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Answer คำตอบหนึ่งรายการ {name, value}
type Answer struct {
	Name  string      `bson:"name" json:"name"`
	Value interface{} `bson:"value" json:"value"`
}

// Submission คำตอบที่ส่งแล้ว (ไม่ถูกแก้ไขหลังสร้าง)
//
// FormSnapshot, not the live form, is the schema used to interpret Answers later.
type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID       primitive.ObjectID `bson:"formId" json:"formId"`
	FormVersion  int                `bson:"formVersion" json:"formVersion"`
	FormSnapshot FormSnapshot       `bson:"formSnapshot" json:"formSnapshot"`
	Answers      []Answer           `bson:"answers" json:"answers"`
	SubmittedAt  time.Time          `bson:"submittedAt" json:"submittedAt"`
	IP           string             `bson:"ip" json:"ip"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SubmissionListItem แถวในรายการคำตอบ พร้อมชื่อฟอร์มปัจจุบัน
type SubmissionListItem struct {
	Submission `bson:",inline"`
	FormTitle  string `bson:"formTitle,omitempty" json:"formTitle,omitempty"`
}

// SubmissionDetail คำตอบหนึ่งรายการพร้อมฟอร์มปัจจุบัน (อาจไม่มีถ้าฟอร์มถูกลบถาวร)
type SubmissionDetail struct {
	Submission `bson:",inline"`
	Form       *Form `bson:"form,omitempty" json:"form"`
}

// SubmitRequest payload แบบ JSON สำหรับส่งคำตอบ
type SubmitRequest struct {
	FormID  string   `json:"formId" form:"formId" validate:"required"`
	Answers []Answer `json:"answers"`
}

// SubmissionQuery พารามิเตอร์ค้นหาคำตอบ
type SubmissionQuery struct {
	PaginationParams
	FormID   string `query:"formId"`
	DateFrom string `query:"dateFrom"`
	DateTo   string `query:"dateTo"`
}
