package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Error   string `json:"error"`             // รายละเอียดของ Error
	Details string `json:"details,omitempty"` // แสดงเฉพาะ development
}

// ValidationErrorResponse รายการปัญหาทั้งหมดในครั้งเดียว
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
