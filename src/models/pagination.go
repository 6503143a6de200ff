package models

import "math"

// PaginationParams ใช้เก็บค่าการแบ่งหน้า, ค้นหา และเรียงลำดับ
type PaginationParams struct {
	Page      int    `json:"page" query:"page" example:"1"`                // หมายเลขหน้าที่ต้องการ
	Limit     int    `json:"limit" query:"limit" example:"10"`             // จำนวนรายการต่อหน้า
	Search    string `json:"search" query:"search" example:""`             // คำค้นหา (Optional)
	SortBy    string `json:"sortBy" query:"sortBy" example:"submittedAt"`  // ฟิลด์ที่ใช้เรียงลำดับ
	SortOrder string `json:"sortOrder" query:"sortOrder" example:"desc"`   // ทิศทางการเรียง (asc/desc)
}

// Pagination ข้อมูลการแบ่งหน้าที่ส่งกลับ
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// DefaultPagination ค่าตั้งต้นสำหรับ Pagination
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:      1,
		Limit:     10,
		Search:    "",
		SortBy:    "submittedAt",
		SortOrder: "desc",
	}
}

// Normalize เติมค่าเริ่มต้นให้ค่าที่ไม่ได้ส่งมาหรือไม่ถูกต้อง
func (p *PaginationParams) Normalize() {
	def := DefaultPagination()
	if p.Page < 1 {
		p.Page = def.Page
	}
	if p.Limit < 1 {
		p.Limit = def.Limit
	}
	if p.SortBy == "" {
		p.SortBy = def.SortBy
	}
	if p.SortOrder != "asc" {
		p.SortOrder = def.SortOrder
	}
}

// NewPagination สร้างข้อมูลการแบ่งหน้า
func NewPagination(total int64, params PaginationParams) Pagination {
	pages := 0
	if params.Limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}
	return Pagination{
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
		Pages: pages,
	}
}

// GetSkip คำนวณจำนวนรายการที่ต้องข้าม
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// GetSortOrder 1 = asc, -1 = desc
func (p *PaginationParams) GetSortOrder() int {
	if p.SortOrder == "asc" {
		return 1
	}
	return -1
}
