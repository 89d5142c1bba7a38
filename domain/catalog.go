package domain

import "time"

type Product struct {
	ID               int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Description      string    `gorm:"type:text" json:"description"`
	Price            float64   `gorm:"type:decimal(18,2);not null" json:"price"`
	Stock            int       `gorm:"not null" json:"stock"`
	AgeGroup         string    `gorm:"type:varchar(50)" json:"age_group"`
	Category         string    `gorm:"type:varchar(100);index" json:"category"`
	ImageURL         *string   `gorm:"type:text" json:"image_url,omitempty"`
	IsExpertApproved bool      `gorm:"not null" json:"is_expert_approved"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type BlogStatus string

const (
	BlogDraft     BlogStatus = "draft"
	BlogPublished BlogStatus = "published"
)

type BlogPost struct {
	ID        int        `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID  int        `gorm:"not null;index" json:"author_id"`
	Author    *User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Category  string     `gorm:"type:varchar(100)" json:"category"`
	ImageURL  *string    `gorm:"type:text" json:"image_url,omitempty"`
	Status    BlogStatus `gorm:"type:varchar(16);not null;check:status IN ('draft','published')" json:"status"`
	Views     int        `gorm:"not null" json:"views"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
