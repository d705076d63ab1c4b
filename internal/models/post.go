package models

type Post struct {
	BaseModel
	UserID  string `gorm:"type:uuid;not null;index" json:"user_id"`
	Title   string `gorm:"type:varchar(35);not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	Likes   int    `gorm:"default:0" json:"likes"`
	Image   string `json:"image"`

	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

type Comment struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	PostID string `gorm:"type:uuid;not null;index" json:"post_id"`
	Text   string `gorm:"type:text;not null" json:"text"`
}
