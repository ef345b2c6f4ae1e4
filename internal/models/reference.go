package models

// Genre is a static descriptive tag attached to films, many-to-many.
type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// TableName specifies the table name for GORM
func (Genre) TableName() string {
	return "genres"
}

// Mpa is a static MPA content-rating category (G, PG, PG-13, R, NC-17).
type Mpa struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// TableName specifies the table name for GORM
func (Mpa) TableName() string {
	return "mpas"
}
