package model

// GovernorateModel mirrors the 'governorates' reference table.
// Rows are seeded by migration and never written by the application.
type GovernorateModel struct {
	ID     int    `gorm:"primary_key"`
	NameEn string `gorm:"type:varchar(100);not null"`
	NameAr string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (GovernorateModel) TableName() string {
	return "governorates"
}

// CityModel mirrors the 'cities' reference table. Each city belongs to exactly
// one governorate.
type CityModel struct {
	ID            int    `gorm:"primary_key"`
	GovernorateID int    `gorm:"not null;index"`
	NameEn        string `gorm:"type:varchar(100);not null"`
	NameAr        string `gorm:"type:varchar(100);not null"`

	Governorate *GovernorateModel `gorm:"foreignKey:GovernorateID"`
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}
