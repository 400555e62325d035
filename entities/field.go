package entities

import "time"

type Field struct {
	FieldID     uint     `gorm:"primaryKey" json:"field_id"`
	UserID      string   `json:"user_id" gorm:"index"`
	Name        string   `json:"name"`
	AreaHa      float64  `json:"area_ha"`
	SoilTexture string   `json:"soil_texture"` // sandy|loamy|clay
	Drainage    string   `json:"drainage"`     // poor|moderate|good|excellent
	Region      string   `json:"region"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	LastCrop    string   `json:"last_crop"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
