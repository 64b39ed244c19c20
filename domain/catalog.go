package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.catalog_items (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     item_name        TEXT NOT NULL,
//     category         TEXT NOT NULL,
//     price            NUMERIC NOT NULL,
//     rating           NUMERIC,
//     rating_count     INT,
//     tags             JSONB,
//     flavor_vector    JSONB,
//     prep_time_min    INT,
//     popularity       NUMERIC,
//     is_orderable     BOOLEAN DEFAULT TRUE,
//     created_at       TIMESTAMPTZ DEFAULT NOW()
// );

type CatalogItem struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemName    string    `gorm:"column:item_name;type:text;not null" json:"item_name"`
	Category    string    `gorm:"column:category;type:text;not null" json:"category"`
	Price       float64   `gorm:"column:price;type:numeric;not null" json:"price"`
	Rating      float64   `gorm:"column:rating;type:numeric" json:"rating"`
	RatingCount int       `gorm:"column:rating_count" json:"rating_count"`
	PrepTimeMin int       `gorm:"column:prep_time_min" json:"prep_time_min"`
	Popularity  float64   `gorm:"column:popularity;type:numeric" json:"popularity"`
	IsOrderable bool      `gorm:"column:is_orderable;default:true" json:"is_orderable"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`

	TagsRaw         datatypes.JSON `gorm:"column:tags;type:jsonb" json:"-"`
	FlavorVectorRaw datatypes.JSON `gorm:"column:flavor_vector;type:jsonb" json:"-"`

	Tags         []string  `gorm:"-" json:"tags"`
	FlavorVector []float64 `gorm:"-" json:"flavor_vector,omitempty"`
}

func (CatalogItem) TableName() string {
	return "catalog_items"
}

// HasTag reports whether the item carries the given tag.
func (i CatalogItem) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
