package domain

// AssociationRule is one mined (or seeded) co-purchase rule:
// "a cart item matching the antecedent lifts candidates matching the consequent".
// Kind is "category" or "tag" on each side.
type AssociationRule struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	AntecedentKind string  `gorm:"column:antecedent_kind;not null" json:"antecedent_kind"`
	Antecedent     string  `gorm:"column:antecedent;not null" json:"antecedent"`
	ConsequentKind string  `gorm:"column:consequent_kind;not null" json:"consequent_kind"`
	Consequent     string  `gorm:"column:consequent;not null" json:"consequent"`
	Confidence     float64 `gorm:"column:confidence;not null" json:"confidence"`
}

func (AssociationRule) TableName() string {
	return "association_rules"
}
