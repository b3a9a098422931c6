package models

// SeedHistory records that a seed dataset version has been applied
type SeedHistory struct {
	Version   string `gorm:"primaryKey;size:40"`
	AppliedAt int64  `gorm:"autoCreateTime"`
}

// TableName returns the table name for SeedHistory
func (SeedHistory) TableName() string {
	return "seed_history"
}
