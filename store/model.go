package store

type DepositRecord struct {
	Id          uint64 `gorm:"primaryKey;autoIncrement;type:bigint(20);not null"`
	Pool        string `gorm:"type:varchar(48);not null"`
	User        string `gorm:"type:varchar(48);not null"`
	ShareAmount uint64 `gorm:"type:bigint(20);not null"`
	AmountX     uint64 `gorm:"type:bigint(20);not null"`
	AmountY     uint64 `gorm:"type:bigint(20);not null"`
	Time        uint64 `gorm:"type:bigint(20);not null"`
}

type WithdrawRecord struct {
	Id          uint64 `gorm:"primaryKey;autoIncrement;type:bigint(20);not null"`
	Pool        string `gorm:"type:varchar(48);not null"`
	User        string `gorm:"type:varchar(48);not null"`
	ShareAmount uint64 `gorm:"type:bigint(20);not null"`
	AmountX     uint64 `gorm:"type:bigint(20);not null"`
	AmountY     uint64 `gorm:"type:bigint(20);not null"`
	Time        uint64 `gorm:"type:bigint(20);not null"`
}

type SwapRecord struct {
	Id        uint64 `gorm:"primaryKey;autoIncrement;type:bigint(20);not null"`
	Pool      string `gorm:"type:varchar(48);not null"`
	User      string `gorm:"type:varchar(48);not null"`
	TokenIn   string `gorm:"type:varchar(48);not null"`
	AmountIn  uint64 `gorm:"type:bigint(20);not null"`
	TokenOut  string `gorm:"type:varchar(48);not null"`
	AmountOut uint64 `gorm:"type:bigint(20);not null"`
	Time      uint64 `gorm:"type:bigint(20);not null"`
}
