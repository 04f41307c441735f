package store

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Dao struct {
	db *gorm.DB
}

func NewDao(url, scheme, user, passwd string) *Dao {
	dao := &Dao{}
	Logger := logger.Default
	Logger = Logger.LogMode(logger.Info)
	db, err := gorm.Open(mysql.Open(user+":"+passwd+"@tcp("+url+")/"+
		scheme+"?charset=utf8"), &gorm.Config{Logger: Logger})
	if err != nil {
		panic(err)
	}
	err = db.AutoMigrate(&DepositRecord{}, &WithdrawRecord{}, &SwapRecord{})
	if err != nil {
		panic(err)
	}
	dao.db = db
	return dao
}

func (dao *Dao) SaveDeposit(record *DepositRecord) error {
	return dao.db.Create(record).Error
}

func (dao *Dao) SaveWithdraw(record *WithdrawRecord) error {
	return dao.db.Create(record).Error
}

func (dao *Dao) SaveSwap(record *SwapRecord) error {
	return dao.db.Create(record).Error
}

func (dao *Dao) SelectDeposits(pool string) ([]*DepositRecord, error) {
	records := make([]*DepositRecord, 0)
	res := dao.db.Where("pool = ?", pool).Find(&records)
	return records, res.Error
}

func (dao *Dao) SelectWithdraws(pool string) ([]*WithdrawRecord, error) {
	records := make([]*WithdrawRecord, 0)
	res := dao.db.Where("pool = ?", pool).Find(&records)
	return records, res.Error
}

func (dao *Dao) SelectSwaps(pool string) ([]*SwapRecord, error) {
	records := make([]*SwapRecord, 0)
	res := dao.db.Where("pool = ?", pool).Find(&records)
	return records, res.Error
}
