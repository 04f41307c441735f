package config

import (
	"github.com/gagliardetto/solana-go"
)

var (
	ConfigPath = "./config/"
	TokensFile = ConfigPath + "tokens.json"
	ConfigFile = ConfigPath + "config.json"
	LogPath    = "./logs/"
	ServerLog  = "server"
	EngineLog  = "engine"
)

type Pool struct {
	Key       solana.PublicKey `json:"key"`
	TokenX    solana.PublicKey `json:"token_x"`
	TokenY    solana.PublicKey `json:"token_y"`
	VaultX    solana.PublicKey `json:"vault_x"`
	VaultY    solana.PublicKey `json:"vault_y"`
	ShareMint solana.PublicKey `json:"share_mint"`
	FeeBps    uint16           `json:"fee_bps"`
	Decimals  uint8            `json:"decimals"`
	Locked    bool             `json:"locked"`
	ReserveX  uint64           `json:"reserve_x"`
	ReserveY  uint64           `json:"reserve_y"`
}

type User struct {
	Owner    solana.PublicKey `json:"owner"`
	Pool     solana.PublicKey `json:"pool"`
	TokenX   solana.PublicKey `json:"token_x"`
	TokenY   solana.PublicKey `json:"token_y"`
	Shares   solana.PublicKey `json:"shares"`
	BalanceX uint64           `json:"balance_x"`
	BalanceY uint64           `json:"balance_y"`
}

type Config struct {
	Listen   string  `json:"listen"`
	Pools    []*Pool `json:"pools"`
	Users    []*User `json:"users"`
	DumpDB   bool    `json:"dump_db"`
	DBUrl    string  `json:"db_url"`
	DBScheme string  `json:"db_scheme"`
	DBUser   string  `json:"db_user"`
	DBPasswd string  `json:"db_passwd"`
}
