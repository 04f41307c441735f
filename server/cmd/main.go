package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/egaotan/solana-swap/config"
	"github.com/egaotan/solana-swap/env"
	"github.com/egaotan/solana-swap/server"
)

func loadConfig() *config.Config {
	infoJson, err := os.ReadFile(config.ConfigFile)
	if err != nil {
		panic(err)
	}
	cfg := &config.Config{}
	err = json.Unmarshal(infoJson, cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func main() {
	cfg := loadConfig()
	ctx, cancel := context.WithCancel(context.Background())
	tokenEnv := env.NewEnv(ctx)
	tokenEnv.Start()
	s := server.NewServer(ctx, cfg, tokenEnv)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		cancel()
	}()
	s.Service()
	tokenEnv.Stop()
}
