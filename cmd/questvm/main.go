// Copyright (C) 2023-2024, Quest Protocol. All rights reserved.
// See the file LICENSE for licensing terms.

// "questvm" runs the quest ledger service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/questprotocol/questvm/engine"
	"github.com/questprotocol/questvm/ledger"
	"github.com/questprotocol/questvm/transfer"
	"github.com/questprotocol/questvm/version"
)

var rootCmd = &cobra.Command{
	Use:     "questvm",
	Short:   "Quest ledger service",
	Version: version.Version.String(),
	RunE:    runFunc,
}

func init() {
	rootCmd.PersistentFlags().String("http-addr", ":9652", "address the JSON-RPC server listens on")
	rootCmd.PersistentFlags().String("db-dir", "", "database directory (in-memory when empty)")
	rootCmd.PersistentFlags().String("genesis-file", "", "genesis file path (defaults when empty)")
	rootCmd.PersistentFlags().String("log-level", "info", "log15 level")
	rootCmd.PersistentFlags().Int("activity-cache-size", 128, "recent operations kept for the activity endpoint")
	rootCmd.PersistentFlags().String("config-file", "", "optional config file read before flags")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("questvm")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "questvm failed: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func runFunc(cmd *cobra.Command, args []string) error {
	if cfgFile := viper.GetString("config-file"); len(cfgFile) > 0 {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	}

	lvl, err := log.LvlFromString(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.TerminalFormat())))

	db, err := openDatabase(viper.GetString("db-dir"))
	if err != nil {
		return err
	}
	defer db.Close()

	g, err := loadGenesis(viper.GetString("genesis-file"))
	if err != nil {
		return err
	}

	cfg := &engine.Config{}
	cfg.SetDefaults()
	if size := viper.GetInt("activity-cache-size"); size > 0 {
		cfg.ActivityCacheSize = size
	}

	e, err := engine.New(db, g, transfer.New(), cfg)
	if err != nil {
		return err
	}
	handler, err := engine.NewHandler(e)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(engine.PublicEndpoint, handler)
	srv := &http.Server{
		Addr:              viper.GetString("http-addr"),
		Handler:           mux,
		ReadHeaderTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs, ctx := errgroup.WithContext(ctx)
	errs.Go(func() error {
		log.Info("serving", "addr", srv.Addr, "endpoint", engine.PublicEndpoint)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	errs.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return errs.Wait()
}

func openDatabase(dbDir string) (database.Database, error) {
	if len(dbDir) == 0 {
		log.Warn("no db-dir set, state will not survive restarts")
		return memdb.New(), nil
	}
	return leveldb.New(dbDir, nil, logging.NoLog{})
}

func loadGenesis(genesisFile string) (*ledger.Genesis, error) {
	if len(genesisFile) == 0 {
		return ledger.DefaultGenesis(), nil
	}
	b, err := os.ReadFile(genesisFile)
	if err != nil {
		return nil, err
	}
	g := &ledger.Genesis{}
	if err := json.Unmarshal(b, g); err != nil {
		return nil, err
	}
	return g, nil
}
