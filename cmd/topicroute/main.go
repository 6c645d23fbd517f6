package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/curatorlabs/topicroute/config"
	"github.com/curatorlabs/topicroute/router"
)

// Build-time version info.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "route":
		runRoute(os.Args[2:])
	case "models":
		runModels(os.Args[2:])
	case "version":
		fmt.Printf("topicroute %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`topicroute - topic-sensitivity router for hosted model endpoints

Usage:
  topicroute route --topic TEXT [--directive TEXT] [--config PATH]
  topicroute models [--config PATH]
  topicroute version`)
}

// routeOutput is the JSON envelope printed for one invocation.
type routeOutput struct {
	TraceID  string           `json:"trace_id"`
	Topic    string           `json:"topic"`
	Decision *router.Decision `json:"decision"`
}

func runRoute(args []string) {
	fs := flag.NewFlagSet("route", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path (YAML)")
	topic := fs.String("topic", "", "research topic to route")
	directive := fs.String("directive", "", "explicit model directive, overrides keyword detection")
	fs.Parse(args)

	cfg, logger := mustLoad(*configPath)
	defer logger.Sync()

	r, err := router.New(cfg, router.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	traceID := uuid.NewString()
	decision, err := r.Select(*topic, *directive)
	if err != nil {
		var unknown *router.UnknownModelError
		if errors.As(err, &unknown) {
			logger.Error("unknown model in directive",
				zap.String("trace_id", traceID),
				zap.String("directive", unknown.Directive),
				zap.Strings("known", unknown.Known))
			os.Exit(1)
		}
		logger.Fatal("routing failed", zap.String("trace_id", traceID), zap.Error(err))
	}

	out, err := json.MarshalIndent(routeOutput{
		TraceID:  traceID,
		Topic:    *topic,
		Decision: decision,
	}, "", "  ")
	if err != nil {
		logger.Fatal("failed to encode decision", zap.Error(err))
	}
	fmt.Println(string(out))
}

func runModels(args []string) {
	fs := flag.NewFlagSet("models", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path (YAML)")
	fs.Parse(args)

	cfg, logger := mustLoad(*configPath)
	defer logger.Sync()

	r, err := router.New(cfg, router.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	for _, id := range r.Registry().List() {
		p, _ := r.Registry().Get(id)
		fmt.Printf("%-8s %s\n", p.ID, p.Name)
		if len(p.BestFor) > 0 {
			fmt.Printf("         best for: %v\n", p.BestFor)
		}
		if len(p.AvoidFor) > 0 {
			fmt.Printf("         avoid for: %v\n", p.AvoidFor)
		}
		if p.ComplianceNotes != "" {
			fmt.Printf("         notes: %s\n", p.ComplianceNotes)
		}
	}
}

func mustLoad(configPath string) (*config.Config, *zap.Logger) {
	cfg, err := config.NewLoader().WithConfigPath(configPath).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return cfg, buildLogger(cfg.Log)
}

func buildLogger(cfg config.LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
