package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/yumyai/genomesim/internal/util"
	"github.com/yumyai/genomesim/logger"
	"github.com/yumyai/genomesim/pkg/analysis"
	"github.com/yumyai/genomesim/pkg/feature"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fallback demo sequence: alternating GC-rich and AT-rich stretches.
const defaultSequence = "GCGCGCGCGCATATATATATGCGCGCGCGCGCGCGCGCGCATATATATATGCGCGCGCGC"

func main() {

	LOG_LEVEL := zapcore.InfoLevel

	if err := logger.InitLogger(LOG_LEVEL); err != nil {
		panic(err)
	}

	// Try load env
	dotenvErr := godotenv.Load()

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	defer logger.Sync() // Make sure that the buffer is flushed.

	sequence := util.GetEnvDefault("GENOMESIM_SEQ", defaultSequence)
	sequenceID := util.GetEnvDefault("GENOMESIM_SEQ_ID", "demo_contig")
	windowSize := envInt("GENOMESIM_WINDOW", 10)
	maxGap := envInt("GENOMESIM_MAX_GAP", 25)

	logger.Info("Start:", zap.String("Version", analysis.Version))
	logger.Info("Analyzing sequence",
		zap.String("sequence_id", sequenceID),
		zap.Int("length", len(sequence)))

	analyzer, err := analysis.NewGCContentAnalyzer(windowSize, 0.6)
	if err != nil {
		logger.Fatal("Bad analyzer configuration", zap.Error(err))
	}

	motifs, err := analyzer.Analyze(sequence, sequenceID)
	if err != nil {
		logger.Error("Analysis failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Analyzer done",
		zap.String("analyzer", analysis.DescribeAnalyzer(analyzer)),
		zap.Int("features", len(motifs)))

	bridge, err := analysis.NewProximityBridge(maxGap, analysis.WeightedAverage)
	if err != nil {
		logger.Fatal("Bad bridge configuration", zap.Error(err))
	}

	genes, err := bridge.Bridge(motifs)
	if err != nil {
		logger.Error("Bridging failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Bridge done",
		zap.String("bridge", analysis.DescribeBridge(bridge)),
		zap.Int("features", len(genes)))

	printGFF3(motifs, genes)
}

func printGFF3(featureSets ...[]feature.GenomicFeature) {
	fmt.Println("##gff-version 3")
	for _, set := range featureSets {
		for _, f := range set {
			fmt.Println(f.GFF3())
		}
	}
}

func envInt(key string, fallback int) int {
	raw := util.GetEnvDefault(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("Ignoring non-numeric environment value",
			zap.String("key", key), zap.String("value", raw))
		return fallback
	}
	return v
}
