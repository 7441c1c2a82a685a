package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/solintent/engine/internal/builder"
	"github.com/solintent/engine/internal/cache"
	"github.com/solintent/engine/internal/decode"
	"github.com/solintent/engine/internal/engine"
	"github.com/solintent/engine/internal/handlers"
	"github.com/solintent/engine/internal/intent"
	"github.com/solintent/engine/internal/learned"
	"github.com/solintent/engine/internal/llmfallback"
	"github.com/solintent/engine/internal/mints"
	"github.com/solintent/engine/internal/obslog"
	"github.com/solintent/engine/internal/parser"
	"github.com/solintent/engine/internal/registry"
	"github.com/solintent/engine/internal/venue"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "no .env file found or error loading it: %v\n", err)
	}

	var (
		prompt        = flag.String("prompt", "", "Natural-language prompt to build a transaction from")
		payer         = flag.String("payer", "", "Base58 fee-payer wallet address")
		network       = flag.String("network", "mainnet-beta", "Solana cluster (mainnet-beta, devnet, testnet)")
		skipSim       = flag.Bool("skip-simulation", false, "Skip the dry-run simulation step")
		jsonOut       = flag.Bool("json", false, "Print raw JSON instead of formatted text")
		venueURL      = flag.String("venue-url", "https://api.dexscreener.com/latest/dex", "Venue/market-data base URL")
		aggregatorURL = flag.String("aggregator-url", "https://quote-api.jup.ag/v6", "Swap aggregator base URL")
		learnedPath   = flag.String("learned-store", "data/learned-intents.json", "Path to the file-backed learned-pattern store")
		openaiKey     = flag.String("openai-key", "", "OpenAI API key (also read from OPENAI_API_KEY)")
		logLevel      = flag.String("log-level", "info", "Log level: debug, info, warn, error")
		showVersion   = flag.Bool("version", false, "Show version and exit")
	)
	flag.Parse()

	obslog.New(*logLevel, !*jsonOut)

	if *showVersion {
		fmt.Println("solintent-engine v0.1.0")
		fmt.Println("Solana transaction-intent engine: natural language -> simulated, serialized transaction")
		os.Exit(0)
	}

	if *prompt == "" {
		fmt.Fprintln(os.Stderr, "usage: enginecli -prompt \"swap 2 SOL for USDC\" -payer <wallet>")
		os.Exit(1)
	}
	if *payer == "" {
		fmt.Fprintln(os.Stderr, "error: -payer is required")
		os.Exit(1)
	}

	apiKey := *openaiKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	eng, err := buildEngine(*venueURL, *aggregatorURL, *learnedPath, apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize engine: %v\n", err)
		os.Exit(1)
	}

	req := intent.NaturalIntent{
		RequestID:      uuid.NewString(),
		Prompt:         *prompt,
		Payer:          *payer,
		Network:        *network,
		SkipSimulation: *skipSim,
	}

	if !*jsonOut {
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("building from prompt: %q\n", *prompt)
		fmt.Println(strings.Repeat("=", 60))
	}

	results, err := eng.BuildFromNaturalLanguage(context.Background(), req, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		encoded, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(encoded))
		return
	}

	for _, r := range results {
		printResult(r)
	}
}

func printResult(r engine.MultiBuildResult) {
	fmt.Printf("\nsegment: %q\n", r.Segment)
	if !r.Result.Success {
		fmt.Printf("  FAILED: %s\n", r.Result.Error)
		return
	}
	fmt.Printf("  protocol:       %s\n", r.Result.Details.Protocol)
	fmt.Printf("  instructions:   %d\n", r.Result.Details.InstructionCount)
	fmt.Printf("  compute units:  %d\n", r.Result.Details.ComputeUnits)
	fmt.Printf("  priority fee:   %d microlamports\n", r.Result.Details.PriorityFeeµℓ)
	fmt.Printf("  estimated fee:  %s SOL\n", r.Result.Details.EstimatedFeeSOL)
	fmt.Printf("  transaction:    %s...\n", truncate(r.Result.SerializedTxB64, 48))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func buildEngine(venueURL, aggregatorURL, learnedPath, openaiKey string) (*engine.Engine, error) {
	tokenCache, err := cache.NewMemoryCache()
	if err != nil {
		return nil, fmt.Errorf("failed to build token cache: %w", err)
	}
	pairCache, err := cache.NewMemoryCache()
	if err != nil {
		return nil, fmt.Errorf("failed to build pair cache: %w", err)
	}
	venueResolver := venue.New(venueURL, "solana", tokenCache, pairCache)

	store := learned.NewFileStore(learnedPath)

	var fallback llmfallback.Fallback = llmfallback.Null{}
	if openaiKey != "" {
		openaiFallback, err := llmfallback.NewOpenAI(openaiKey)
		if err == nil {
			fallback = openaiFallback
		}
	}

	async := &parser.Async{
		Learned: store,
		LLM:     fallback,
		Venue:   venueResolver,
	}

	mintRegistry := mints.New()
	reg := registry.New()
	reg.Register(handlers.NewSystemHandler())
	reg.Register(handlers.NewSPLTokenHandler())
	reg.Register(handlers.NewToken2022Handler())
	reg.Register(handlers.NewMemoHandler())
	reg.Register(handlers.NewJitoHandler())
	reg.Register(handlers.NewNativeStakeHandler())
	reg.Register(handlers.NewMarinadeHandler())
	reg.Register(handlers.NewRaydiumHandler())
	reg.Register(handlers.NewOrcaHandler())
	reg.Register(handlers.NewMeteoraHandler())
	reg.Register(handlers.NewPumpfunHandler())
	reg.Register(handlers.NewKaminoHandler())
	reg.Register(handlers.NewMarginfiHandler())
	reg.Register(handlers.NewSolendHandler())

	aggregator := handlers.NewAggregatorHandler(aggregatorURL, mintRegistry)
	reg.Register(aggregator)

	txBuilder := builder.New(reg, aggregator, engine.NetworkResolver())

	decoder, err := decode.New(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}

	return engine.New(async, txBuilder, decoder), nil
}
