package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/mundrapranay/padbreaker/internal/codec"
	"github.com/mundrapranay/padbreaker/internal/config"
	"github.com/mundrapranay/padbreaker/internal/pad"
	"github.com/mundrapranay/padbreaker/pkg/client"
)

var (
	configFile = flag.String("config", "", "Path to corpus file (required)")
	serverAddr = flag.String("server", "", "Address of a padbreak-server; overrides server_address from the corpus")
	showAll    = flag.Bool("all", false, "Also print every recovered ciphertext")
	showPad    = flag.Bool("show-pad", false, "Print the inferred pad in hex")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	timeout    = flag.Duration("timeout", 30*time.Second, "Timeout for remote breaking")
)

// result is what a breaking run produces, locally or remotely.
type result struct {
	target    []byte
	recovered [][]byte
	pad       []byte
	stats     pad.Stats
}

func main() {
	flag.Parse()

	if *configFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -config flag is required\n")
		fmt.Fprintf(os.Stderr, "Usage: %s -config <corpus.yaml>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nExample corpus file:\n")
		printExampleCorpus()
		os.Exit(1)
	}

	corpus, err := config.LoadCorpus(*configFile)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}

	decoded, err := corpus.Decode()
	if err != nil {
		log.Fatalf("Failed to decode corpus: %v", err)
	}
	skipped := make([]int, 0, len(decoded.Skipped))
	for i := range decoded.Skipped {
		skipped = append(skipped, i)
	}
	sort.Ints(skipped)
	for _, i := range skipped {
		log.Printf("Skipping ciphertext %d: %v", i, decoded.Skipped[i])
	}
	for _, dup := range corpus.Duplicates() {
		log.Printf("Ciphertext %s occurs more than once and adds no evidence", shorten(dup))
	}

	addr := corpus.ServerAddress
	if *serverAddr != "" {
		addr = *serverAddr
	}

	if *verbose {
		log.Printf("Loaded corpus:")
		log.Printf("  Ciphertexts: %d (%d skipped)", len(decoded.Ciphertexts), len(decoded.Skipped))
		log.Printf("  Target length: %d", len(decoded.Target))
		if addr != "" {
			log.Printf("  Server: %s", addr)
		}
	}

	var res *result
	if addr == "" {
		res = breakLocally(decoded)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		res, err = breakRemotely(ctx, addr, decoded)
		stop()
		cancel()
		if err != nil {
			log.Fatalf("Remote breaking failed: %v", err)
		}
	}

	if *verbose {
		log.Printf("Vote table: %d positions, %d covered, %d tied, %d votes",
			res.stats.Positions, res.stats.Covered, res.stats.Tied, res.stats.TotalMass)
	}

	printResult(res, decoded.Target != nil)
}

func breakLocally(decoded *config.Decoded) *result {
	engine := pad.NewEngine()
	for _, c := range decoded.Ciphertexts {
		engine.Submit(c)
	}

	return &result{
		target:    engine.Decode(decoded.Target),
		recovered: engine.DecodeAll(),
		pad:       engine.Pad(),
		stats:     engine.Stats(),
	}
}

func breakRemotely(ctx context.Context, addr string, decoded *config.Decoded) (*result, error) {
	if *verbose {
		log.Printf("Connecting to padbreak-server at %s...", addr)
	}

	c, err := client.NewClient(addr)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	session, err := c.NewSession(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := session.Close(context.Background()); err != nil {
			log.Printf("Failed to close session %s: %v", session.ID(), err)
		}
	}()

	if *verbose {
		log.Printf("Opened session %s", session.ID())
	}

	for _, ct := range decoded.Ciphertexts {
		if err := session.Submit(ctx, ct); err != nil {
			return nil, err
		}
	}

	res := &result{}
	if res.target, err = session.Decode(ctx, decoded.Target); err != nil {
		return nil, err
	}
	for _, ct := range decoded.Ciphertexts {
		out, err := session.Decode(ctx, ct)
		if err != nil {
			return nil, err
		}
		res.recovered = append(res.recovered, out)
	}
	if res.pad, err = session.Pad(ctx); err != nil {
		return nil, err
	}
	if res.stats, err = session.Stats(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

func printResult(res *result, hasTarget bool) {
	if *showPad {
		fmt.Println("---- PAD ----")
		fmt.Println(codec.EncodeHex(res.pad))
	}

	if *showAll || !hasTarget {
		fmt.Println("---- RECOVERED CIPHERTEXTS ----")
		for i, msg := range res.recovered {
			fmt.Printf("%2d: %s\n", i, codec.Render(msg))
		}
	}

	if hasTarget {
		fmt.Printf("---- DECODED MESSAGE ----\n%s\n", codec.Render(res.target))
	}
}

func shorten(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:16] + "..."
}

func printExampleCorpus() {
	example := `# Target ciphertext to decode (hex, optional 0x prefix)
target: "32510ba9babebbbefd001547a810e67149caee11d945cd7f"

# Ciphertexts encrypted under the same pad
ciphertexts:
  - "315c4eeaa8b5f8aaf9174145bf43e1784b8fa00dc71d885a"
  - "234c02ecbbfbafa3ed18510abd11fa724fcda2018a1a8342"
  - "32510ba9a7b2bba9b8005d43a304b5714cc0bb0c8a34884d"

# Optional: break through a padbreak-server instead of locally
# server_address: "127.0.0.1:9191"
`
	fmt.Print(example)
}
