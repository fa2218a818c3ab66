package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mundrapranay/padbreaker/internal/codec"
	"github.com/mundrapranay/padbreaker/internal/config"
	"github.com/mundrapranay/padbreaker/internal/keystream"
)

var (
	inFile      = flag.String("in", "", "Plaintext file, one message per line (required)")
	outFile     = flag.String("out", "corpus.yaml", "Where to write the corpus")
	targetIndex = flag.Int("target-index", -1, "Line to use as the target; -1 writes no target")
	serverAddr  = flag.String("server", "", "Optional server_address to record in the corpus")
)

func main() {
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -in flag is required\n")
		fmt.Fprintf(os.Stderr, "Usage: %s -in <plaintexts.txt> -out <corpus.yaml> [-target-index i]\n", os.Args[0])
		os.Exit(1)
	}

	plaintexts, err := readLines(*inFile)
	if err != nil {
		log.Fatalf("Failed to read plaintexts: %v", err)
	}
	if len(plaintexts) == 0 {
		log.Fatalf("No plaintexts in %s", *inFile)
	}
	if *targetIndex >= len(plaintexts) {
		log.Fatalf("target-index %d out of range (%d plaintexts)", *targetIndex, len(plaintexts))
	}

	stream, err := keystream.Generate()
	if err != nil {
		log.Fatalf("Failed to generate keystream: %v", err)
	}

	corpus := &config.Corpus{ServerAddress: *serverAddr}
	for i, ct := range stream.EncryptAll(plaintexts) {
		if i == *targetIndex {
			corpus.Target = codec.EncodeHex(ct)
			continue
		}
		corpus.Ciphertexts = append(corpus.Ciphertexts, codec.EncodeHex(ct))
	}

	if err := config.SaveCorpus(corpus, *outFile); err != nil {
		log.Fatalf("Failed to write corpus: %v", err)
	}
	log.Printf("Wrote %d ciphertexts to %s", len(plaintexts), *outFile)
}

func readLines(path string) ([][]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var lines [][]byte
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	return lines, nil
}
