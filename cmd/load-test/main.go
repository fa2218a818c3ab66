package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mundrapranay/padbreaker/internal/keystream"
	"github.com/mundrapranay/padbreaker/pkg/client"
)

var (
	serverAddr        = flag.String("server", "127.0.0.1:9191", "Server address (host:port)")
	numSessions       = flag.Int("sessions", 10, "Number of concurrent sessions")
	ciphertextsPerSes = flag.Int("ciphertexts", 50, "Number of ciphertexts submitted per session")
	workersPerSession = flag.Int("workers", 5, "Number of clients submitting to each session")
	messageLength     = flag.Int("length", 128, "Plaintext length in bytes")
	queriesPerSec     = flag.Float64("qps", 10.0, "Decode queries per second")
	duration          = flag.Duration("duration", 30*time.Second, "Test duration")
)

const alphabet = "abcdefghijklmnopqrstuvwxyz      ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// randomText returns n bytes of letters and spaces, roughly the mix of
// English prose that the breaker relies on.
func randomText(rng *rand.Rand, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return out
}

type loadSession struct {
	session     *client.Session
	plaintexts  [][]byte
	ciphertexts [][]byte
}

func main() {
	flag.Parse()

	if *numSessions < 1 || *ciphertextsPerSes < 1 || *workersPerSession < 1 || *queriesPerSec <= 0 {
		log.Fatalf("sessions, ciphertexts, workers and qps must be positive")
	}

	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Printf("🚀 padbreak-server Load Testing\n")
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Println()
	fmt.Printf("📋 Configuration:\n")
	fmt.Printf("   Server:              %s\n", *serverAddr)
	fmt.Printf("   Concurrent sessions: %d\n", *numSessions)
	fmt.Printf("   Ciphertexts/session: %d\n", *ciphertextsPerSes)
	fmt.Printf("   Workers/session:     %d\n", *workersPerSession)
	fmt.Printf("   Message length:      %d\n", *messageLength)
	fmt.Printf("   Queries per sec:     %.1f\n", *queriesPerSec)
	fmt.Printf("   Test duration:       %v\n", *duration)
	fmt.Println()

	ctx := context.Background()

	fmt.Printf("🔌 Connecting to server...\n")
	adminClient, err := client.NewClient(*serverAddr)
	if err != nil {
		log.Fatalf("Failed to create admin client: %v", err)
	}
	defer adminClient.Close()
	fmt.Printf("✅ Connected successfully!\n\n")

	var (
		sessionsCompleted int64
		sessionsFailed    int64
		queriesCompleted  int64
		queriesFailed     int64
		totalSubmitTime   int64 // nanoseconds
		totalQueryTime    int64 // nanoseconds
	)

	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Printf("📋 Phase 1: Concurrent Submit Test\n")
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Println()

	sessions := make([]*loadSession, *numSessions)
	sessionsStart := time.Now()
	var sessionsWg sync.WaitGroup

	for n := 0; n < *numSessions; n++ {
		sessionsWg.Add(1)
		go func(n int) {
			defer sessionsWg.Done()

			sessionStart := time.Now()
			rng := rand.New(rand.NewSource(int64(n) + 1))

			stream, err := keystream.Generate()
			if err != nil {
				log.Printf("Failed to generate keystream for session %d: %v", n, err)
				atomic.AddInt64(&sessionsFailed, 1)
				return
			}

			ls := &loadSession{}
			for i := 0; i < *ciphertextsPerSes; i++ {
				ls.plaintexts = append(ls.plaintexts, randomText(rng, *messageLength))
			}
			ls.ciphertexts = stream.EncryptAll(ls.plaintexts)

			ls.session, err = adminClient.NewSession(ctx)
			if err != nil {
				log.Printf("Failed to create session %d: %v", n, err)
				atomic.AddInt64(&sessionsFailed, 1)
				return
			}

			// Each worker gets its own connection and a stripe of the ciphertexts.
			var workersWg sync.WaitGroup
			var workerErrors int64
			for w := 0; w < *workersPerSession; w++ {
				workersWg.Add(1)
				go func(w int) {
					defer workersWg.Done()

					wClient, err := client.NewClient(*serverAddr)
					if err != nil {
						atomic.AddInt64(&workerErrors, 1)
						log.Printf("Failed to create worker client for session %d: %v", n, err)
						return
					}
					defer wClient.Close()

					remote := wClient.Attach(ls.session.ID())
					for i := w; i < len(ls.ciphertexts); i += *workersPerSession {
						if err := remote.Submit(ctx, ls.ciphertexts[i]); err != nil {
							atomic.AddInt64(&workerErrors, 1)
							log.Printf("Worker %d of session %d failed: %v", w, n, err)
							return
						}
					}
				}(w)
			}
			workersWg.Wait()

			if atomic.LoadInt64(&workerErrors) > 0 {
				atomic.AddInt64(&sessionsFailed, 1)
				return
			}

			sessionDuration := time.Since(sessionStart)
			atomic.AddInt64(&totalSubmitTime, sessionDuration.Nanoseconds())
			atomic.AddInt64(&sessionsCompleted, 1)
			sessions[n] = ls

			fmt.Printf("   ✅ Session %d loaded in %v\n", n, sessionDuration)
		}(n)
	}

	sessionsWg.Wait()
	sessionsDuration := time.Since(sessionsStart)

	fmt.Println()
	fmt.Printf("📊 Submit Results:\n")
	fmt.Printf("   Completed: %d\n", atomic.LoadInt64(&sessionsCompleted))
	fmt.Printf("   Failed:    %d\n", atomic.LoadInt64(&sessionsFailed))
	fmt.Printf("   Duration:  %v\n", sessionsDuration)
	if atomic.LoadInt64(&sessionsCompleted) > 0 {
		avgTime := time.Duration(atomic.LoadInt64(&totalSubmitTime) / atomic.LoadInt64(&sessionsCompleted))
		fmt.Printf("   Avg time:  %v\n", avgTime)
	}
	fmt.Println()

	var ready []*loadSession
	for _, ls := range sessions {
		if ls != nil {
			ready = append(ready, ls)
		}
	}
	if len(ready) == 0 {
		log.Fatalf("No session was loaded; skipping decode phase")
	}

	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Printf("📋 Phase 2: Decode Load Test\n")
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Println()

	queryInterval := time.Duration(float64(time.Second) / *queriesPerSec)
	fmt.Printf("🔍 Running decodes at %.1f QPS for %v...\n", *queriesPerSec, *duration)
	fmt.Printf("   Query interval: %v\n", queryInterval)
	fmt.Println()

	var (
		recoveredMu    sync.Mutex
		recoveredBytes int
		decodedBytes   int
	)

	testStart := time.Now()
	stopTime := testStart.Add(*duration)
	ticker := time.NewTicker(queryInterval)
	defer ticker.Stop()

	progressTicker := time.NewTicker(5 * time.Second)
	defer progressTicker.Stop()

	var inflight sync.WaitGroup
	done := make(chan bool, 1)
	dispatched := make(chan struct{})
	go func() {
		defer close(dispatched)
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		for {
			select {
			case <-ticker.C:
				if time.Now().After(stopTime) {
					return
				}

				ls := ready[rng.Intn(len(ready))]
				idx := rng.Intn(len(ls.ciphertexts))

				inflight.Add(1)
				go func(ls *loadSession, idx int) {
					defer inflight.Done()
					queryStart := time.Now()

					queryCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
					defer cancel()

					out, err := ls.session.Decode(queryCtx, ls.ciphertexts[idx])
					queryDuration := time.Since(queryStart)

					if err != nil {
						atomic.AddInt64(&queriesFailed, 1)
						failed := atomic.LoadInt64(&queriesFailed)
						if failed <= 5 || failed%100 == 0 {
							fmt.Printf("   ❌ Decode failed: session %s, message %d [%v] - Error: %v\n", ls.session.ID(), idx, queryDuration, err)
						}
						return
					}
					atomic.AddInt64(&queriesCompleted, 1)
					atomic.AddInt64(&totalQueryTime, queryDuration.Nanoseconds())

					hits := 0
					for i := range out {
						if out[i] == ls.plaintexts[idx][i] {
							hits++
						}
					}
					recoveredMu.Lock()
					recoveredBytes += hits
					decodedBytes += len(out)
					recoveredMu.Unlock()
				}(ls, idx)
			case <-done:
				return
			}
		}
	}()

	progressDone := make(chan bool, 1)
	go func() {
		for {
			select {
			case <-progressTicker.C:
				if time.Now().After(stopTime) {
					return
				}
				elapsed := time.Since(testStart)
				remaining := *duration - elapsed
				if remaining < 0 {
					remaining = 0
				}
				completed := atomic.LoadInt64(&queriesCompleted)
				failed := atomic.LoadInt64(&queriesFailed)
				fmt.Printf("   ⏱️  Progress: %v elapsed, %v remaining | Decodes: %d completed, %d failed\n",
					elapsed.Round(time.Second), remaining.Round(time.Second), completed, failed)
			case <-progressDone:
				return
			}
		}
	}()

	time.Sleep(*duration)
	testDuration := time.Since(testStart)

	done <- true
	progressDone <- true
	<-dispatched
	inflight.Wait()

	fmt.Println()
	fmt.Printf("📊 Decode Results:\n")
	totalQueries := atomic.LoadInt64(&queriesCompleted) + atomic.LoadInt64(&queriesFailed)
	fmt.Printf("   Completed:      %d\n", atomic.LoadInt64(&queriesCompleted))
	fmt.Printf("   Failed:         %d\n", atomic.LoadInt64(&queriesFailed))
	fmt.Printf("   Duration:       %v\n", testDuration)
	if totalQueries > 0 {
		fmt.Printf("   Actual QPS:     %.2f\n", float64(totalQueries)/testDuration.Seconds())
	}
	if atomic.LoadInt64(&queriesCompleted) > 0 {
		avgQueryTime := time.Duration(atomic.LoadInt64(&totalQueryTime) / atomic.LoadInt64(&queriesCompleted))
		fmt.Printf("   Avg decode:     %v\n", avgQueryTime)
	}
	if decodedBytes > 0 {
		fmt.Printf("   Bytes recovered: %.1f%%\n", float64(recoveredBytes)*100.0/float64(decodedBytes))
	}
	fmt.Println()

	for _, ls := range ready {
		if err := ls.session.Close(ctx); err != nil {
			log.Printf("Failed to close session %s: %v", ls.session.ID(), err)
		}
	}

	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Printf("📋 Load Test Summary\n")
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Printf("  Concurrent sessions: %d\n", *numSessions)
	fmt.Printf("  Sessions loaded:     %d\n", atomic.LoadInt64(&sessionsCompleted))
	fmt.Printf("  Sessions failed:     %d\n", atomic.LoadInt64(&sessionsFailed))
	fmt.Printf("  Total decodes:       %d\n", totalQueries)
	fmt.Printf("  Decodes failed:      %d\n", atomic.LoadInt64(&queriesFailed))
	fmt.Println()

	if atomic.LoadInt64(&sessionsFailed) == 0 && atomic.LoadInt64(&queriesFailed) == 0 {
		fmt.Printf("✅ Load test passed!\n")
	} else {
		fmt.Printf("⚠️  Load test completed with some failures\n")
	}
}
