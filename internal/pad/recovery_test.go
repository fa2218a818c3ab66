package pad

import (
	"testing"

	"github.com/mundrapranay/padbreaker/internal/keystream"
)

var englishPlaintexts = []string{
	"We can factor the number 15 with quantum computers",
	"Euler would probably enjoy that now his theorem becomes",
	"The nice thing about Keeyloq is now we cryptographers can drive",
	"The ciphertext produced by a weak encryption algorithm looks as good",
	"You don't want to buy a set of car keys from a guy who specializes",
	"There are two types of cryptography - that which will keep secrets",
	"There are two types of cyptography one that allows the Government",
	"We can see the point where the chip is unhappy if a wrong bit is sent",
	"A (private-key) encryption scheme states 3 algorithms, namely a procedure",
	"The Concise OxfordDictionary (2006) defines crypto as the art of writing",
	"Secret messages are only as strong as the key that keeps them hidden",
}

func TestEngine_RecoversReusedKeystream(t *testing.T) {
	s, err := keystream.Generate()
	if err != nil {
		t.Fatalf("Failed to generate keystream: %v", err)
	}

	e := NewEngine()
	ciphertexts := make([][]byte, len(englishPlaintexts))
	for i, p := range englishPlaintexts {
		ciphertexts[i] = s.Encrypt([]byte(p))
		e.Submit(ciphertexts[i])
	}

	var total, correct int
	for i, c := range ciphertexts {
		got := e.Decode(c)
		want := englishPlaintexts[i]
		if len(got) != len(want) {
			t.Fatalf("Message %d: expected length %d, got %d", i, len(want), len(got))
		}
		for k := range got {
			total++
			if got[k] == want[k] {
				correct++
			}
		}
	}

	ratio := float64(correct) / float64(total)
	if ratio < 0.7 {
		t.Errorf("Recovered %.2f of plaintext bytes, expected at least 0.70", ratio)
	}
	t.Logf("recovered %d/%d bytes (%.2f)", correct, total, ratio)
}

func TestEngine_PadMatchesKeystreamWhereConfident(t *testing.T) {
	s, err := keystream.Generate()
	if err != nil {
		t.Fatalf("Failed to generate keystream: %v", err)
	}

	e := NewEngine()
	for _, p := range englishPlaintexts {
		e.Submit(s.Encrypt([]byte(p)))
	}

	truth := s.Pad(e.Len())
	inferred := e.Pad()
	var confident, matched int
	for i := range inferred {
		votes := e.Votes(i)
		winner := votes[inferred[i]]
		var runnerUp uint64
		for b, n := range votes {
			if byte(b) != inferred[i] && n > runnerUp {
				runnerUp = n
			}
		}
		// Positions where the winner has at least twice the runner-up.
		if winner < 4 || winner < 2*runnerUp {
			continue
		}
		confident++
		if inferred[i] == truth[i] {
			matched++
		}
	}
	if confident == 0 {
		t.Fatal("Expected at least one confident position")
	}
	if float64(matched)/float64(confident) < 0.8 {
		t.Errorf("Only %d of %d confident positions match the keystream", matched, confident)
	}
}
