package pad

import (
	"fmt"
	"math/rand"
	"testing"
)

func randomCiphertexts(n, length int) [][]byte {
	r := rand.New(rand.NewSource(1))
	out := make([][]byte, n)
	for i := range out {
		out[i] = make([]byte, length)
		r.Read(out[i])
	}
	return out
}

func BenchmarkEngine_Submit(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		b.Run(fmt.Sprintf("ciphertexts=%d", n), func(b *testing.B) {
			cts := randomCiphertexts(n, 256)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e := NewEngine()
				for _, c := range cts {
					e.Submit(c)
				}
			}
		})
	}
}

func BenchmarkEngine_Decode(b *testing.B) {
	e := NewEngine()
	for _, c := range randomCiphertexts(50, 1024) {
		e.Submit(c)
	}
	target := randomCiphertexts(1, 1024)[0]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Decode(target)
	}
}
