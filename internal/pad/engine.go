package pad

// space is the byte whose XOR with a letter flips only the case bit.
const space = ' '

// tally holds the vote count for every candidate pad byte at one position.
type tally [256]uint64

// Engine infers a reused one-time pad from ciphertexts that share it.
//
// Every ciphertext is compared against every ciphertext submitted before it.
// When two ciphertext bytes XOR to an ASCII letter, one of the plaintexts most
// likely held a space at that position, so both ciphertext bytes XOR a space
// are recorded as pad candidates. The pad byte at a position is the candidate
// with the most votes.
//
// Engine is not safe for concurrent use. Callers that share an engine across
// goroutines must hold an exclusive lock around every call.
type Engine struct {
	votes       []tally
	ciphertexts [][]byte
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Submit records a ciphertext that is believed to use the same pad as the
// ciphertexts submitted before it. Any byte sequence is accepted, including
// an empty one.
func (e *Engine) Submit(ciphertext []byte) {
	for len(e.votes) < len(ciphertext) {
		e.votes = append(e.votes, tally{})
	}

	for _, prior := range e.ciphertexts {
		n := min(len(ciphertext), len(prior))
		for k := 0; k < n; k++ {
			if !isLetter(ciphertext[k] ^ prior[k]) {
				continue
			}
			e.votes[k][ciphertext[k]^space]++
			e.votes[k][prior[k]^space]++
		}
	}

	e.ciphertexts = append(e.ciphertexts, append([]byte(nil), ciphertext...))
}

// Decode applies the most likely pad to target. The result is
// min(len(target), Len()) bytes long and every byte is 7-bit.
func (e *Engine) Decode(target []byte) []byte {
	return ApplyPad(target, e.Pad())
}

// DecodeAll decodes every submitted ciphertext, in submission order.
func (e *Engine) DecodeAll() [][]byte {
	pad := e.Pad()
	out := make([][]byte, len(e.ciphertexts))
	for i, c := range e.ciphertexts {
		out[i] = ApplyPad(c, pad)
	}
	return out
}

// Pad returns the most likely pad, one byte per position of the vote table.
// Positions without evidence yield 0x00. When several candidates share the
// highest count, the smallest byte value wins.
func (e *Engine) Pad() []byte {
	pad := make([]byte, len(e.votes))
	for i := range e.votes {
		pad[i] = e.votes[i].best()
	}
	return pad
}

// Len returns the length of the vote table, which is the length of the
// longest ciphertext submitted so far.
func (e *Engine) Len() int {
	return len(e.votes)
}

// Count returns the number of submitted ciphertexts.
func (e *Engine) Count() int {
	return len(e.ciphertexts)
}

// Votes returns a copy of the vote counts at position i, indexed by
// candidate pad byte. Out-of-range positions have no votes.
func (e *Engine) Votes(i int) [256]uint64 {
	if i < 0 || i >= len(e.votes) {
		return [256]uint64{}
	}
	return e.votes[i]
}

// Mass returns the total number of votes cast at position i.
func (e *Engine) Mass(i int) uint64 {
	if i < 0 || i >= len(e.votes) {
		return 0
	}
	return e.votes[i].mass()
}

// Stats summarises the evidence collected so far.
type Stats struct {
	Ciphertexts int
	Positions   int
	// Covered counts positions with at least one vote.
	Covered int
	// Tied counts positions where two or more candidates share the highest
	// non-zero count.
	Tied      int
	TotalMass uint64
}

// Stats returns a summary of the vote table.
func (e *Engine) Stats() Stats {
	st := Stats{
		Ciphertexts: len(e.ciphertexts),
		Positions:   len(e.votes),
	}
	for i := range e.votes {
		m := e.votes[i].mass()
		if m == 0 {
			continue
		}
		st.Covered++
		st.TotalMass += m
		if e.votes[i].tied() {
			st.Tied++
		}
	}
	return st
}

func (t *tally) best() byte {
	var (
		candidate byte
		most      uint64
	)
	for b, n := range t {
		if n > most {
			candidate = byte(b)
			most = n
		}
	}
	return candidate
}

func (t *tally) mass() uint64 {
	var m uint64
	for _, n := range t {
		m += n
	}
	return m
}

func (t *tally) tied() bool {
	most := t[t.best()]
	if most == 0 {
		return false
	}
	seen := 0
	for _, n := range t {
		if n == most {
			seen++
		}
	}
	return seen > 1
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
