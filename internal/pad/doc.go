// Package pad recovers plaintext encrypted under a reused one-time pad.
//
// A one-time pad is only secure when it is never reused. When the same pad
// encrypts several messages, XORing two ciphertexts cancels the pad and leaves
// the XOR of the two plaintexts. English text is mostly letters and spaces,
// and a space XOR a letter is that letter with its case flipped, so a
// ciphertext pair that XORs to a letter reveals a likely space in one of the
// two messages, and with it a likely pad byte.
//
// Engine collects those candidates as votes, one tally per byte position,
// and derives the pad from the best-supported candidate at each position.
package pad
