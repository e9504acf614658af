// Package numtheory provides arbitrary-precision number-theoretic primitives
// used as building blocks for public-key cryptography: modular exponentiation,
// probabilistic primality testing (Miller-Rabin), prime candidate search, and
// extended-Euclidean (Bézout) computation.
//
// The package is a pure computation library: it holds no persistent state,
// performs no I/O beyond reading the configured random source, and is intended
// to be consumed by higher-level key-generation or protocol code. All values
// are math/big integers; witnesses are sampled from crypto/rand by default.
//
// Primality results are probabilistic. After k rounds of Miller-Rabin the
// probability of misreporting a composite as "probably prime" is at most 4^-k;
// callers control this bound through the rounds parameter.
package numtheory
