package hasher

// Params are the Argon2id cost parameters recorded in every PHC string this
// package produces. Stored hashes may carry different historical parameters;
// Verify always honors the parameters embedded in the hash itself.
type Params struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32 // bytes
	KeyLength   uint32 // bytes
}

// DefaultParams returns the current target cost parameters: 64 MiB memory,
// 3 iterations, 1 lane.
func DefaultParams() Params {
	return Params{
		Memory:      64 * 1024,
		Time:        3,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Hasher derives and verifies peppered Argon2id password digests.
// A Hasher is immutable after construction and safe for concurrent use.
type Hasher struct {
	params Params
	pepper []byte
}
