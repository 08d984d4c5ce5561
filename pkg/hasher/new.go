package hasher

import "errors"

const (
	minMemoryKB    uint32 = 8 * 1024
	minTimeCost    uint32 = 1
	minParallelism uint8  = 1
	minSaltLength  uint32 = 16
	minKeyLength   uint32 = 16
)

// New creates a Hasher with the given cost parameters. The pepper is an
// optional process-wide secret keyed into every digest; nil disables it.
// The pepper slice is copied so the caller may discard its buffer.
func New(params Params, pepper []byte) (*Hasher, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	h := &Hasher{params: params}
	if len(pepper) > 0 {
		h.pepper = make([]byte, len(pepper))
		copy(h.pepper, pepper)
	}
	return h, nil
}

func validateParams(p Params) error {
	if p.Memory < minMemoryKB {
		return errors.New("hasher: memory must be >= 8192 KiB")
	}
	if p.Time < minTimeCost {
		return errors.New("hasher: time cost must be >= 1")
	}
	if p.Parallelism < minParallelism {
		return errors.New("hasher: parallelism must be >= 1")
	}
	if p.SaltLength < minSaltLength {
		return errors.New("hasher: salt length must be >= 16 bytes")
	}
	if p.KeyLength < minKeyLength {
		return errors.New("hasher: key length must be >= 16 bytes")
	}
	return nil
}
