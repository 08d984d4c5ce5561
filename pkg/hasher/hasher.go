package hasher

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/argon2"
)

// Hash derives a fresh salted digest for password and returns it as a PHC
// string. A new random salt is generated on every call, so two hashes of the
// same password never match textually. The password buffer is zeroed before
// returning, success or not.
func (h *Hasher) Hash(password []byte) (string, error) {
	defer wipe(password)

	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	material := h.keyMaterial(password)
	defer wipe(material)

	key := argon2.IDKey(material, salt, h.params.Time, h.params.Memory, h.params.Parallelism, h.params.KeyLength)
	return encodePHC(h.params, salt, key), nil
}

// Verify reports whether password matches the stored PHC hash. The cost
// parameters are taken from the stored string, so hashes produced under
// older parameters still verify. Malformed input verifies as false; no
// parse detail escapes to the caller. The password buffer is zeroed.
func (h *Hasher) Verify(password []byte, encoded string) bool {
	defer wipe(password)

	parsed, err := parsePHC(encoded)
	if err != nil {
		return false
	}

	material := h.keyMaterial(password)
	defer wipe(material)

	key := argon2.IDKey(material, parsed.salt, parsed.time, parsed.memory, parsed.parallelism, parsed.keyLength)
	return subtle.ConstantTimeCompare(key, parsed.hash) == 1
}

// NeedsRehash reports whether the stored hash was produced under parameters
// weaker than the current target, or cannot be parsed at all. Advisory: the
// caller decides when to re-hash, typically after a successful login.
func (h *Hasher) NeedsRehash(encoded string) bool {
	parsed, err := parsePHC(encoded)
	if err != nil {
		return true
	}
	return parsed.memory != h.params.Memory ||
		parsed.time != h.params.Time ||
		parsed.parallelism != h.params.Parallelism ||
		parsed.keyLength != h.params.KeyLength
}

// keyMaterial returns the bytes fed to the KDF. With a pepper configured the
// password is keyed through HMAC-SHA256 first, so the pepper acts as secret
// key material rather than a plaintext suffix: without it, the salt alone is
// not enough to test candidate passwords against a leaked digest.
func (h *Hasher) keyMaterial(password []byte) []byte {
	if len(h.pepper) == 0 {
		out := make([]byte, len(password))
		copy(out, password)
		return out
	}
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write(password)
	return mac.Sum(nil)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
