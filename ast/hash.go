package ast

import "github.com/minio/highwayhash"

// hashKey is a fixed 32-byte key: HighwayHash requires a 256-bit key, and
// a fixed key is fine here because the hash is only ever used as a local
// content-address (emitcache), never as a security boundary.
var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash64 returns the HighwayHash-64 digest of data, used by emitcache to
// key a per-file emitted-output memo on the source text. Compiler options
// are not part of what emitcache hashes.
func Hash64(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}
