/*
gmcrypto licensed under the Mulan PSL v2.
You can use this software according to the terms and conditions of
the Mulan PSL v2. You may obtain a copy of Mulan PSL v2 at:
    http://license.coscl.org.cn/MulanPSL2
THIS SOFTWARE IS PROVIDED ON AN "AS IS" BASIS, WITHOUT WARRANTIES OF ANY KIND,
EITHER EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO NON-INFRINGEMENT,
MERCHANTABILITY OR FIT FOR A PARTICULAR PURPOSE.
See the Mulan PSL v2 for more details.

Author: wucaijun/lixinda
Create: 2022-03-02
Description: SM3 digest adapter over a pluggable backend library.
*/

// sm3 package exposes SM3 hash operations over a caller-allocated,
// opaque context region, delegating all digest computation to the
// selected backend library. The context holds the backend's running
// state (chaining value, buffered partial block, length counter) and
// is owned by the caller: the package never allocates or frees it.
//
// A context moves through Init -> zero or more Update -> Final. Final
// consumes the context; it must not be reused afterwards. Every
// operation reports success as a bare boolean, the single failure
// class being an unusable argument.
package sm3

import (
	"encoding"
	"hash"
)

const (
	// Size is the byte length of an SM3 digest.
	Size = 32
)

// GetContextSize returns the byte size a caller must allocate for a
// hash context. The value is fixed for a given backend and derived
// from its serialized running state, never hard-coded here.
func GetContextSize() int {
	return loadBackend().size
}

// restore rebuilds a backend hash instance from the state bytes held
// in ctx. It fails on a region that was never initialized, was
// consumed by Final, or belongs to a different backend.
func restore(b backend, ctx []byte) (hash.Hash, bool) {
	h := b.prov.NewSm3()
	u, ok := h.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, false
	}
	if err := u.UnmarshalBinary(ctx[:b.size]); err != nil {
		return nil, false
	}
	return h, true
}

// save serializes the running state of h back into ctx.
func save(ctx []byte, h hash.Hash, size int) bool {
	m, ok := h.(encoding.BinaryMarshaler)
	if !ok {
		return false
	}
	state, err := m.MarshalBinary()
	if err != nil || len(state) != size {
		return false
	}
	copy(ctx, state)
	return true
}

// Init prepares the caller-allocated region ctx as a fresh hash
// context holding the backend's initial state for an empty hash.
// It returns false, leaving ctx untouched, if ctx is nil or shorter
// than GetContextSize().
func Init(ctx []byte) bool {
	b := loadBackend()
	if len(ctx) < b.size {
		return false
	}
	return save(ctx, b.prov.NewSm3(), b.size)
}

// Duplicate copies the full in-progress state of ctx into newCtx,
// byte for byte, overwriting newCtx's prior contents. It returns
// false if either region is nil or shorter than GetContextSize().
// The source is not validated beyond its length; duplicating an
// uninitialized region yields an equally unusable copy.
func Duplicate(ctx, newCtx []byte) bool {
	size := GetContextSize()
	if len(ctx) < size || len(newCtx) < size {
		return false
	}
	copy(newCtx[:size], ctx[:size])
	return true
}

// Update feeds data into the running hash state held in ctx. It may
// be called repeatedly to digest long or discontinuous streams. A nil
// or empty data slice is a permitted no-op. It returns false if ctx
// is nil, shorter than GetContextSize(), or doesn't hold a usable
// state (never initialized, or already consumed by Final).
func Update(ctx, data []byte) bool {
	b := loadBackend()
	if len(ctx) < b.size {
		return false
	}
	h, ok := restore(b, ctx)
	if !ok {
		return false
	}
	// hash.Hash.Write never returns an error.
	h.Write(data)
	return save(ctx, h, b.size)
}

// Final completes the computation, writes the 32-byte digest into
// hashValue and consumes ctx: the region is wiped so any further
// Update/Final on it fails. It returns false if ctx is nil, shorter
// than GetContextSize(), unusable, or if hashValue is nil or shorter
// than Size bytes.
func Final(ctx, hashValue []byte) bool {
	b := loadBackend()
	if len(ctx) < b.size || len(hashValue) < Size {
		return false
	}
	h, ok := restore(b, ctx)
	if !ok {
		return false
	}
	copy(hashValue[:Size], h.Sum(nil))
	for i := range ctx[:b.size] {
		ctx[i] = 0
	}
	return true
}

// HashAll digests data in one shot, equivalent to Init + Update +
// Final on a transient context, and writes the 32-byte digest into
// hashValue. A nil data slice digests the empty input. It returns
// false only if hashValue is nil or shorter than Size bytes; once
// the arguments pass there is no failure path.
func HashAll(data, hashValue []byte) bool {
	if len(hashValue) < Size {
		return false
	}
	h := loadBackend().prov.NewSm3()
	h.Write(data)
	copy(hashValue[:Size], h.Sum(nil))
	return true
}
