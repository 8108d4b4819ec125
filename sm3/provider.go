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
Description: Pluggable SM3 backend selection for the sm3 adapter package.
*/

package sm3

import (
	"encoding"
	"encoding/hex"
	"errors"
	"hash"
	"sync/atomic"

	gmsm3 "github.com/emmansun/gmsm/sm3"
	tjsm3 "github.com/tjfoc/gmsm/sm3"

	"gitee.com/openeuler/gmcrypto/common/logger"
)

const (
	// the digest of the ascii string "abc", defined in GB/T 32905-2016.
	abcDigestHex = "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0"
)

var (
	// error definition
	// ErrNilProvider means the candidate provider is absent
	ErrNilProvider = errors.New("nil sm3 provider")
	// ErrDigestSize means the candidate doesn't produce a 32 byte digest
	ErrDigestSize = errors.New("sm3 provider digest size is not 32 bytes")
	// ErrNoStateCodec means the candidate can't serialize its running state
	ErrNoStateCodec = errors.New("sm3 provider doesn't support state serialization")
	// ErrKnownAnswer means the candidate fails the GB/T 32905 test vector
	ErrKnownAnswer = errors.New("sm3 provider fails the known answer test")
)

// Provider supplies a conformant SM3 implementation to back the
// adapter operations. Any implementation producing the standard
// 32-byte SM3 digest may serve; streaming context operations
// additionally need the returned hash to support
// encoding.BinaryMarshaler/BinaryUnmarshaler for its running state.
type Provider interface {
	NewSm3() hash.Hash
}

// GmsmProvider backs the adapter with github.com/emmansun/gmsm,
// which serializes its running state. It is the default backend.
type GmsmProvider struct{}

// NewSm3 returns a new emmansun/gmsm SM3 hash instance.
func (gp *GmsmProvider) NewSm3() hash.Hash {
	return gmsm3.New()
}

// TjfocProvider backs one-shot hashing with github.com/tjfoc/gmsm.
// Its digest doesn't expose the running state, so UseProvider
// rejects it for the streaming context operations.
type TjfocProvider struct{}

// NewSm3 returns a new tjfoc/gmsm SM3 hash instance.
func (tp *TjfocProvider) NewSm3() hash.Hash {
	return tjsm3.New()
}

// backend is the verified provider with its serialized state size.
type backend struct {
	prov Provider
	size int
}

var active atomic.Value

func init() {
	b, err := verifyProvider(&GmsmProvider{})
	if err != nil {
		// the default backend is known good, so this only trips on
		// an incompatible library upgrade.
		panic(err)
	}
	active.Store(b)
}

func loadBackend() backend {
	return active.Load().(backend)
}

// verifyProvider checks a candidate backend: digest size, running
// state serialization and the "abc" known answer vector, then
// measures its context size from a freshly initialized state.
func verifyProvider(p Provider) (backend, error) {
	if p == nil {
		return backend{}, ErrNilProvider
	}
	h := p.NewSm3()
	if h == nil || h.Size() != Size {
		return backend{}, ErrDigestSize
	}
	m, ok := h.(encoding.BinaryMarshaler)
	if !ok {
		return backend{}, ErrNoStateCodec
	}
	if _, ok := h.(encoding.BinaryUnmarshaler); !ok {
		return backend{}, ErrNoStateCodec
	}
	state, err := m.MarshalBinary()
	if err != nil || len(state) == 0 {
		return backend{}, ErrNoStateCodec
	}
	if _, err := h.Write([]byte("abc")); err != nil {
		return backend{}, ErrKnownAnswer
	}
	if hex.EncodeToString(h.Sum(nil)) != abcDigestHex {
		return backend{}, ErrKnownAnswer
	}
	return backend{prov: p, size: len(state)}, nil
}

// UseProvider verifies the candidate provider and switches the
// adapter to it. The switch is atomic with respect to all hash
// operations, but contexts initialized under the previous backend
// become invalid and fail on their next operation.
func UseProvider(p Provider) error {
	b, err := verifyProvider(p)
	if err != nil {
		logger.L.Sugar().Errorf("sm3 provider rejected, %s", err)
		return err
	}
	active.Store(b)
	logger.L.Sugar().Infof("sm3 provider switched, context size %d", b.size)
	return nil
}
