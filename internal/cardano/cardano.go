// Package cardano implements C5: deterministic derivation from a
// BIP-39 index tuple to a Cardano bech32 stake address, via CIP-3
// (Icarus) master-key derivation and BIP32-Ed25519 child derivation
// along the stake path m/1852'/1815'/0'/2/0. Every function here is
// pure and allocation-light; it is the hot inner loop of the search.
package cardano

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"math/big"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/pbkdf2"

	"github.com/heptasean/seedrecover/internal/checksum"
)

// ErrDerivationDegenerate is returned when a child key derivation
// produces an out-of-range scalar (top three bits of the resulting
// kL set). This is vanishingly rare; callers skip the candidate.
var ErrDerivationDegenerate = errors.New("cardano: degenerate child key derivation")

// derivationStep is one level of a BIP32-Ed25519 path.
type derivationStep struct {
	Index    uint32
	Hardened bool
}

// StakePath is CIP-3's stake-key path: m/1852'/1815'/0'/2/0.
var StakePath = []derivationStep{
	{1852, true},
	{1815, true},
	{0, true},
	{2, false},
	{0, false},
}

// mod256 is 2^256, the modulus for all extended-key arithmetic.
var mod256 = new(big.Int).Lsh(big.NewInt(1), 256)

// Entropy delegates to checksum.Entropy: the first pipeline step,
// "mnemonic index tuple to entropy bytes", belongs to C3.
func Entropy(indices []int) ([]byte, error) {
	return checksum.Entropy(indices)
}

// MasterKey computes the CIP-3 Icarus root key: PBKDF2-HMAC-SHA512
// with the (usually empty) BIP-39 passphrase as password and the
// entropy as salt, stretched to 96 bytes and masked into a valid BIP32-Ed25519 scalar
// pair plus chain code.
func MasterKey(entropy []byte, passphrase string) (kL, kR, chainCode [32]byte) {
	key := pbkdf2.Key([]byte(passphrase), entropy, 4096, 96, sha512.New)
	copy(kL[:], key[:32])
	copy(kR[:], key[32:64])
	copy(chainCode[:], key[64:96])

	kL[0] &= 0b11111000
	kL[31] &= 0b00011111
	kL[31] |= 0b01000000
	return kL, kR, chainCode
}

// DeriveChild computes one BIP32-Ed25519 derivation step. index is
// the level's logical index (e.g. 1852); hardened selects both the
// domain-separation byte and whether the high bit is set in the
// 4-byte little-endian index fed to HMAC-SHA512.
func DeriveChild(kL, kR, chainCode [32]byte, index uint32, hardened bool) (ckL, ckR, cChainCode [32]byte, err error) {
	idx := index
	var zDomain, ccDomain byte
	var payload []byte
	if hardened {
		idx |= 0x80000000
		zDomain, ccDomain = 0x00, 0x01
		payload = append(append([]byte{}, kL[:]...), kR[:]...)
	} else {
		zDomain, ccDomain = 0x02, 0x03
		pub, perr := PublicKey(kL)
		if perr != nil {
			return ckL, ckR, cChainCode, perr
		}
		payload = pub[:]
	}

	idxBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(idxBytes, idx)

	z := hmacSHA512(chainCode[:], zDomain, payload, idxBytes)
	cc := hmacSHA512(chainCode[:], ccDomain, payload, idxBytes)
	copy(cChainCode[:], cc[32:64])

	zlLow := append(append([]byte{}, z[:28]...), make([]byte, 4)...)
	zl := leToBig(zlLow)
	zr := leToBig(z[32:64])
	left := addMod256(new(big.Int).Mul(zl, big.NewInt(8)), leToBig(kL[:]))
	right := addMod256(zr, leToBig(kR[:]))

	ckL = bigToLE32(left)
	ckR = bigToLE32(right)
	if ckL[31]&0b11100000 != 0 {
		return ckL, ckR, cChainCode, ErrDerivationDegenerate
	}
	return ckL, ckR, cChainCode, nil
}

func hmacSHA512(key []byte, domain byte, payload, idx []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write([]byte{domain})
	mac.Write(payload)
	mac.Write(idx)
	return mac.Sum(nil)
}

// leToBig interprets b as a little-endian unsigned integer.
func leToBig(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

// bigToLE32 renders n, already reduced mod 2^256, as 32 little-endian
// bytes.
func bigToLE32(n *big.Int) [32]byte {
	be := n.Bytes()
	var out [32]byte
	for i, v := range be {
		out[len(be)-1-i] = v
	}
	return out
}

func addMod256(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), mod256)
}

// PublicKey computes the Ed25519 public point A = kL * B, where B is
// the Ed25519 base point, clamped per BIP32-Ed25519.
func PublicKey(kL [32]byte) ([32]byte, error) {
	var s edwards25519.Scalar
	if _, err := s.SetBytesWithClamping(kL[:]); err != nil {
		var zero [32]byte
		return zero, err
	}
	p := new(edwards25519.Point).ScalarBaseMult(&s)
	var out [32]byte
	copy(out[:], p.Bytes())
	return out, nil
}

// StakeAddress runs the full C5 pipeline: index tuple to entropy, to
// the Icarus root key, through the stake-key derivation path, to the
// Ed25519 public key, to the blake2b-224 key hash, to a bech32
// mainnet reward address.
func StakeAddress(indices []int, passphrase string) (string, error) {
	entropy, err := checksum.Entropy(indices)
	if err != nil {
		return "", err
	}

	kL, kR, chainCode := MasterKey(entropy, passphrase)
	for _, step := range StakePath {
		kL, kR, chainCode, err = DeriveChild(kL, kR, chainCode, step.Index, step.Hardened)
		if err != nil {
			return "", err
		}
	}

	pub, err := PublicKey(kL)
	if err != nil {
		return "", err
	}

	hasher, err := blake2b.New(28, nil)
	if err != nil {
		return "", err
	}
	hasher.Write(pub[:])
	keyHash := hasher.Sum(nil)

	payload := append([]byte{0xE1}, keyHash...)
	five, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode("stake", five)
}
