package pkcs1v15

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func Test_Decode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want *big.Int
	}{
		{name: "single byte", in: []byte{0x01}, want: big.NewInt(1)},
		{name: "leading zero", in: []byte{0x00, 0x01}, want: big.NewInt(1)},
		{name: "all zero", in: []byte{0x00, 0x00, 0x00}, want: big.NewInt(0)},
		{name: "high bit set", in: []byte{0xff, 0x00}, want: big.NewInt(0xff00)},
		{name: "modulus sized", in: bytes.Repeat([]byte{0x5a}, 256), want: new(big.Int).SetBytes(bytes.Repeat([]byte{0x5a}, 256))},
		{name: "widest accepted", in: append([]byte{0x00}, bytes.Repeat([]byte{0x01}, MaxSize-1)...), want: new(big.Int).SetBytes(bytes.Repeat([]byte{0x01}, MaxSize-1))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sig, err := Decode(tc.in)
			require.NoError(t, err)
			assert.Equal(t, len(tc.in), sig.Size())
			assert.Zero(t, tc.want.Cmp(sig.Int()), "got %s", sig.Int())
			assert.Equal(t, tc.in, sig.Bytes())

			again, err := Decode(sig.Bytes())
			require.NoError(t, err)
			assert.True(t, sig.Equal(again))
		})
	}
}

func Test_Decode_DoesNotAliasInput(t *testing.T) {
	in := []byte{0x12, 0x34}
	sig, err := Decode(in)
	require.NoError(t, err)
	in[0] = 0xff
	assert.Equal(t, []byte{0x12, 0x34}, sig.Bytes())
}

func Test_Decode_Errors(t *testing.T) {
	for name, in := range map[string][]byte{
		"nil":      nil,
		"empty":    {},
		"too wide": make([]byte, MaxSize+1),
	} {
		t.Run(name, func(t *testing.T) {
			sig, err := Decode(in)
			require.ErrorIs(t, err, ErrInvalidEncoding)
			require.Nil(t, sig)
		})
	}
}

func Test_FromInt(t *testing.T) {
	t.Run("pads to width", func(t *testing.T) {
		sig := FromInt(big.NewInt(255), 4)
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0xff}, sig.Bytes())
		assert.Equal(t, 4, sig.Size())
	})

	t.Run("deterministic", func(t *testing.T) {
		v := new(big.Int).Lsh(big.NewInt(0xabcdef), 1000)
		a, b := FromInt(v, 256), FromInt(v, 256)
		assert.Equal(t, a.Bytes(), b.Bytes())
		assert.Equal(t, a.Bytes(), a.Bytes())
	})

	t.Run("copies the value", func(t *testing.T) {
		v := big.NewInt(7)
		sig := FromInt(v, 1)
		v.SetInt64(9)
		assert.Equal(t, []byte{0x07}, sig.Bytes())

		out := sig.Int()
		out.SetInt64(11)
		assert.Equal(t, []byte{0x07}, sig.Bytes())
	})

	t.Run("round trips through decode", func(t *testing.T) {
		sig := FromInt(big.NewInt(0x0102), 3)
		decoded, err := Decode(sig.Bytes())
		require.NoError(t, err)
		assert.True(t, sig.Equal(decoded))
	})

	t.Run("value wider than size panics", func(t *testing.T) {
		sig := FromInt(big.NewInt(256), 1)
		assert.PanicsWithValue(t, "pkcs1v15: signature value of 9 bits does not fit in 1 bytes", func() {
			_ = sig.Bytes()
		})
	})

	t.Run("negative value panics", func(t *testing.T) {
		sig := FromInt(big.NewInt(-1), 4)
		assert.Panics(t, func() { _ = sig.Bytes() })
	})
}

func Test_Equal(t *testing.T) {
	short, err := Decode([]byte{0x01})
	require.NoError(t, err)
	long, err := Decode([]byte{0x00, 0x01})
	require.NoError(t, err)

	assert.Zero(t, short.Int().Cmp(long.Int()))
	assert.False(t, short.Equal(long))
	assert.False(t, long.Equal(short))
	assert.True(t, short.Equal(FromInt(big.NewInt(1), 1)))
	assert.False(t, short.Equal(FromInt(big.NewInt(2), 1)))
	assert.False(t, short.Equal(nil))
	assert.True(t, (*Signature)(nil).Equal(nil))
}

func Test_Format(t *testing.T) {
	sig := FromInt(big.NewInt(0xab), 1)

	assert.Equal(t, "ab", sig.Hex(false))
	assert.Equal(t, "AB", sig.Hex(true))
	assert.Equal(t, "AB", sig.String())
	assert.Equal(t, sig.Hex(true), sig.String())
	assert.Equal(t, `Signature("ab")`, sig.GoString())

	for verb, want := range map[string]string{
		"%x":  "ab",
		"%X":  "AB",
		"%v":  "AB",
		"%s":  "AB",
		"%q":  `"AB"`,
		"%#v": `Signature("ab")`,
		"%d":  "%!d(pkcs1v15.Signature=AB)",
	} {
		assert.Equal(t, want, fmt.Sprintf(verb, sig), verb)
	}

	t.Run("padding is rendered", func(t *testing.T) {
		sig, err := Decode([]byte{0x00, 0x0f, 0xa0})
		require.NoError(t, err)
		assert.Equal(t, "000fa0", sig.Hex(false))
		assert.Equal(t, "000FA0", sig.String())
	})
}

func Test_LogValue(t *testing.T) {
	sig, err := Decode([]byte{0x00, 0xab})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("signed", "signature", sig)

	out := buf.String()
	assert.True(t, strings.Contains(out, "signature.size=2"), out)
	assert.True(t, strings.Contains(out, "signature.value=00ab"), out)
}

func Test_ConcurrentUse(t *testing.T) {
	in := append([]byte{0x00, 0x00}, bytes.Repeat([]byte{0xc3}, 254)...)
	sig, err := Decode(in)
	require.NoError(t, err)

	var g errgroup.Group
	for range 32 {
		g.Go(func() error {
			if !bytes.Equal(in, sig.Bytes()) {
				return errors.New("encoding changed under concurrent use")
			}
			if sig.Hex(false) != strings.ToLower(sig.String()) {
				return errors.New("hex forms disagree")
			}
			der, err := sig.MarshalBitString()
			if err != nil {
				return err
			}
			parsed, err := ParseBitString(der)
			if err != nil {
				return err
			}
			if !parsed.Equal(sig) {
				return errors.New("bit string round trip changed the signature")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
