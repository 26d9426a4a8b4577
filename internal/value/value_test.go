package value

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewNonEmpty_RejectsEmpty(t *testing.T) {
	_, err := NewSymbol("")
	require.ErrorIs(t, err, ErrEmptyString)
	require.Contains(t, err.Error(), "Symbol")

	_, err = NewNonEmptyString("")
	require.ErrorIs(t, err, ErrEmptyString)
}

func TestNewNonEmpty_ComparesAgainstLiteral(t *testing.T) {
	s, err := NewSymbol("X1-ZA40")
	require.NoError(t, err)
	require.True(t, s.Equal("X1-ZA40"))
	require.False(t, s.Equal("X1-ZA41"))
	require.Equal(t, "X1-ZA40", s.String())
	require.False(t, s.IsZero())
}

func TestNonEmpty_UnmarshalRejectsEmptyAndNull(t *testing.T) {
	var payload struct {
		Symbol Symbol `json:"symbol"`
	}
	err := json.Unmarshal([]byte(`{"symbol": ""}`), &payload)
	require.ErrorIs(t, err, ErrEmptyString)

	err = json.Unmarshal([]byte(`{"symbol": null}`), &payload)
	require.ErrorIs(t, err, ErrEmptyString)

	err = json.Unmarshal([]byte(`{"symbol": 12}`), &payload)
	require.Error(t, err)
}

func TestNonEmpty_MarshalZeroFails(t *testing.T) {
	var zero Name
	_, err := json.Marshal(zero)
	require.ErrorIs(t, err, ErrEmptyString)
}

func TestProperty_NonEmptyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.StringN(1, 64, -1).Draw(t, "raw")

		s, err := NewNonEmptyString(raw)
		require.NoError(t, err)

		data, err := json.Marshal(s)
		require.NoError(t, err)

		var back NonEmptyString
		require.NoError(t, json.Unmarshal(data, &back))
		require.Equal(t, raw, back.String())
		require.Equal(t, s, back)
	})
}

func TestBoundedInt_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		ok    bool
	}{
		{name: "below min", value: 0, ok: false},
		{name: "min", value: 1, ok: true},
		{name: "middle", value: 10, ok: true},
		{name: "max", value: 20, ok: true},
		{name: "above max", value: 21, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewPageLimit(tt.value)
			if !tt.ok {
				require.ErrorIs(t, err, ErrOutOfRange)
				var rangeErr *RangeError
				require.True(t, errors.As(err, &rangeErr))
				require.Equal(t, tt.value, rangeErr.Value)
				require.Contains(t, err.Error(), "[1,20]")
				return
			}
			require.NoError(t, err)
			require.True(t, v.Equal(tt.value))
		})
	}
}

func TestLowerBoundInt_ErrorNamesBound(t *testing.T) {
	_, err := NewNonNegative(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Contains(t, err.Error(), "greater than or equal to 0")
}

func TestUpperBoundInt_ErrorNamesBound(t *testing.T) {
	_, err := NewUpperBoundInt[Hundred](101)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Contains(t, err.Error(), "less than or equal to 100")

	v, err := NewUpperBoundInt[Hundred](math.MinInt64)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v.Int64())
}

func TestProperty_BoundedIntAcceptsExactlyTheRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int64Range(-1000, 1000).Draw(t, "v")

		_, err := NewBoundedInt[Zero, Hundred](v)
		if v >= 0 && v <= 100 {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, ErrOutOfRange)
		}

		_, err = NewLowerBoundInt[One](v)
		require.Equal(t, v >= 1, err == nil)

		_, err = NewUpperBoundInt[Twenty](v)
		require.Equal(t, v <= 20, err == nil)
	})
}

func TestProperty_BoundedIntJSONMatchesConstructor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int64().Draw(t, "v")
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var decoded Percent
		decodeErr := json.Unmarshal(data, &decoded)
		_, ctorErr := NewBoundedInt[Zero, Hundred](v)
		require.Equal(t, ctorErr == nil, decodeErr == nil)
		if decodeErr == nil {
			require.True(t, decoded.Equal(v))
		}
	})
}

func TestIntUnmarshal_RejectsNonIntegers(t *testing.T) {
	for _, input := range []string{`"5"`, `null`, `1.5`, `true`, `[]`} {
		var n NonNegative
		require.Error(t, json.Unmarshal([]byte(input), &n), input)
	}

	var n NonNegative
	require.NoError(t, json.Unmarshal([]byte(`60`), &n))
	require.True(t, n.Equal(60))
	for _, input := range []string{`60.0`, `6e1`, `6E1`} {
		require.Error(t, json.Unmarshal([]byte(input), &n), input)
	}
	require.True(t, n.Equal(60), "a failed decode leaves the value untouched")
}

func TestIntUnmarshal_RejectsValuesBeyondInt64(t *testing.T) {
	for _, input := range []string{
		`9223372036854775808`,
		`-9223372036854775809`,
		`9.223372036854775808e18`,
		`18446744073709551616`,
	} {
		var upper UpperBoundInt[Hundred]
		err := json.Unmarshal([]byte(input), &upper)
		require.Error(t, err, input)
		require.Zero(t, upper.Int64(), input)
	}

	var upper UpperBoundInt[Hundred]
	require.NoError(t, json.Unmarshal([]byte(`-9223372036854775808`), &upper))
	require.Equal(t, int64(math.MinInt64), upper.Int64())
}

func TestIntUnmarshal_InsideRecord(t *testing.T) {
	var payload struct {
		V1 LowerBoundInt[Twenty] `json:"v1"`
		V2 UpperBoundInt[Hundred] `json:"v2"`
		V3 BoundedInt[One, Twenty] `json:"v3"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"v1": 20, "v2": 100, "v3": 3}`), &payload))
	require.Equal(t, int64(20), payload.V1.Int64())
	require.Equal(t, int64(100), payload.V2.Int64())
	require.Equal(t, int64(3), payload.V3.Int64())

	err := json.Unmarshal([]byte(`{"v1": 19, "v2": 100, "v3": 3}`), &payload)
	require.ErrorIs(t, err, ErrOutOfRange)
}
