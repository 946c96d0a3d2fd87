package flagenum

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/smartenum/enum"
)

type flag struct{ enum.Entry[int] }

func newFlag(name string, value int) flag {
	return flag{enum.NewEntry(name, value)}
}

// Explicit combination and explicit "All" sentinel.
var mixed = New[flag, int]("Flags", AllowNegativeInput(), AllowUnsafeValues())

var (
	mixedNone = mixed.MustRegister(newFlag("None", 0))
	mixedA    = mixed.MustRegister(newFlag("A", 1))
	mixedB    = mixed.MustRegister(newFlag("B", 2))
	mixedC    = mixed.MustRegister(newFlag("C", 4))
	mixedAB   = mixed.MustRegister(newFlag("AB", 3))
	mixedAll  = mixed.MustRegister(newFlag("All", -1))
)

func newStrict(t *testing.T, opts ...Option) (*Set[flag, int], flag, flag, flag) {
	t.Helper()
	s := New[flag, int]("Strict", opts...)
	a := s.MustRegister(newFlag("A", 1))
	b := s.MustRegister(newFlag("B", 2))
	c := s.MustRegister(newFlag("C", 4))
	return s, a, b, c
}

func TestStrictDecomposition(t *testing.T) {
	s, a, b, _ := newStrict(t)

	got, err := s.FromValue(3)
	require.NoError(t, err)
	assert.Equal(t, []flag{b, a}, got)

	str, err := s.FromValueToString(3)
	require.NoError(t, err)
	assert.Equal(t, "B, A", str)

	parsed, err := s.FromName("B, A", false)
	require.NoError(t, err)
	assert.Equal(t, []flag{b, a}, parsed)
	assert.Equal(t, 3, s.Or(parsed...))
}

func TestDecompositionIsDescending(t *testing.T) {
	s, a, b, c := newStrict(t)

	got, err := s.FromValue(7)
	require.NoError(t, err)
	assert.Equal(t, []flag{c, b, a}, got)

	got, err = s.FromValue(5)
	require.NoError(t, err)
	assert.Equal(t, []flag{c, a}, got)
}

func TestSingleFlagIsExactMatch(t *testing.T) {
	s, _, b, _ := newStrict(t)

	got, err := s.FromValue(2)
	require.NoError(t, err)
	assert.Equal(t, []flag{b}, got)
}

func TestNotPowerOfTwo(t *testing.T) {
	s := New[flag, int]("Bad")
	s.MustRegister(newFlag("A", 1))
	_, err := s.Register(newFlag("B", 3))
	require.NoError(t, err, "definition errors surface on first flag query, not registration")

	_, err = s.List()
	require.Error(t, err)
	assert.ErrorIs(t, err, enum.ErrNotPowerOfTwo)

	var enumErr *enum.Error
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "B", enumErr.Name)
	assert.Equal(t, "3", enumErr.Value)
	assert.True(t, enum.IsDefinitionError(err))

	_, err = s.FromValue(1)
	assert.ErrorIs(t, err, enum.ErrNotPowerOfTwo)
	_, err = s.FromName("A", false)
	assert.ErrorIs(t, err, enum.ErrNotPowerOfTwo)
}

func TestMissingFlag(t *testing.T) {
	s := New[flag, int]("Gap")
	s.MustRegister(newFlag("A", 1))
	s.MustRegister(newFlag("C", 4))

	_, err := s.List()
	require.Error(t, err)
	assert.ErrorIs(t, err, enum.ErrMissingFlag)

	var enumErr *enum.Error
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "2", enumErr.Value)
	assert.Contains(t, err.Error(), "flag value 2 is missing")
}

func TestMissingLowestFlag(t *testing.T) {
	s := New[flag, int]("NoOne")
	s.MustRegister(newFlag("B", 2))

	err := s.Validate()
	require.ErrorIs(t, err, enum.ErrMissingFlag)

	var enumErr *enum.Error
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "1", enumErr.Value)
}

func TestSentinelsAreExemptFromValidation(t *testing.T) {
	s := New[flag, int]("Sentinels", AllowNegativeInput())
	s.MustRegister(newFlag("None", 0))
	s.MustRegister(newFlag("A", 1))
	s.MustRegister(newFlag("B", 2))
	s.MustRegister(newFlag("All", -1))

	list, err := s.List()
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestAliasedFlagValuesPassValidation(t *testing.T) {
	s := New[flag, int]("Aliased")
	read := s.MustRegister(newFlag("Read", 1))
	s.MustRegister(newFlag("View", 1))
	write := s.MustRegister(newFlag("Write", 2))

	got, err := s.FromValue(3)
	require.NoError(t, err)
	assert.Equal(t, []flag{write, read}, got)
}

func TestExplicitCombinationWins(t *testing.T) {
	got, err := mixed.FromValue(3)
	require.NoError(t, err)
	assert.Equal(t, []flag{mixedAB}, got)

	got, err = mixed.FromValue(5)
	require.NoError(t, err)
	assert.Equal(t, []flag{mixedC, mixedA}, got)

	got, err = mixed.FromValue(7)
	require.NoError(t, err)
	assert.Equal(t, []flag{mixedC, mixedB, mixedA}, got)

	got, err = mixed.FromValue(0)
	require.NoError(t, err)
	assert.Equal(t, []flag{mixedNone}, got)
}

func TestExplicitAllSentinelWins(t *testing.T) {
	got, err := mixed.FromValue(-1)
	require.NoError(t, err)
	assert.Equal(t, []flag{mixedAll}, got)

	str, err := mixed.FromValueToString(-1)
	require.NoError(t, err)
	assert.Equal(t, "All", str)
}

func TestImplicitAllReturnsNonZeroInstances(t *testing.T) {
	s := New[flag, int]("Implicit", AllowNegativeInput())
	s.MustRegister(newFlag("None", 0))
	a := s.MustRegister(newFlag("A", 1))
	b := s.MustRegister(newFlag("B", 2))

	got, err := s.FromValue(-1)
	require.NoError(t, err)
	assert.Equal(t, []flag{b, a}, got)
}

func TestNegativeInputRejectedByDefault(t *testing.T) {
	s := New[flag, int]("NoNeg")
	s.MustRegister(newFlag("X", 1))
	s.MustRegister(newFlag("Y", 2))

	_, err := s.FromValue(-5)
	require.ErrorIs(t, err, enum.ErrNegativeValue)

	_, err = s.FromValue(-1)
	require.ErrorIs(t, err, enum.ErrNegativeValue)

	_, ok := s.TryFromValue(-5)
	assert.False(t, ok)
}

func TestNegativeInputAllowedDecomposesBits(t *testing.T) {
	s := New[flag, int]("Neg", AllowNegativeInput())
	s.MustRegister(newFlag("A", 1))
	s.MustRegister(newFlag("B", 2))

	// Sign bits are not covered by any declared flag.
	_, err := s.FromValue(-2)
	require.ErrorIs(t, err, enum.ErrNotFound)
}

func TestUndeclaredBitsNotFound(t *testing.T) {
	_, ok := mixed.TryFromValue(8)
	assert.False(t, ok)

	_, err := mixed.FromValue(8)
	require.ErrorIs(t, err, enum.ErrNotFound)

	_, ok = mixed.TryFromValueToString(9)
	assert.False(t, ok)
}

func TestUnsafeValuesTolerateGaps(t *testing.T) {
	s := New[flag, int]("Sparse", AllowUnsafeValues())
	bit1 := s.MustRegister(newFlag("Bit1", 1))
	bit3 := s.MustRegister(newFlag("Bit3", 4))

	require.NoError(t, s.Validate())

	got, err := s.FromValue(5)
	require.NoError(t, err)
	assert.Equal(t, []flag{bit3, bit1}, got)

	_, err = s.FromValue(2)
	require.ErrorIs(t, err, enum.ErrNotFound)
}

func TestUnsafeCombinationIsNotUsedForDecomposition(t *testing.T) {
	s := New[flag, int]("Combo", AllowUnsafeValues())
	s.MustRegister(newFlag("A", 1))
	s.MustRegister(newFlag("BC", 6))

	// 6 only matches exactly; its bits are not declared flags.
	got, err := s.FromValue(6)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BC", got[0].Name())

	_, err = s.FromValue(7)
	require.ErrorIs(t, err, enum.ErrNotFound)
}

func TestZeroWithoutNoneIsEmpty(t *testing.T) {
	s, _, _, _ := newStrict(t)

	got, err := s.FromValue(0)
	require.NoError(t, err)
	assert.Empty(t, got)

	str, ok := s.TryFromValueToString(0)
	assert.True(t, ok)
	assert.Equal(t, "", str)
}

func TestRegistrationAfterUseRevalidates(t *testing.T) {
	s := New[flag, int]("Grow")
	s.MustRegister(newFlag("A", 1))
	require.NoError(t, s.Validate())

	s.MustRegister(newFlag("C", 4))
	require.ErrorIs(t, s.Validate(), enum.ErrMissingFlag)

	b := s.MustRegister(newFlag("B", 2))
	require.NoError(t, s.Validate())

	got, err := s.FromValue(6)
	require.NoError(t, err)
	assert.Equal(t, "C", got[0].Name())
	assert.Equal(t, b, got[1])
}

func TestValidationIsMemoized(t *testing.T) {
	s, _, _, _ := newStrict(t)
	require.NoError(t, s.Validate())

	first := s.check.Load()
	_, err := s.FromValue(3)
	require.NoError(t, err)
	assert.Same(t, first, s.check.Load())
}

func TestConcurrentFirstQuery(t *testing.T) {
	s, a, b, c := newStrict(t)

	var wg sync.WaitGroup
	results := make([][]flag, 16)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = s.FromValue(7)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, []flag{c, b, a}, got)
	}
}

func TestValidationFailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := New[flag, int]("Logged", WithLogger(logger))
	s.MustRegister(newFlag("A", 1))
	s.MustRegister(newFlag("B", 5))

	require.Error(t, s.Validate())
	assert.Contains(t, logs.String(), "flag definitions rejected")
	assert.Contains(t, logs.String(), "type=Logged")
}

func TestOrAndHas(t *testing.T) {
	s, a, b, c := newStrict(t)

	mask := s.Or(a, c)
	assert.Equal(t, 5, mask)
	assert.Equal(t, 3, Or[flag, int](a, b))
	assert.Equal(t, 0, s.Or())

	assert.True(t, s.Has(mask, a))
	assert.False(t, s.Has(mask, b))
	assert.True(t, Has[flag, int](7, c))
}

func TestPolicy(t *testing.T) {
	assert.Equal(t, Policy{AllowNegativeInput: true, AllowUnsafeValues: true}, mixed.Policy())

	s := New[flag, int]("FromConfig", WithPolicy(Policy{AllowUnsafeValues: true}))
	assert.Equal(t, Policy{AllowUnsafeValues: true}, s.Policy())
	assert.Equal(t, "FromConfig", s.TypeName())
}

func TestListIsRegistrationOrder(t *testing.T) {
	list, err := mixed.List()
	require.NoError(t, err)
	assert.Equal(t, []flag{mixedNone, mixedA, mixedB, mixedC, mixedAB, mixedAll}, list)
}

func TestRegistryLookups(t *testing.T) {
	got, err := mixed.Registry().FromName("ab", true)
	require.NoError(t, err)
	assert.Equal(t, mixedAB, got)
}
