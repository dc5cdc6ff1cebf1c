package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateOTP()
		require.Len(t, code, 4)
		assert.GreaterOrEqual(t, code, "1000")
		assert.LessOrEqual(t, code, "9999")
	}
}

func TestMemoryOTPStoreSingleUse(t *testing.T) {
	store := NewMemoryOTPStore()
	require.NoError(t, store.Put("9876543210", "1234"))

	ok, err := store.Verify("9876543210", "1234")
	require.NoError(t, err)
	assert.True(t, ok)

	// the code is consumed by the first success
	ok, err = store.Verify("9876543210", "1234")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryOTPStoreWrongCode(t *testing.T) {
	store := NewMemoryOTPStore()
	require.NoError(t, store.Put("9876543210", "1234"))

	ok, err := store.Verify("9876543210", "9999")
	require.NoError(t, err)
	assert.False(t, ok)

	// a wrong guess does not burn the code
	ok, err = store.Verify("9876543210", "1234")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryOTPStoreUnknownMobile(t *testing.T) {
	store := NewMemoryOTPStore()

	ok, err := store.Verify("0000000000", "1234")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryOTPStoreExpiry(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	store := NewMemoryOTPStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Put("9876543210", "1234"))

	// just inside the window
	now = now.Add(OTPTTL - time.Second)
	ok, err := store.Verify("9876543210", "9999") // wrong code, keeps it alive
	require.NoError(t, err)
	assert.False(t, ok)

	// past the window
	now = now.Add(2 * time.Second)
	ok, err = store.Verify("9876543210", "1234")
	require.NoError(t, err)
	assert.False(t, ok, "expired code must not verify")
}

func TestMemoryOTPStoreReplacement(t *testing.T) {
	store := NewMemoryOTPStore()
	require.NoError(t, store.Put("9876543210", "1111"))
	require.NoError(t, store.Put("9876543210", "2222"))

	ok, err := store.Verify("9876543210", "1111")
	require.NoError(t, err)
	assert.False(t, ok, "replaced code is no longer valid")

	ok, err = store.Verify("9876543210", "2222")
	require.NoError(t, err)
	assert.True(t, ok)
}
