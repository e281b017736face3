package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces a verifiable bcrypt hash", func(t *testing.T) {
		hash, err := HashPassword("signup-secret")

		require.NoError(t, err)
		assert.NotEqual(t, "signup-secret", hash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("signup-secret")))
	})

	t.Run("salts every hash", func(t *testing.T) {
		hash1, err1 := HashPassword("samepassword")
		hash2, err2 := HashPassword("samepassword")

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, hash1, hash2)
	})

	t.Run("accepts an empty password", func(t *testing.T) {
		// Signup validation only requires the field to be present, so the
		// hasher must cope with any string it is handed.
		hash, err := HashPassword("")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
	})

	t.Run("rejects input over the bcrypt 72 byte limit", func(t *testing.T) {
		_, err := HashPassword(strings.Repeat("x", 73))

		assert.Error(t, err)
	})

	t.Run("round-trips unicode passwords", func(t *testing.T) {
		hash, err := HashPassword("пароль🔐")

		require.NoError(t, err)
		assert.NoError(t, CheckPassword("пароль🔐", hash))
	})
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correcthorse")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  bool
	}{
		{"matching password", "correcthorse", hash, false},
		{"wrong password", "batterystaple", hash, true},
		{"case differs", "CorrectHorse", hash, true},
		{"empty candidate", "", hash, true},
		{"garbage hash", "correcthorse", "notavalidhash", true},
		{"empty hash", "correcthorse", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.password, tt.hash)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("mismatch surfaces the bcrypt sentinel", func(t *testing.T) {
		err := CheckPassword("batterystaple", hash)

		assert.Equal(t, bcrypt.ErrMismatchedHashAndPassword, err)
	})
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("benchmarkpassword")
	}
}
