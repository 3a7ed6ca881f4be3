package passpkg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPIN(t *testing.T) {
	pin := "483920"

	hashedPIN1, err := Hash(pin)
	require.NoError(t, err)
	require.NotEmpty(t, hashedPIN1)

	err = Check(pin, hashedPIN1)
	require.NoError(t, err)

	wrongPIN := "111111"
	err = Check(wrongPIN, hashedPIN1)
	require.EqualError(t, err, bcrypt.ErrMismatchedHashAndPassword.Error())

	// Test for random salt generation
	hashedPIN2, err := Hash(pin)
	require.NoError(t, err)
	require.NotEmpty(t, hashedPIN2)
	require.NotEqual(t, hashedPIN1, hashedPIN2)
}
