package common

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	l, err := ReadLine(strings.NewReader("12345.67 89.01\n"), 64)
	require.NoError(t, err)
	assert.Equal(t, "12345.67 89.01\n", l)

	l, err = ReadLine(strings.NewReader("1.00 2.00\n3.00 4.00\n"), 64)
	require.NoError(t, err)
	assert.Equal(t, "1.00 2.00\n", l)

	l, err = ReadLine(strings.NewReader("100.999"), 64)
	require.NoError(t, err)
	assert.Equal(t, "100.999", l)

	l, err = ReadLine(strings.NewReader("0123456789"), 4)
	require.NoError(t, err)
	assert.Equal(t, "0123", l)

	_, err = ReadLine(strings.NewReader(""), 64)
	assert.Equal(t, io.EOF, err)

	readErr := errors.New("device error")
	_, err = ReadLine(iotest.ErrReader(readErr), 64)
	assert.ErrorIs(t, err, readErr)
}
