package types

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := Errorf(KindOversizedImage, "image is %d bytes", 2<<20)
	assert.ErrorIs(t, err, ErrOversizedImage)
	assert.NotErrorIs(t, err, ErrIO)

	wrapped := fmt.Errorf("loading: %w", err)
	assert.ErrorIs(t, wrapped, ErrOversizedImage)
	assert.Equal(t, KindOversizedImage, KindOf(wrapped))
}

func TestError_Unwrap(t *testing.T) {
	err := Wrap(KindIO, fs.ErrNotExist, "game.gb")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, "io failure: game.gb: file does not exist", err.Error())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindBankIndexOutOfRange, KindOf(ErrBankIndexOutOfRange))
	assert.Equal(t, "unsupported cartridge type", KindUnsupportedCartridgeType.String())
}
