/*
File : lumascript/errs/errs_test.go
*/
package errs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSink_FirstWriteWins(t *testing.T) {
	var sink Sink
	assert.False(t, sink.HasError())

	first := NewSyntaxError("first: %d", 1)
	second := NewSyntaxError("second: %d", 2)

	sink.Set(first)
	sink.Set(second)

	assert.True(t, sink.HasError())
	assert.Same(t, first, sink.Get())
	assert.Equal(t, "first: 1", sink.Get().Error())
}

func TestSink_GetOnEmptySinkReturnsNil(t *testing.T) {
	var sink Sink
	assert.Nil(t, sink.Get())
}

func TestNewSyntaxError_Formats(t *testing.T) {
	err := NewSyntaxError("expected token: %s, but got token: %s", "SymbolSemicolon", "Identifier")
	assert.Equal(t, "expected token: SymbolSemicolon, but got token: Identifier", err.Error())
}
