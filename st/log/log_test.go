package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFmtArgs(t *testing.T) {
	args := []interface{}{1, 2, 3}

	assert.Len(t, fmtArgs("%v %v %v", args), 3)
	assert.Len(t, fmtArgs("%v", args), 1)
	assert.Len(t, fmtArgs("no params", args), 0)
	assert.Len(t, fmtArgs("%%v escaped", args), 0)
	assert.Len(t, fmtArgs("%v %v %v %v", args), 3)
}

func TestShaveSrcFile(t *testing.T) {
	assert.Equal(t, "shapes/runner.go",
		shaveSrcFile("/home/dev/go/src/shapetools/st/shapes/runner.go"))
	assert.Equal(t, "/somewhere/else/main.go",
		shaveSrcFile("/somewhere/else/main.go"))
}

func TestSpew(t *testing.T) {
	out := Spew(struct{ A int }{A: 7})
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "7")
}
