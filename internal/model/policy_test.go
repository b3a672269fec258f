package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDropNil(t *testing.T) {
	in := Record{
		"title":  "kept",
		"image":  "",
		"active": false,
		"phone":  nil,
	}

	out := DropNil.Apply(in)

	assert.Equal(t, Record{"title": "kept", "image": "", "active": false}, out)
	// Empty strings are real values under DropNil: sending image="" clears
	// the stored image.
	assert.Contains(t, out, "image")
}

func TestDropNilOrEmptyString(t *testing.T) {
	in := Record{
		"title":    "kept",
		"author":   "   ",
		"summary":  "",
		"featured": false,
		"order":    float64(0),
		"tags":     nil,
	}

	out := DropNilOrEmptyString.Apply(in)

	assert.Equal(t, Record{"title": "kept", "featured": false, "order": float64(0)}, out)
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	in := Record{"a": nil, "b": ""}
	DropNilOrEmptyString.Apply(in)

	assert.Equal(t, Record{"a": nil, "b": ""}, in)
}
