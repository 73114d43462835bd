package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalGate_TruthTables(t *testing.T) {
	tests := []struct {
		kind string
		a, b bool
		want bool
	}{
		{"and", true, true, true},
		{"and", true, false, false},
		{"and", false, true, false},
		{"and", false, false, false},

		{"or", true, true, true},
		{"or", true, false, true},
		{"or", false, true, true},
		{"or", false, false, false},

		{"xor", true, true, false},
		{"xor", true, false, true},
		{"xor", false, true, true},
		{"xor", false, false, false},

		{"nand", true, true, false},
		{"nand", true, false, true},
		{"nand", false, true, true},
		{"nand", false, false, true},

		{"nor", true, true, false},
		{"nor", true, false, false},
		{"nor", false, true, false},
		{"nor", false, false, true},
	}
	for _, tt := range tests {
		got, err := evalGate(tt.kind, tt.a, tt.b)
		require.NoError(t, err, "%s(%v, %v)", tt.kind, tt.a, tt.b)
		assert.Equal(t, tt.want, got, "%s(%v, %v)", tt.kind, tt.a, tt.b)
	}
}

func TestEvalGate_RejectsUnknownKind(t *testing.T) {
	for _, kind := range []string{"invalid", "", "AND"} {
		_, err := evalGate(kind, true, false)
		assert.Error(t, err, "kind %q", kind)
	}
}
