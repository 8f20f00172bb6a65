// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

package lexnfa

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// One token definition: Kind names the token category, Value is the
// pattern text handed to Compile.
type TokenDef struct {
	Kind  string `toml:"kind"`
	Value string `toml:"value"`
}

// An ordered token table, as read from a tokens file:
//
//	tokens = [
//	    { kind = "EQ", value = "=" },
//	    { kind = "BOOL", value = "true|false" },
//	]
type TokenTable struct {
	Tokens []TokenDef `toml:"tokens"`
}

// Decode a token table from TOML text.
func ParseTokenTable(data []byte) (*TokenTable, error) {
	var table TokenTable
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decoding token table: %w", err)
	}
	return &table, nil
}

// Read and decode a token table file.
func LoadTokenTable(filename string) (*TokenTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading token table: %w", err)
	}
	return ParseTokenTable(data)
}
