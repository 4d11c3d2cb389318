// Package io is for reading reassembly problems and writing reports about them
package io

import (
	"fmt"
	"io"
	"os"
)

// Stdin is the input path that reads from standard input
const Stdin = "-"

// Open the input file at path
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return f, nil
}
