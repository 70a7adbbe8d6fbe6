package main

import (
	"os"
	"testing"
)

func TestMain_Help(t *testing.T) {
	os.Args = []string{"specsync", "--help"}
	main()
}
