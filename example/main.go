package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-pathlib/pathlib"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <root-dir> <pattern> [-r]", os.Args[0])
	}
	root := pathlib.FromString(os.Args[1])
	pattern := os.Args[2]
	recursive := len(os.Args) > 3 && os.Args[3] == "-r"

	var (
		found pathlib.Paths
		err   error
	)
	if recursive {
		found, err = pathlib.Rglob(root, pattern)
	} else {
		found, err = pathlib.Glob(root, pattern)
	}
	if err != nil {
		log.Fatalf("glob: %v", err)
	}

	for _, p := range found {
		fmt.Println(p.String())
	}
	fmt.Fprintf(os.Stderr, "%d match(es)\n", len(found))
}
