package main

import (
	"flag"
	"fmt"

	"citysearch/triangle"
)

var (
	fileName = flag.String("file", "triangle.txt", "Filename of text file with triangular rows (one row per line, values separated by whitespace)")
	sep      = flag.String("sep", "", "Separator between values in a row. Keep it empty for whitespace")
	out      = flag.String("out", "", "Filename of 'Comma-Separated Values' (CSV) formatted file for the solver table dump (level;index;value;max_sum). Keep it empty to skip the dump")
	verbose  = flag.Bool("verbose", true, "Verbose output")
)

func main() {

	flag.Parse()

	parser := triangle.NewParser(*fileName,
		triangle.WithSeparator(*sep),
		triangle.WithVerbose(*verbose),
	)
	rows, err := parser.Parse()
	if err != nil {
		fmt.Println(err)
		return
	}

	tree, err := triangle.NewNumTree(rows)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tree.MaxSum())

	if *out != "" {
		err = tree.ExportToCSV(*out)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
}
