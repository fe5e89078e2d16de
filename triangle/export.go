package triangle

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// ExportToCSV Writes every node of the DAG as `level;index;value;max_sum`.
// Max sums are evaluated first, so the dump is the complete solver table.
func (tree *NumTree) ExportToCSV(fname string) error {
	tree.MaxSum()

	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"level", "index", "value", "max_sum"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for level := range tree.levels {
		for index, node := range tree.levels[level] {
			err = writer.Write([]string{
				fmt.Sprintf("%d", level),
				fmt.Sprintf("%d", index),
				fmt.Sprintf("%d", node.Value),
				fmt.Sprintf("%d", node.memo),
			})
			if err != nil {
				return errors.Wrap(err, "Can't write node")
			}
		}
	}
	return nil
}
