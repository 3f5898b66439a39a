// Package export writes experiment artifacts: per-agent trajectory CSVs and
// SVG plots of the explored paths.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aravind1338/eecs545-artificial-curiosity/internal/model"
)

// SafeLabel turns an agent label into a filesystem-safe file stem.
// "curiosity (2000, 1000)" becomes "curiosity_2000__1000".
func SafeLabel(label string) string {
	return strings.NewReplacer(" ", "_", "(", "", ")", "", ",", "_").Replace(label)
}

// WriteTrajectoryCSV writes points as rows of x,y with a header.
func WriteTrajectoryCSV(out io.Writer, points []model.Position) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if err := writer.Write([]string{"x", "y"}); err != nil {
		return fmt.Errorf("write trajectory header: %w", err)
	}
	for i, p := range points {
		if err := writer.Write([]string{strconv.Itoa(p.X), strconv.Itoa(p.Y)}); err != nil {
			return fmt.Errorf("write trajectory row %d: %w", i+1, err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush trajectory csv: %w", err)
	}
	return nil
}

// ReadTrajectoryCSV parses a trajectory written by WriteTrajectoryCSV.
func ReadTrajectoryCSV(in io.Reader) ([]model.Position, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = 2

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("trajectory csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read trajectory header: %w", err)
	}
	if strings.TrimSpace(header[0]) != "x" || strings.TrimSpace(header[1]) != "y" {
		return nil, fmt.Errorf("unexpected trajectory header: %v", header)
	}

	points := make([]model.Position, 0)
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read trajectory row %d: %w", row+1, err)
		}
		row++
		x, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("parse x at row %d: %w", row, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("parse y at row %d: %w", row, err)
		}
		points = append(points, model.Position{X: x, Y: y})
	}
	return points, nil
}
