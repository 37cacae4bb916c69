package survey_test

import (
	"context"
	"fmt"
	"os"

	"github.com/arnodb/rhombus-sub000/hex"
	"github.com/arnodb/rhombus-sub000/survey"
	"github.com/arnodb/rhombus-sub000/terrain"
)

// ExampleRun surveys two viewpoints of an open map and exports the rows.
func ExampleRun() {
	s, err := terrain.Generate(hex.NewAxialVector(0, 0), 8, terrain.WithThreshold(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	results, err := survey.Run(context.Background(), s,
		[]hex.AxialVector{hex.NewAxialVector(0, 0), hex.NewAxialVector(-1, 2)},
		survey.WithMaxRadius(2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := survey.WriteCSV(os.Stdout, results); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("mean visible:", survey.Summarize(results).MeanVisible)

	// Output:
	// q,r,visible,reachable,hidden,rectangles
	// 0,0,19,19,0,5
	// -1,2,19,19,0,5
	// mean visible: 19
}
