package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_engine"
	"github.com/SeamusWaldron/gocube_engine/internal/facelet"
)

var faceletsNet bool

var faceletsCmd = &cobra.Command{
	Use:   "facelets [moves...]",
	Short: "Print the solver string of a cube after a move sequence",
	Long: `Apply a move sequence to a solved cube and print the 54 character facelet
string in URFDLB order, as expected by two-phase solvers.

Example:
  gocube-engine facelets R U R' U'`,
	RunE: runFacelets,
}

func init() {
	faceletsCmd.Flags().BoolVar(&faceletsNet, "net", false, "Also print the unfolded cube")
	rootCmd.AddCommand(faceletsCmd)
}

func runFacelets(cmd *cobra.Command, args []string) error {
	seq := strings.Join(args, " ")
	if _, err := gocube.ParseMoves(seq); err != nil {
		return err
	}

	engine := gocube.NewEngine(gocube.WithMoveHistory(false))
	if err := engine.Execute(seq, true); err != nil {
		return err
	}

	s, err := engine.Facelets()
	if err != nil {
		return err
	}
	fmt.Println(s)

	if faceletsNet {
		fmt.Println()
		fmt.Print(renderNet(engine.Cube()))
		model, err := facelet.Parse(s)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(model.String())
	}
	return nil
}

func joinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}
