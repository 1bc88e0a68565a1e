package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/polyfit/internal/placement"
	"github.com/vovakirdan/polyfit/internal/polyomino"
)

var (
	flagPool      bool
	flagCount     int
	flagPiece     string
	flagPlainText bool
)

var (
	outlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pieceStyles  = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	}
	shapeBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	caption  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var catalogCmd = &cobra.Command{
	Use:   "catalog <k>",
	Short: "Print the free polyominoes of size k",
	Long: `Print every shape of size k once, up to rotation and reflection,
in catalog order. With --pool every distinct orientation is printed.

Examples:
  polyfit catalog 4
  polyfit catalog 5 --pool
  polyfit catalog 6 --plain`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalog,
}

var composeCmd = &cobra.Command{
	Use:   "compose <k>",
	Short: "Print composed two-piece outlines",
	Long: `Compose outlines from two pieces of size k and print them with the
pieces that make them up.

Examples:
  polyfit compose 4
  polyfit compose 5 -n 3 --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runCompose,
}

var fitCmd = &cobra.Command{
	Use:   "fit <k>",
	Short: "Compose an outline and show where a piece fits",
	Long: `Compose an outline of size k and list every anchor at which a piece
can be laid into it without cutting the rest of the outline in two.
The piece is random unless --piece gives one, rows separated by '/'.

Examples:
  polyfit fit 4
  polyfit fit 4 --piece '###/#'`,
	Args: cobra.ExactArgs(1),
	RunE: runFit,
}

func init() {
	catalogCmd.Flags().BoolVar(&flagPool, "pool", false, "Print every orientation instead of one shape per class")
	composeCmd.Flags().IntVarP(&flagCount, "count", "n", 1, "Number of outlines")
	fitCmd.Flags().StringVar(&flagPiece, "piece", "", "Piece rows separated by '/', '#' for a cell")
	for _, c := range []*cobra.Command{catalogCmd, composeCmd, fitCmd} {
		c.Flags().BoolVar(&flagPlainText, "plain", false, "Print '#' pictures without colour or boxes")
	}
}

func parseSize(arg string) (int, error) {
	k, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("piece size %q: %w", arg, err)
	}
	return k, nil
}

func newRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func runCatalog(_ *cobra.Command, args []string) error {
	k, err := parseSize(args[0])
	if err != nil {
		return err
	}

	var shapes []polyomino.Polyomino
	if flagPool {
		shapes, err = eng.ExpandedPool(k)
	} else {
		var cat polyomino.Catalog
		cat, err = eng.Catalog(k)
		shapes = cat.Shapes
	}
	if err != nil {
		return err
	}

	kind := "free polyominoes"
	if flagPool {
		kind = "orientations"
	}
	fmt.Println(caption.Render(fmt.Sprintf("%d %s of size %d", len(shapes), kind, k)))

	tiles := make([]string, len(shapes))
	for i, p := range shapes {
		tiles[i] = renderPiece(p, pieceStyles[0])
	}
	fmt.Println(grid(tiles))
	return nil
}

func runCompose(_ *cobra.Command, args []string) error {
	k, err := parseSize(args[0])
	if err != nil {
		return err
	}
	rng := newRand()

	for range max(flagCount, 1) {
		o, err := eng.ComposeOutline(k, rng)
		if err != nil {
			return err
		}
		fmt.Println(caption.Render(fmt.Sprintf("outline %s  (%d cells, %d draws)", o.ID, o.Cells(), o.Attempts)))
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top,
			tile(renderRegion(o.Region)), " = ",
			tile(renderPiece(o.PieceA, pieceStyles[0])), " + ",
			tile(renderPiece(o.PieceB, pieceStyles[1])),
		))
	}
	return nil
}

func runFit(_ *cobra.Command, args []string) error {
	k, err := parseSize(args[0])
	if err != nil {
		return err
	}
	rng := newRand()

	o, err := eng.ComposeOutline(k, rng)
	if err != nil {
		return err
	}

	var piece polyomino.Polyomino
	if flagPiece != "" {
		piece, err = polyomino.Parse(strings.ReplaceAll(flagPiece, "/", "\n"))
	} else {
		piece, err = eng.RandomPiece(k, rng)
	}
	if err != nil {
		return err
	}

	anchors, err := eng.CheckFit(piece, o.Region, placement.Options{
		Fillable:                  placement.Reserved,
		WantAll:                   true,
		RequireConnectedRemainder: true,
	})
	if err != nil {
		return err
	}

	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top,
		tile(renderRegion(o.Region)), "  ", tile(renderPiece(piece, pieceStyles[0]))))
	if len(anchors) == 0 {
		fmt.Println("The piece does not fit. Try rotating or mirroring it.")
		return nil
	}
	for _, a := range anchors {
		region := o.Region.Clone()
		if err := placement.Fit(piece, region, a, 2); err != nil {
			return err
		}
		fmt.Println(caption.Render(fmt.Sprintf("anchor row %d col %d", a.Row, a.Col)))
		fmt.Println(tile(renderRegion(region)))
	}
	return nil
}

// renderPiece draws occupied cells two characters wide.
func renderPiece(p polyomino.Polyomino, style lipgloss.Style) string {
	if flagPlainText {
		return p.MoveToMinimalEmbedding().String()
	}
	h, w := p.Bounds()
	p = p.MoveToMinimalEmbedding()

	var sb strings.Builder
	for r := range h {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range w {
			if p.Occupied(r, c) {
				sb.WriteString(style.Render("██"))
			} else {
				sb.WriteString("  ")
			}
		}
	}
	return sb.String()
}

// renderRegion draws open outline cells shaded and every piece tag in its
// own colour.
func renderRegion(r *placement.Region) string {
	if flagPlainText {
		return r.String()
	}
	var sb strings.Builder
	for row := range r.Rows() {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range r.Cols() {
			switch v := r.Get(row, col); v {
			case placement.Unused:
				sb.WriteString("  ")
			case placement.Reserved:
				sb.WriteString(outlineStyle.Render("░░"))
			default:
				sb.WriteString(pieceStyles[(v-2)%len(pieceStyles)].Render("██"))
			}
		}
	}
	return sb.String()
}

func tile(s string) string {
	if flagPlainText {
		return s
	}
	return shapeBox.Render(s)
}

// grid lays tiles out left to right, wrapping at the terminal width.
func grid(tiles []string) string {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	var rows []string
	var row []string
	used := 0
	for _, t := range tiles {
		t = tile(t)
		w := lipgloss.Width(t) + 1
		if used+w > width && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, t, " ")
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
