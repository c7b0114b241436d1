package main

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dfbb/lpqr/internal/formatter"
	"github.com/dfbb/lpqr/internal/history"
	"github.com/dfbb/lpqr/internal/pixel"
	"github.com/dfbb/lpqr/internal/qrsource"
)

var renderCmd = &cobra.Command{
	Use:   "render [text...]",
	Short: "Render text as a QR code",
	Long: `Render text as a QR code using a catalog formatter.

With no arguments the text is read from stdin.`,
	RunE: runRender,
}

var (
	flagFormatter  string
	flagLevel      string
	flagModuleSize int
	flagBorder     int
	flagPNG        string
	flagReference  bool
	flagDemo       bool
	flagLiteral    bool
)

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&flagFormatter, "formatter", "f", "", "catalog formatter as kind.name (overrides config)")
	f.StringVar(&flagLevel, "level", "", "error correction level: L, M, Q or H (overrides config)")
	f.IntVar(&flagModuleSize, "module-size", 0, "pixels per module side (overrides config)")
	f.IntVar(&flagBorder, "border", -1, "quiet zone in modules (overrides config)")
	f.StringVar(&flagPNG, "png", "", "also write the code as a PNG file")
	f.BoolVar(&flagReference, "reference", false, "also print qrterminal's rendering for comparison")
	f.BoolVar(&flagDemo, "demo", false, "encode the SHA-256 of empty input")
	f.BoolVar(&flagLiteral, "literal", false, "print the grid in literal form instead of formatting it")
}

func runRender(cmd *cobra.Command, args []string) error {
	payload, err := renderPayload(cmd, args)
	if err != nil {
		return err
	}
	if payload == "" {
		return fmt.Errorf("nothing to render")
	}

	opts, err := renderOptions(cmd)
	if err != nil {
		return err
	}
	name := cfg.Formatter
	if flagFormatter != "" {
		name = flagFormatter
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	f, err := cat.Lookup(name)
	if err != nil {
		return err
	}

	g, err := qrsource.Render(payload, opts)
	if err != nil {
		return err
	}
	slog.Debug("rendered", "size", g.Width(), "level", opts.Level, "formatter", name)

	out := cmd.OutOrStdout()
	if err := writeGrid(out, g, f, flagLiteral); err != nil {
		return err
	}
	if flagPNG != "" {
		if err := writePNG(flagPNG, g); err != nil {
			return err
		}
	}
	if flagReference {
		fmt.Fprintln(out)
		qrterminal.GenerateHalfBlock(payload, opts.Level.QR(), out)
	}
	recordHistory(name, opts.Level.String(), payload)
	return nil
}

func renderPayload(cmd *cobra.Command, args []string) (string, error) {
	if flagDemo {
		sum := sha256.Sum256(nil)
		return hex.EncodeToString(sum[:]), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return readPayload(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// readPayload prompts for a single line when in is a terminal and otherwise
// consumes all of in, dropping the trailing newline.
func readPayload(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Text: ")
		s, err := bufio.NewReader(f).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return strings.TrimRight(s, "\r\n"), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func renderOptions(cmd *cobra.Command) (qrsource.Options, error) {
	opts := qrsource.Options{ModuleSize: cfg.QR.ModuleSize, Border: cfg.QR.Border}
	level := cfg.QR.Level
	if flagLevel != "" {
		level = flagLevel
	}
	lvl, err := qrsource.ParseLevel(level)
	if err != nil {
		return opts, err
	}
	opts.Level = lvl
	if cmd.Flags().Changed("module-size") {
		opts.ModuleSize = flagModuleSize
	}
	if cmd.Flags().Changed("border") {
		opts.Border = flagBorder
	}
	return opts, nil
}

func writeGrid(w io.Writer, g *pixel.Grid, f formatter.Formatter, literal bool) error {
	lines := g.Literal()
	if !literal {
		lines = f.Format(g)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, g *pixel.Grid) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating png: %w", err)
	}
	if err := png.Encode(file, g); err != nil {
		file.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	return file.Close()
}

func recordHistory(formatterName, level, payload string) {
	if cfg.HistoryDB == "" {
		return
	}
	h, err := history.New(cfg.HistoryDB)
	if err != nil {
		slog.Warn("history unavailable", "path", cfg.HistoryDB, "err", err)
		return
	}
	defer h.Close()
	if err := h.Record(formatterName, level, payload); err != nil {
		slog.Warn("history record failed", "err", err)
	}
}
