// Package cli is the alaynorm command line
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"alaynorm/internal/platform/logger"
	str "alaynorm/internal/platform/strings"
	lexsvc "alaynorm/internal/services/lexicon/service"
	normsvc "alaynorm/internal/services/normalize/service"
)

// app holds the flags shared by every subcommand
type app struct {
	words    string
	slang    string
	skip     []string
	jsonOut  bool
	maxRunes int

	svc *normsvc.Svc
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "alaynorm",
		Short: "Normalize informal Indonesian text",
		Long: `alaynorm rewrites informal ("alay") Indonesian into its formal spelling:
  - collapses repeated letters (pusinggg -> pusing)
  - resolves leet (k3ren -> keren, @nj!ng -> anjing)
  - expands abbreviations and slang (blm -> belum, bgt -> banget)
  - fixes near-miss typos (maakn -> makan)

Text comes from the arguments, or from stdin one line at a time.

Examples:
  alaynorm normalize "H4l0o, aku k3ren bgt!"
  cat chat.txt | alaynorm normalize --json
  alaynorm count --skip typo "g4nt3ng bgt"`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.words, "words", "", "word list file (whitespace separated); embedded list when empty")
	pf.StringVar(&a.slang, "slang", "", "slang CSV with slang,formal header; embedded table when empty")
	pf.StringSliceVar(&a.skip, "skip", nil, "stages to skip: repetitions, leet, forced_leet, abbreviation, slang, typo")
	pf.BoolVar(&a.jsonOut, "json", false, "print one JSON object per input")
	pf.IntVar(&a.maxRunes, "max-runes", 0, "reject inputs longer than this many characters; 0 means no limit")

	root.AddCommand(
		a.normalizeCmd(),
		a.tokenizeCmd(),
		a.countCmd(),
		versionCmd(),
	)
	return root
}

// Execute runs the command line with the process arguments
func Execute() error {
	return NewRootCmd().Execute()
}

// service loads the lexicon once per invocation
func (a *app) service(ctx context.Context) (*normsvc.Svc, error) {
	if a.svc != nil {
		return a.svc, nil
	}
	if _, _, err := normsvc.ParseSkip(a.skipList()); err != nil {
		return nil, err
	}
	log := *logger.Named("cli")

	var src lexsvc.File
	src.WordsPath, src.SlangPath = a.words, a.slang
	lx := lexsvc.New(src, log)
	// a broken lexicon file is reported but the run carries on with what loaded
	_, _ = lx.Load(ctx)

	a.svc = normsvc.New(lx, normsvc.Config{MaxRunes: a.maxRunes, CacheSize: 1024}, log)
	return a.svc, nil
}

// inputs yields the joined arguments, or every non-blank stdin line
func inputs(args []string, stdin io.Reader, fn func(string) error) error {
	if len(args) > 0 {
		return fn(strings.Join(args, " "))
	}
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 4<<20)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return sc.Err()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// skipList accepts "--skip a,b" and "--skip 'a b'"
func (a *app) skipList() []string {
	var out []string
	for _, s := range a.skip {
		out = append(out, str.SplitList(s)...)
	}
	return out
}
