package lexicon

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"os"
	"strings"

	perr "alaynorm/internal/platform/errors"
)

//go:embed corpus/common_words.txt
var embeddedWords []byte

//go:embed corpus/slangs.csv
var embeddedSlang []byte

// Loaders never fail hard: on any problem they hand back a usable (possibly empty)
// collection together with a diagnostic error the caller may log and carry on

// ReadWords parses a whitespace-delimited word list
func ReadWords(r io.Reader) (*Lexicon, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return NewLexicon(), perr.Wrap(err, perr.ErrorCodeInvalidArgument, "lexicon: read word list")
	}
	return NewLexicon(words...), nil
}

// ReadSlang parses a CSV table whose header names a "slang" and a "formal" column
// rows too short to hold both columns and rows with a blank slang cell are skipped
func ReadSlang(r io.Reader) (*SlangMap, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return NewSlangMap(nil), perr.InvalidArgf("lexicon: slang table is empty")
	}
	if err != nil {
		return NewSlangMap(nil), perr.Wrap(err, perr.ErrorCodeInvalidArgument, "lexicon: read slang header")
	}

	si, fi := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "slang":
			si = i
		case "formal":
			fi = i
		}
	}
	if si < 0 || fi < 0 {
		return NewSlangMap(nil), perr.WithField(
			perr.InvalidArgf("lexicon: slang table needs 'slang' and 'formal' columns, got %v", header),
			"header",
		)
	}

	sm := NewSlangMap(nil)
	need := max(si, fi)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return NewSlangMap(nil), perr.Wrap(err, perr.ErrorCodeInvalidArgument, "lexicon: read slang row")
		}
		if len(row) <= need {
			continue
		}
		sm.put(row[si], row[fi])
	}
	return sm, nil
}

// LoadWordsFile reads a word list from path
func LoadWordsFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewLexicon(), perr.Wrapf(err, perr.ErrorCodeNotFound, "lexicon: open word list %s", path)
	}
	defer f.Close()
	lx, err := ReadWords(f)
	return lx, perr.WithOp(err, path)
}

// LoadSlangFile reads a slang table from path
func LoadSlangFile(path string) (*SlangMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewSlangMap(nil), perr.Wrapf(err, perr.ErrorCodeNotFound, "lexicon: open slang table %s", path)
	}
	defer f.Close()
	sm, err := ReadSlang(f)
	return sm, perr.WithOp(err, path)
}

// Default returns the small corpus compiled into the binary
func Default() (*Lexicon, *SlangMap) {
	lx, _ := ReadWords(bytes.NewReader(embeddedWords))
	sm, _ := ReadSlang(bytes.NewReader(embeddedSlang))
	return lx, sm
}
