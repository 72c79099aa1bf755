package conformance

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/writ/errors"
)

// LoadBatch reads a batch document. The document is a YAML (or JSON) list
// whose entries are either argument lists or single values; a single value
// is the sole argument of its call. Each returned element is the argument
// list for one call.
func LoadBatch(r io.Reader) ([][]any, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidData(errors.PhaseBatch, nil, "batch file is empty")
		}
		return nil, errors.Wrap(errors.PhaseBatch, errors.KindInvalidData, err, "parse batch file")
	}

	entries, ok := doc.([]any)
	if !ok {
		return nil, errors.New(errors.PhaseBatch, errors.KindTypeMismatch).
			Detail("batch file must hold a list, got %T", doc).
			Build()
	}

	calls := make([][]any, len(entries))
	for i, entry := range entries {
		if args, ok := entry.([]any); ok {
			calls[i] = args
			continue
		}
		calls[i] = []any{entry}
	}
	return calls, nil
}

// LoadBatchFile opens path and passes it to LoadBatch.
func LoadBatchFile(path string) ([][]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseBatch, errors.KindNotFound, err, "open batch file")
	}
	defer f.Close()
	return LoadBatch(f)
}

// BatchCases turns batch argument lists into cases calling export. The
// cases carry no expectation and pass whenever the call succeeds.
func BatchCases(export string, calls [][]any) []Case {
	cases := make([]Case, len(calls))
	for i, args := range calls {
		cases[i] = Case{
			Name:   fmt.Sprintf("%s[%d]", export, i),
			Export: export,
			Args:   args,
		}
	}
	return cases
}
