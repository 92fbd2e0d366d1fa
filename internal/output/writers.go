package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// WriteJSON writes the report as pretty-printed JSON to the writer.
func WriteJSON(w io.Writer, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report to JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON output: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// WriteText writes the report as key=value lines, extra keys sorted last.
func WriteText(w io.Writer, report Report) error {
	lines := []struct{ key, value string }{
		{"path", report.Path},
		{"branch", report.Branch},
		{"status.showUntrackedFiles", report.UntrackedFiles.Mode},
		{"push.default", report.PushDefault},
	}
	for _, l := range lines {
		if l.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", l.key, l.value); err != nil {
			return err
		}
	}

	keys := make([]string, 0, len(report.Extra))
	for k := range report.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := report.Extra[k]
		if v == nil {
			if _, err := fmt.Fprintf(w, "%s=(unset)\n", k); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, *v); err != nil {
			return err
		}
	}
	return nil
}
