package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"sigs.k8s.io/yaml"
)

// Result is the printed form of one parsed distinguished name.
type Result struct {
	DN         string            `json:"dn"`
	Attributes map[string]string `json:"attributes"`
}

func encodeResults(output string, results []Result) ([]byte, error) {
	var data []byte
	var err error
	switch output {
	case OutputJSON:
		data, err = encodeResultsAsJSON(results)
	case OutputYAML:
		data, err = yaml.Marshal(results)
	case OutputTable:
		data = encodeResultsAsTable(results)
	default:
		err = fmt.Errorf("unknown output format: %q", output)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding distinguished names as %q failed: %w", output, err)
	}
	return data, nil
}

func encodeResultsAsJSON(results []Result) ([]byte, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func encodeResultsAsTable(results []Result) []byte {
	var buf bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.AppendHeader(table.Row{"DN", "Type", "Value"})
	for _, r := range results {
		for _, attrType := range slices.Sorted(maps.Keys(r.Attributes)) {
			t.AppendRow(table.Row{r.DN, attrType, r.Attributes[attrType]})
		}
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
	return buf.Bytes()
}
