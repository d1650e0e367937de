package ingesting

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

const maxReportedIssues = 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseIssue descreve uma linha do CSV que não pôde ser lida
type ParseIssue struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// record é uma linha de dados com acesso às colunas pelo nome normalizado
type record struct {
	line   int
	fields []string
	index  map[string]int
}

func (r record) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r record) has(column string) bool {
	_, ok := r.index[column]
	return ok
}

// normalizeHeader deixa o cabeçalho em minúsculas com _ no lugar de espaços e hífens
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(h)
}

// parseCSV lê o upload inteiro. Qualquer erro de formato é reportado com o número da linha
// e nenhum registro é devolvido nesse caso.
func parseCSV(data []byte) ([]record, []ParseIssue) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, []ParseIssue{{Line: 1, Message: "file is empty"}}
		}
		issue := issueFrom(err)
		if issue.Line == 0 {
			issue.Line = 1
		}
		return nil, []ParseIssue{issue}
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		if name := normalizeHeader(h); name != "" {
			if _, dup := index[name]; !dup {
				index[name] = i
			}
		}
	}

	records := make([]record, 0)
	issues := make([]ParseIssue, 0)

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			issues = append(issues, issueFrom(err))
			var parseErr *csv.ParseError
			if len(issues) >= maxReportedIssues || !errors.As(err, &parseErr) || !errors.Is(parseErr.Err, csv.ErrFieldCount) {
				break
			}
			continue
		}

		// FieldPos só é válido depois de um Read sem erro
		line, _ := reader.FieldPos(0)
		records = append(records, record{line: line, fields: fields, index: index})
	}

	if len(issues) > 0 {
		return nil, issues
	}

	return records, nil
}

func issueFrom(err error) ParseIssue {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return ParseIssue{Line: parseErr.Line, Message: parseErr.Err.Error()}
	}
	return ParseIssue{Message: err.Error()}
}
