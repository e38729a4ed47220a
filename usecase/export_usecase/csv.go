package export_usecase

import (
	"bytes"
	"encoding/csv"
	"strings"

	apperrors "suprss/utils/errors"
)

var csvHeader = []string{
	"collection_name",
	"collection_description",
	"isShared",
	"feed_title",
	"feed_url",
	"feed_description",
	"category",
	"updateFreq",
	"status",
}

func renderCSV(payload *CollectionsExport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, col := range payload.Collections {
		shared := "false"
		if col.IsShared {
			shared = "true"
		}

		// A feedless collection still gets one row so the import side can
		// recreate it.
		if len(col.Feeds) == 0 {
			if err := w.Write([]string{col.Name, deref(col.Description), shared, "", "", "", "", "", ""}); err != nil {
				return nil, err
			}
			continue
		}

		for _, feed := range col.Feeds {
			row := []string{
				col.Name,
				deref(col.Description),
				shared,
				feed.Title,
				feed.URL,
				deref(feed.Description),
				deref(feed.Category),
				feed.UpdateFreq,
				feed.Status,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseCSV(data []byte) (*CollectionsExport, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, apperrors.NewValidationError("invalid CSV payload",
			"usecase", "ExportUsecase", "Import",
			map[string]any{"cause": err.Error()})
	}
	if len(records) == 0 {
		return &CollectionsExport{Version: exportVersion}, nil
	}

	idx := columnIndex(records[0])

	payload := &CollectionsExport{Version: exportVersion}
	byName := map[string]int{}

	for _, record := range records[1:] {
		field := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		name := field("collection_name")
		if name == "" {
			continue
		}

		pos, ok := byName[name]
		if !ok {
			col := ExportedCollection{
				Name:     name,
				IsShared: strings.EqualFold(field("isShared"), "true"),
			}
			if desc := field("collection_description"); desc != "" {
				col.Description = &desc
			}
			payload.Collections = append(payload.Collections, col)
			pos = len(payload.Collections) - 1
			byName[name] = pos
		}

		url := field("feed_url")
		if url == "" {
			continue
		}

		feed := ExportedFeed{
			Title:      field("feed_title"),
			URL:        url,
			UpdateFreq: field("updateFreq"),
			Status:     field("status"),
		}
		if desc := field("feed_description"); desc != "" {
			feed.Description = &desc
		}
		if cat := field("category"); cat != "" {
			feed.Category = &cat
		}
		payload.Collections[pos].Feeds = append(payload.Collections[pos].Feeds, feed)
	}

	return payload, nil
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}
	return idx
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
