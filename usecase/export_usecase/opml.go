package export_usecase

import (
	"encoding/xml"

	apperrors "suprss/utils/errors"
)

// opmlOutline is both a collection (nested outlines, no xmlUrl) and a feed
// (type="rss" with xmlUrl). The refresh settings travel as suprss:* attrs so
// a round-trip through another reader does not lose them; readers that do
// not know the prefix ignore them.
type opmlOutline struct {
	Text        string        `xml:"text,attr"`
	Title       string        `xml:"title,attr,omitempty"`
	Type        string        `xml:"type,attr,omitempty"`
	XMLURL      string        `xml:"xmlUrl,attr,omitempty"`
	Description string        `xml:"description,attr,omitempty"`
	Category    string        `xml:"category,attr,omitempty"`
	Extra       []xml.Attr    `xml:",any,attr"`
	Outlines    []opmlOutline `xml:"outline"`
}

type opmlHead struct {
	Title       string `xml:"title"`
	DateCreated string `xml:"dateCreated,omitempty"`
}

type opmlBody struct {
	Outlines []opmlOutline `xml:"outline"`
}

type opmlDoc struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    opmlHead `xml:"head"`
	Body    opmlBody `xml:"body"`
}

func renderOPML(payload *CollectionsExport) ([]byte, error) {
	doc := opmlDoc{
		Version: "2.0",
		Head: opmlHead{
			Title:       "SupRSS collections",
			DateCreated: payload.ExportedAt,
		},
	}

	for _, col := range payload.Collections {
		outline := opmlOutline{
			Text:  col.Name,
			Title: col.Name,
		}
		if col.Description != nil {
			outline.Description = *col.Description
		}
		if col.IsShared {
			outline.Extra = append(outline.Extra, suprssAttr("isShared", "true"))
		}

		for _, feed := range col.Feeds {
			child := opmlOutline{
				Text:   feed.Title,
				Title:  feed.Title,
				Type:   "rss",
				XMLURL: feed.URL,
			}
			if feed.Description != nil {
				child.Description = *feed.Description
			}
			if feed.Category != nil {
				child.Category = *feed.Category
			}
			if feed.UpdateFreq != "" {
				child.Extra = append(child.Extra, suprssAttr("updateFreq", feed.UpdateFreq))
			}
			if feed.Status != "" {
				child.Extra = append(child.Extra, suprssAttr("status", feed.Status))
			}
			outline.Outlines = append(outline.Outlines, child)
		}

		doc.Body.Outlines = append(doc.Body.Outlines, outline)
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

func parseOPML(data []byte) (*CollectionsExport, error) {
	var doc opmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewValidationError("invalid OPML payload",
			"usecase", "ExportUsecase", "Import",
			map[string]any{"cause": err.Error()})
	}

	payload := &CollectionsExport{Version: exportVersion}

	for _, outline := range doc.Body.Outlines {
		// A top-level feed outline with no folder goes into a collection
		// named after itself, mirroring flat OPML files from other readers.
		if outline.XMLURL != "" {
			payload.Collections = append(payload.Collections, ExportedCollection{
				Name:  outlineName(outline),
				Feeds: []ExportedFeed{outlineToFeed(outline)},
			})
			continue
		}

		col := ExportedCollection{
			Name:     outlineName(outline),
			IsShared: suprssAttrValue(outline.Extra, "isShared") == "true",
		}
		if outline.Description != "" {
			desc := outline.Description
			col.Description = &desc
		}
		for _, child := range collectFeedOutlines(outline.Outlines) {
			col.Feeds = append(col.Feeds, outlineToFeed(child))
		}
		payload.Collections = append(payload.Collections, col)
	}

	return payload, nil
}

// collectFeedOutlines flattens arbitrarily nested folders into the feed
// outlines they contain.
func collectFeedOutlines(outlines []opmlOutline) []opmlOutline {
	var feeds []opmlOutline
	for _, o := range outlines {
		if o.XMLURL != "" {
			feeds = append(feeds, o)
			continue
		}
		feeds = append(feeds, collectFeedOutlines(o.Outlines)...)
	}
	return feeds
}

func outlineToFeed(outline opmlOutline) ExportedFeed {
	feed := ExportedFeed{
		Title:      outlineName(outline),
		URL:        outline.XMLURL,
		UpdateFreq: suprssAttrValue(outline.Extra, "updateFreq"),
		Status:     suprssAttrValue(outline.Extra, "status"),
	}
	if outline.Description != "" {
		desc := outline.Description
		feed.Description = &desc
	}
	if outline.Category != "" {
		cat := outline.Category
		feed.Category = &cat
	}
	return feed
}

func outlineName(outline opmlOutline) string {
	if outline.Text != "" {
		return outline.Text
	}
	return outline.Title
}

func suprssAttr(local, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: "suprss:" + local}, Value: value}
}

// suprssAttrValue looks an extension attribute up by local name. The decoder
// reports an undeclared prefix as the attr's namespace, so matching on the
// local part covers both prefixed and bare spellings.
func suprssAttrValue(attrs []xml.Attr, local string) string {
	for _, attr := range attrs {
		if attr.Name.Local == local || attr.Name.Local == "suprss:"+local {
			return attr.Value
		}
	}
	return ""
}
