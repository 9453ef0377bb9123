// ABOUTME: Page assembler rendering drills into a self-contained HTML document.
// ABOUTME: Embeds the drill payload as JSON and decodes it back from a rendered page.

package page

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/harper/drillbook/internal/models"
)

// PayloadElementID is the id of the script element holding the payload.
const PayloadElementID = "drill-data"

// DefaultTitle is used when a Document has no title.
const DefaultTitle = "Hockey Drills Database"

// ErrNoPayload is returned by DecodePayload when the document has no payload element.
var ErrNoPayload = errors.New("no drill payload in document")

//go:embed page.html.tmpl
var pageHTML string

var pageTpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"brand": brand,
}).Parse(pageHTML))

// Payload is the data embedded in a generated page.
type Payload struct {
	Records []*models.Record `json:"drills" yaml:"drills"`
	Tags    []string         `json:"tags" yaml:"tags"`
}

// Document is everything needed to render one page.
type Document struct {
	Title   string
	Records []*models.Record
	Tags    []string
}

// NewDocument builds a Document and derives its tag vocabulary from records.
func NewDocument(title string, records []*models.Record) Document {
	return Document{
		Title:   title,
		Records: records,
		Tags:    models.Vocabulary(records),
	}
}

type pageData struct {
	Title       string
	RecordCount int
	TagCount    int
	Payload     Payload
}

// Render writes the page for doc to w.
func Render(w io.Writer, doc Document) error {
	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = DefaultTitle
	}

	records := doc.Records
	if records == nil {
		records = []*models.Record{}
	}
	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}

	data := pageData{
		Title:       title,
		RecordCount: len(records),
		TagCount:    len(tags),
		Payload:     Payload{Records: records, Tags: tags},
	}
	if err := pageTpl.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// DecodePayload reads a rendered page and returns its embedded payload.
func DecodePayload(r io.Reader) (*Payload, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	script := findPayload(root)
	if script == nil {
		return nil, ErrNoPayload
	}

	var sb strings.Builder
	for c := script.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}

	var p Payload
	if err := json.Unmarshal([]byte(sb.String()), &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &p, nil
}

func findPayload(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Script {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == PayloadElementID {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findPayload(c); found != nil {
			return found
		}
	}
	return nil
}

// brand shortens the title for the top bar, "Hockey Drills Database" -> "Hockey Drills".
func brand(title string) string {
	if short, ok := strings.CutSuffix(title, " Database"); ok && short != "" {
		return short
	}
	return title
}
