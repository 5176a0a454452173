package registry

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/praguedigital/leadgen-cli/internal/model"
)

// personNamePattern matches a sequence of two or more capitalized Czech
// words, the best-effort shape of a person's name in registry prose.
var personNamePattern = regexp.MustCompile(
	`([A-ZÁČĎÉĚÍŇÓŘŠŤÚŮÝŽ][a-záčďéěíňóřšťúůýž]+(?:\s+[A-ZÁČĎÉĚÍŇÓŘŠŤÚŮÝŽ][a-záčďéěíňóřšťúůýž]+)+)`,
)

// roleMarker pairs the phrases that flag a section with the role label
// emitted for names found there.
type roleMarker struct {
	phrases []string
	role    string
}

var roleMarkers = []roleMarker{
	{phrases: []string{"statutární orgán", "jednatel"}, role: "statutární orgán"},
	{phrases: []string{"společník", "vlastník"}, role: "společník"},
}

// ExtractOwners mines a rejstřík company page for owners and directors.
// The registry publishes no stable schema, so this is heuristic pattern
// matching: each detail section whose text carries a role marker yields at
// most one owner per marker, from the first name-shaped match. Malformed
// HTML or missing sections contribute nothing.
func ExtractOwners(htmlBody, ico string) []model.Owner {
	doc, err := html.Parse(strings.NewReader(htmlBody))
	if err != nil {
		return nil
	}

	var owners []model.Owner
	for _, section := range detailSections(doc) {
		text := nodeText(section)
		lower := strings.ToLower(text)

		for _, marker := range roleMarkers {
			if !containsAny(lower, marker.phrases) {
				continue
			}
			if name := personNamePattern.FindString(text); name != "" {
				owners = append(owners, model.Owner{
					Name: name,
					Role: marker.role,
					ICO:  ico,
				})
			}
		}
	}

	return owners
}

// detailSections returns elements whose class attribute contains "detail",
// the container the registry renders entity facts into.
func detailSections(doc *html.Node) []*html.Node {
	var sections []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasDetailClass(n) {
			sections = append(sections, n)
			return // nested details would double-count
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sections
}

func hasDetailClass(n *html.Node) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(attr.Val) {
			if class == "detail" {
				return true
			}
		}
	}
	return false
}

// nodeText collects the text content of a subtree, space-joined.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

func containsAny(s string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(s, phrase) {
			return true
		}
	}
	return false
}
