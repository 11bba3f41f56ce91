package static

import (
	"bytes"
	"html/template"
	"net/url"
	"os"
	"sort"
	"strings"
)

var listingTemplate = template.Must(template.New("listing").Parse(`<!DOCTYPE HTML>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Directory listing for {{.Path}}</title>
</head>
<body>
<h1>Directory listing for {{.Path}}</h1>
<hr>
<ul>
{{- range .Entries}}
<li><a href="{{.Href}}">{{.Display}}</a></li>
{{- end}}
</ul>
<hr>
</body>
</html>
`))

type listingEntry struct {
	Href    template.URL
	Display string
}

// renderListing builds the HTML index of dir. urlPath is the decoded request
// path shown in the title.
func renderListing(dir, urlPath string) ([]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	items := make([]listingEntry, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		display, link := name, name
		switch {
		case e.IsDir():
			display += "/"
			link += "/"
		case e.Type()&os.ModeSymlink != 0:
			display += "@"
		}
		// url.URL escapes reserved characters and guards names like "a:b"
		// from being read as a scheme.
		href := (&url.URL{Path: link}).String()
		items = append(items, listingEntry{Href: template.URL(href), Display: display})
	}

	var buf bytes.Buffer
	err = listingTemplate.Execute(&buf, struct {
		Path    string
		Entries []listingEntry
	}{Path: urlPath, Entries: items})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
