package emit

import "text/template"

// headerTemplate renders the digraph's global attribute block (§4.7).
var headerTemplate = template.Must(template.New("header").Parse(
	`digraph dependencies {
  rankdir=LR;
  nodesep=0.5;
  ranksep=1.0;
  node [style="box,filled"];
  edge [arrowhead=normal];

`))

// legendClusterTemplate renders one subgraph cluster legend box.
var legendClusterTemplate = template.Must(template.New("legend").Parse(
	`  subgraph cluster_{{.ID}} {
    label="{{.Title}}";
    style=dashed;
{{range .Rows}}    "{{.}}" [shape=plaintext];
{{end}}  }
`))
