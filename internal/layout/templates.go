package layout

// ── Page ──────────────────────────────────────────────────────────────────────

const tmplPage = `
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootswatch@5.3.3/dist/sketchy/bootstrap.min.css">
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
<style>
.graph{min-height:450px}
.tab-pane{display:none}
.tab-pane.active{display:block}
</style>
</head>
<body>
{{template "node" .Root}}
<script>
(function () {
  const callbacks = {{.Callbacks}} || [];

  function current(id) {
    const el = document.getElementById(id);
    return el && el.value !== "" ? el.value : null;
  }

  function apply(outputs) {
    for (const [id, out] of Object.entries(outputs)) {
      const el = document.getElementById(id);
      if (!el || !out) continue;
      if (out.data) {
        Plotly.react(el, out.data, out.layout);
      } else if (out.text !== undefined) {
        const h = document.createElement(out.tag || "div");
        h.textContent = out.text;
        el.replaceChildren(h);
      }
    }
  }

  async function fire(cb) {
    const inputs = {};
    cb.inputs.forEach(id => { inputs[id] = current(id); });
    const res = await fetch("/api/callbacks/" + encodeURIComponent(cb.id), {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify({inputs: inputs}),
    });
    if (res.status === 204) return;
    if (!res.ok) {
      console.error("callback " + cb.id + " failed: " + res.status);
      return;
    }
    const body = await res.json();
    apply(body.outputs || {});
  }

  callbacks.forEach(cb => {
    cb.inputs.forEach(id => {
      const el = document.getElementById(id);
      if (el) el.addEventListener("change", () => fire(cb));
    });
    fire(cb);
  });

  document.querySelectorAll("[data-tabs]").forEach(group => {
    const buttons = group.querySelectorAll(".nav-link");
    const panes = group.querySelectorAll(".tab-pane");
    buttons.forEach((btn, i) => btn.addEventListener("click", () => {
      buttons.forEach(b => b.classList.remove("active"));
      panes.forEach(p => p.classList.remove("active"));
      btn.classList.add("active");
      panes[i].classList.add("active");
    }));
  });
})();
</script>
</body>
</html>{{end}}
`

// ── Components ────────────────────────────────────────────────────────────────

const tmplNode = `
{{define "children"}}{{range .Children}}{{template "node" .}}{{end}}{{end}}

{{define "node"}}{{if eq .Type "container"}}<div class="container">{{template "children" .}}</div>
{{else if eq .Type "row"}}<div class="row">{{template "children" .}}</div>
{{else if eq .Type "col"}}<div class="col">{{template "children" .}}</div>
{{else if eq .Type "h1"}}<h1>{{.Text}}</h1>
{{else if eq .Type "h2"}}<h2>{{.Text}}</h2>
{{else if eq .Type "h3"}}<h3>{{.Text}}</h3>
{{else if eq .Type "br"}}<br>
{{else if eq .Type "ul"}}<ul>{{template "children" .}}</ul>
{{else if eq .Type "li"}}<li>{{.Text}}{{template "children" .}}</li>
{{else if eq .Type "a"}}<a href="{{.Props.Href}}">{{.Text}}</a>
{{else if eq .Type "div"}}<div id="{{.ID}}">{{template "children" .}}</div>
{{else if eq .Type "graph"}}<div id="{{.ID}}" class="graph"></div>
{{else if eq .Type "dropdown"}}{{$value := .Props.Value}}<select id="{{.ID}}" class="form-select">
<option value="">Select...</option>
{{range .Props.Options}}<option value="{{.Value}}"{{if eq .Value $value}} selected{{end}}>{{.Label}}</option>
{{end}}</select>
{{else if eq .Type "tabs"}}<div data-tabs>
<ul class="nav nav-tabs">{{range $i, $t := .Children}}<li class="nav-item"><button type="button" class="nav-link{{if eq $i 0}} active{{end}}">{{$t.Props.Label}}</button></li>{{end}}</ul>
{{range $i, $t := .Children}}<div class="tab-pane{{if eq $i 0}} active{{end}}">{{template "children" $t}}</div>
{{end}}</div>
{{end}}{{end}}
`
