package server

// pageTemplate is the single dashboard page. Markup is deliberately minimal;
// the view-model carries all formatting, the page only places it.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Alpaca Trading Algo: Live Portfolio Overview</title>
<style>
body { background: #0e1117; color: #fff; font-family: Courier, monospace; margin: 20px; }
.tile { display: inline-block; margin: 5px; padding: 12px; border-radius: 8px; background: #2a2a2a; border: 1px solid #444; min-width: 180px; }
.tile .label { font-size: 14px; color: #888; }
.tile .value { font-size: 24px; }
table { border-collapse: collapse; margin: 10px 0; }
th, td { border: 1px solid #444; background: #1c1c1c; padding: 6px 10px; text-align: right; }
th { color: #888; }
.gain { color: #0c6; }
.loss { color: #e55; }
.warning { color: #fa0; margin: 4px 0; }
.empty { color: #888; font-style: italic; }
canvas { background: #1c1c1c; border: 1px solid #444; margin: 5px; }
select { background: #1c1c1c; color: #fff; border: 1px solid #444; }
</style>
</head>
<body>
<h1>&#128200; Live Portfolio Overview</h1>

{{range .Warnings}}<div class="warning">&#9888; {{.}}</div>{{end}}

<div>
{{range .Tiles}}
  <div class="tile"><div class="label">{{.Label}}</div><div class="value {{.Direction}}">{{.Value}}</div></div>
{{end}}
</div>

<div id="charts"></div>

<h2>Open Positions</h2>
{{if .Positions.Rows}}
<table>
  <tr>{{range .Positions.Columns}}<th>{{.}}</th>{{end}}</tr>
  {{range .Positions.Rows}}<tr>{{range .}}<td class="{{.Direction}}">{{.Text}}</td>{{end}}</tr>{{end}}
</table>
{{else}}<p class="empty">{{.Positions.Empty}}</p>{{end}}

<h2>&#128220; Recent Account Activities</h2>
<form method="get">
  <select name="activity_type"><option>All</option>
    {{range .ActivityOptions.Types}}<option {{if eq . $.Filter.Type}}selected{{end}}>{{.}}</option>{{end}}
  </select>
  <select name="symbol"><option>All</option>
    {{range .ActivityOptions.Symbols}}<option {{if eq . $.Filter.Symbol}}selected{{end}}>{{.}}</option>{{end}}
  </select>
  <select name="side"><option>All</option>
    {{range .ActivityOptions.Sides}}<option {{if eq . $.Filter.Side}}selected{{end}}>{{.}}</option>{{end}}
  </select>
  <select name="date"><option>All</option>
    {{range .ActivityOptions.Dates}}<option {{if eq . $.Filter.Date}}selected{{end}}>{{.}}</option>{{end}}
  </select>
  <input type="submit" value="Filter">
</form>
{{if .Activities.Rows}}
<table>
  <tr>{{range .Activities.Columns}}<th>{{.}}</th>{{end}}</tr>
  {{range .Activities.Rows}}<tr>{{range .}}<td class="{{.Direction}}">{{.Text}}</td>{{end}}</tr>{{end}}
</table>
{{else}}<p class="empty">{{.Activities.Empty}}</p>{{end}}

<script>
const charts = {{.ChartJSON}};
const wrap = document.getElementById("charts");
for (const series of charts || []) {
  const title = document.createElement("div");
  title.className = "tile";
  title.textContent = series.name;
  const canvas = document.createElement("canvas");
  canvas.width = 900; canvas.height = 180;
  wrap.appendChild(title);
  wrap.appendChild(canvas);
  drawSeries(canvas, series.points);
}
function drawSeries(canvas, points) {
  if (!points || points.length < 2) return;
  const ctx = canvas.getContext("2d");
  const values = points.map(p => p.value);
  const lo = Math.min(...values), hi = Math.max(...values);
  const span = (hi - lo) || 1;
  ctx.strokeStyle = values[values.length - 1] >= values[0] ? "#0c6" : "#e55";
  ctx.beginPath();
  points.forEach((p, i) => {
    const x = i / (points.length - 1) * (canvas.width - 10) + 5;
    const y = canvas.height - 10 - (p.value - lo) / span * (canvas.height - 20);
    i === 0 ? ctx.moveTo(x, y) : ctx.lineTo(x, y);
  });
  ctx.stroke();
}
</script>
</body>
</html>
`
