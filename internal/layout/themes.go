package layout

// Built-in layout themes. Markup embeds no external resources so the
// rasterizer only has to wait for the load event.

var themeSources = map[string]string{
	"classic": classicTheme,
	"modern":  modernTheme,
}

const classicTheme = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, 'Times New Roman', serif; color: #1a1a1a; margin: 0 48px; font-size: 11pt; }
  header { text-align: center; border-bottom: 2px solid #1a1a1a; padding-bottom: 10px; }
  h1 { margin: 0; font-size: 22pt; letter-spacing: 1px; }
  .headline { font-size: 12pt; font-style: italic; margin-top: 2px; }
  .contact { font-size: 9pt; margin-top: 6px; }
  h2 { font-size: 12pt; text-transform: uppercase; letter-spacing: 2px; border-bottom: 1px solid #999; margin: 18px 0 8px; }
  .entry { margin-bottom: 10px; }
  .entry-head { display: flex; justify-content: space-between; font-weight: bold; }
  .entry-sub { display: flex; justify-content: space-between; font-size: 9.5pt; color: #444; }
  ul { margin: 4px 0 0 18px; padding: 0; }
  li { margin-bottom: 2px; }
  .skill-row { margin-bottom: 3px; }
  .skill-key { font-weight: bold; }
</style>
</head>
<body>
<header>
  <h1>{{.Name}}</h1>
  {{if .Title}}<div class="headline">{{.Title}}</div>{{end}}
  <div class="contact">
    {{.Email}}{{if .Phone}} &middot; {{.Phone}}{{end}}{{if .Location}} &middot; {{.Location}}{{end}}
    {{range .Links}} &middot; {{.Label}}: {{.URL}}{{end}}
  </div>
</header>
{{if .Summary}}
<section>
  <h2>Summary</h2>
  <p>{{.Summary}}</p>
</section>
{{end}}
{{if .Skills}}
<section>
  <h2>Skills</h2>
  {{range $key, $items := .Skills}}
  <div class="skill-row"><span class="skill-key">{{formatKey $key}}:</span> {{join $items ", "}}</div>
  {{end}}
</section>
{{end}}
{{if .Experience}}
<section>
  <h2>Experience</h2>
  {{range .Experience}}
  <div class="entry">
    <div class="entry-head"><span>{{.Title}}</span><span>{{.StartDate}} &ndash; {{.EndDate}}</span></div>
    <div class="entry-sub"><span>{{.Company}}</span><span>{{.Location}}</span></div>
    {{if .Details}}
    <ul>
      {{range .Details}}<li>{{.}}</li>{{end}}
    </ul>
    {{end}}
  </div>
  {{end}}
</section>
{{end}}
{{if .Education}}
<section>
  <h2>Education</h2>
  {{range .Education}}
  <div class="entry">
    <div class="entry-head"><span>{{.Degree}}</span><span>{{.StartDate}} &ndash; {{.EndDate}}</span></div>
    <div class="entry-sub"><span>{{.Institution}}</span><span>{{.Location}}</span></div>
  </div>
  {{end}}
</section>
{{end}}
</body>
</html>
`

const modernTheme = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 0 40px; font-size: 10.5pt; }
  header { background: #24405e; color: #fff; margin: 0 -40px; padding: 24px 40px 18px; }
  h1 { margin: 0; font-size: 24pt; font-weight: 600; }
  .headline { font-size: 12pt; opacity: 0.85; margin-top: 2px; }
  .contact { font-size: 9pt; margin-top: 8px; opacity: 0.9; }
  h2 { font-size: 11pt; text-transform: uppercase; color: #24405e; letter-spacing: 1.5px; margin: 20px 0 6px; }
  .entry { margin-bottom: 12px; }
  .entry-head { font-weight: 600; }
  .entry-meta { font-size: 9pt; color: #666; }
  ul { margin: 4px 0 0 16px; padding: 0; }
  li { margin-bottom: 2px; }
  .skill-row { margin-bottom: 3px; }
  .skill-key { font-weight: 600; color: #24405e; }
</style>
</head>
<body>
<header>
  <h1>{{.Name}}</h1>
  {{if .Title}}<div class="headline">{{.Title}}</div>{{end}}
  <div class="contact">
    {{.Email}}{{if .Phone}} | {{.Phone}}{{end}}{{if .Location}} | {{.Location}}{{end}}
    {{range .Links}} | {{.Label}}: {{.URL}}{{end}}
  </div>
</header>
{{if .Summary}}
<h2>Profile</h2>
<p>{{.Summary}}</p>
{{end}}
{{if .Skills}}
<h2>Skills</h2>
{{range $key, $items := .Skills}}
<div class="skill-row"><span class="skill-key">{{formatKey $key}}</span> &mdash; {{join $items " / "}}</div>
{{end}}
{{end}}
{{if .Experience}}
<h2>Experience</h2>
{{range .Experience}}
<div class="entry">
  <div class="entry-head">{{.Title}} &middot; {{.Company}}</div>
  <div class="entry-meta">{{.StartDate}} &ndash; {{.EndDate}}{{if .Location}} &middot; {{.Location}}{{end}}</div>
  {{if .Details}}
  <ul>
    {{range .Details}}<li>{{.}}</li>{{end}}
  </ul>
  {{end}}
</div>
{{end}}
{{end}}
{{if .Education}}
<h2>Education</h2>
{{range .Education}}
<div class="entry">
  <div class="entry-head">{{.Degree}} &middot; {{.Institution}}</div>
  <div class="entry-meta">{{.StartDate}} &ndash; {{.EndDate}}{{if .Location}} &middot; {{.Location}}{{end}}</div>
</div>
{{end}}
{{end}}
</body>
</html>
`
