package docgen

// Fixed layouts for the two generated document types. User-supplied fields are
// escaped by html/template at render time.

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Program Report - {{.Title}}</title>
<style>
body { font-family: Georgia, serif; margin: 40px; color: #222; }
h1 { border-bottom: 2px solid #8B0000; padding-bottom: 8px; }
table { border-collapse: collapse; width: 100%; margin: 16px 0; }
td, th { border: 1px solid #999; padding: 8px; text-align: left; }
.gallery img { max-width: 220px; margin: 6px; border: 1px solid #ccc; }
.footer { margin-top: 32px; font-size: 0.85em; color: #666; }
</style>
</head>
<body>
<h1>DISHA Program Report</h1>
<h2>{{.Title}}</h2>
<table>
<tr><th>Program No.</th><td>{{.ProgramNo}}</td></tr>
<tr><th>Type</th><td>{{.ProgramType}}</td></tr>
<tr><th>Date</th><td>{{.Date}}</td></tr>
<tr><th>Location</th><td>{{.Location}}</td></tr>
<tr><th>Toli</th><td>{{.ToliName}}</td></tr>
<tr><th>Submitted by</th><td>{{.StudentName}} ({{.ScholarNo}})</td></tr>
<tr><th>Organizer</th><td>{{.OrganizerName}} {{with .OrganizerContact}}({{.}}){{end}}</td></tr>
<tr><th>Participants</th><td>{{.ParticipantsCount}}</td></tr>
</table>
<h3>Achievements</h3>
<p>{{.Achievements}}</p>
{{if .Images}}<div class="gallery">
<h3>Photo Gallery</h3>
{{range .Images}}<img src="/uploads/{{.}}" alt="program photo">{{end}}
</div>{{end}}
<div class="footer">Generated by the DISHA portal for internal record keeping.</div>
</body>
</html>`

const newsletterTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} - DISHA Newsletter</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 0; background: #f4f4f4; }
.wrap { max-width: 680px; margin: 0 auto; background: #fff; padding: 24px; }
.banner { background: #1a5276; color: #fff; padding: 16px 24px; }
.meta { color: #777; font-size: 0.9em; margin-bottom: 16px; }
.gallery img { max-width: 200px; margin: 4px; border-radius: 4px; }
.footer { background: #1a5276; color: #fff; padding: 12px 24px; font-size: 0.8em; }
</style>
</head>
<body>
<div class="banner"><h1>DISHA Newsletter</h1></div>
<div class="wrap">
<h2>{{.Title}}</h2>
<p class="meta">{{.Date}} &middot; {{.Location}} &middot; {{.ProgramType}}</p>
<p>Team <strong>{{.ToliName}}</strong> conducted a {{.ProgramType}} activity at
{{.Location}}, reaching {{.ParticipantsCount}} participants.</p>
<h3>Highlights</h3>
<p>{{.Achievements}}</p>
{{if .Images}}<div class="gallery">
{{range .Images}}<img src="/uploads/{{.}}" alt="activity photo">{{end}}
</div>{{end}}
<p>Reported by {{.StudentName}} on behalf of {{.ToliName}}.</p>
</div>
<div class="footer">DISHA social internship programme</div>
</body>
</html>`
