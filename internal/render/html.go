package render

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

const htmlTemplate = `{{- if .Empty -}}
<div class="team-bubbles team-bubbles--empty" style="display:flex;justify-content:center;margin-top:16px">
  <p style="color:#868e96;font-size:14px;text-align:center;margin:0">{{.Placeholder}}</p>
</div>
{{- else -}}
<div class="team-bubbles" style="display:flex;justify-content:center;margin-top:16px">
  <div style="display:flex;flex-wrap:wrap;justify-content:center;gap:20px;max-width:100%">
{{- range .Bubbles}}
    <div class="team-bubble" title="{{.Tooltip}}" style="display:flex;flex-direction:column;align-items:center;gap:4px;cursor:default">
      <div class="team-bubble__circle" style="{{circleStyle .}}">
        <span style="{{countStyle .}}">{{.TotalVotes}}</span>
      </div>
      <span class="team-bubble__caption" style="font-size:12px;font-weight:500;text-align:center;max-width:140px;overflow:hidden;display:-webkit-box;-webkit-line-clamp:2;-webkit-box-orient:vertical">{{.Caption}}</span>
    </div>
{{- end}}
  </div>
</div>
{{- end}}
`

var fontSizes = map[teambubbles.FontSize]string{
	teambubbles.FontSizeSmall:      "14px",
	teambubbles.FontSizeExtraSmall: "12px",
}

var htmlTmpl = template.Must(template.New("bubbles").Funcs(template.FuncMap{
	"circleStyle": circleStyle,
	"countStyle":  countStyle,
}).Parse(htmlTemplate))

type htmlRenderer struct{}

func NewHTML() teambubbles.Renderer {
	return htmlRenderer{}
}

func (htmlRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (htmlRenderer) Render(w io.Writer, chart *teambubbles.Chart) error {
	return htmlTmpl.Execute(w, chart)
}

func circleStyle(b teambubbles.Bubble) template.CSS {
	size := px(b.Size)
	return template.CSS(fmt.Sprintf(
		"width:%s;height:%s;border-radius:50%%;background-color:%s;display:flex;align-items:center;justify-content:center;box-shadow:0 0 8px rgba(0,0,0,0.15)",
		size, size, b.Color))
}

func countStyle(b teambubbles.Bubble) template.CSS {
	return template.CSS(fmt.Sprintf(
		"font-size:%s;font-weight:600;color:black;text-align:center;padding:0 4px",
		fontSizes[b.FontSize]))
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
