// ABOUTME: Printable single-recipe HTML page.
// ABOUTME: All drink text is escaped by html/template; the page prints itself on load.
package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/2389-research/cocktail/internal/models"
)

var printTemplate = template.Must(template.New("print").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}} — Print</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>
  @page { size: Letter; margin: 14mm; }
  :root{ --ink:#111; --muted:#475569; }
  body{ font:14px/1.5 system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial; color:var(--ink); }
  .sheet{ max-width:900px; margin:0 auto; }
  header{ text-align:center; margin-bottom:8mm; }
  h1{ font:700 28px/1.2 "Playfair Display", Georgia, serif; margin:0 0 2mm; }
  .meta{ color:var(--muted); }
  .grid{ display:grid; grid-template-columns:min(320px,40%) 1fr; gap:12mm; align-items:start; }
  .photo{ width:100%; border-radius:12px; }
  h2{ font:600 16px/1.2 "Playfair Display", Georgia, serif; margin:0 0 4mm; }
  ul{ padding-left:1.2em; margin:0; }
  .ing li{ margin:2mm 0; }
  .box{ background:#fafafa; border:1px solid #e5e7eb; border-radius:10px; padding:6mm; }
  .footer{ margin-top:10mm; text-align:center; color:var(--muted); font-size:12px; }
</style>
</head>
<body>
  <div class="sheet">
    <header>
      <h1>{{.Name}}</h1>
      <div class="meta">{{.Meta}}</div>
    </header>
    <section class="grid">
      <div>
        {{if .Thumbnail}}<img class="photo" src="{{.Thumbnail}}" alt="{{.Alt}}">{{end}}
      </div>
      <div class="box">
        <h2>Ingredients</h2>
        <ul class="ing">
          {{range .Ingredients}}<li>{{.}}</li>
          {{end}}
        </ul>
        <h2 style="margin-top:6mm">Instructions</h2>
        <p class="instructions">{{.Instructions}}</p>
      </div>
    </section>
    <p class="footer">Printed from {{.App}} • thecocktaildb.com</p>
  </div>
{{if .AutoPrint}}<script>window.onload = () => { setTimeout(() => window.print(), 60); }</script>{{end}}
</body>
</html>
`))

type printPage struct {
	App          string
	Name         string
	Alt          string
	Meta         string
	Thumbnail    string
	Ingredients  []string
	Instructions string
	AutoPrint    bool
}

// PrintHTML writes a printable page for d. autoPrint adds a script that opens the print dialog.
func PrintHTML(w io.Writer, d models.Drink, autoPrint bool) error {
	alt := d.Name
	if alt == "" {
		alt = "Drink"
	}
	page := printPage{
		App:          AppName,
		Name:         orPlaceholder(d.Name),
		Alt:          alt,
		Meta:         d.Meta(),
		Thumbnail:    d.Thumbnail,
		Ingredients:  models.IngredientLines(d),
		Instructions: orPlaceholder(d.Instructions),
		AutoPrint:    autoPrint,
	}
	if err := printTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render print page: %w", err)
	}
	return nil
}
