package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// OrderEmailData données injectées dans les gabarits de notification.
type OrderEmailData struct {
	ClientName    string
	OrderID       string
	Products      []OrderEmailLine
	TotalQuantity int
	Notes         string
}

// OrderEmailLine ligne affichée dans les mails (nom figé + quantité).
type OrderEmailLine struct {
	Name     string
	Quantity int
}

// RenderAdmin rend le corps HTML de la notification interne.
func RenderAdmin(data OrderEmailData) (string, error) {
	return render("order_admin.html", data)
}

// RenderClient rend le corps HTML de la confirmation client.
func RenderClient(data OrderEmailData) (string, error) {
	return render("order_client.html", data)
}

func render(name string, data OrderEmailData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendre gabarit %s: %w", name, err)
	}
	return buf.String(), nil
}
