package views

import (
	"fmt"
	"strings"

	"github.com/juanquiga/frontendfinal/internal/domain"
)

var mesesCortos = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

// Money formatea el total de un pedido, "$35.50".
func Money(v float64) string { return fmt.Sprintf("$%.2f", v) }

// COP formatea un precio del menú con miles separados por punto, "$12.000 COP".
func COP(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	n := len(s)
	if n > 3 {
		rem := n % 3
		if rem == 0 {
			rem = 3
		}
		out := s[:rem]
		for i := rem; i < n; i += 3 {
			out += "." + s[i:i+3]
		}
		s = out
	}
	if neg {
		s = "-" + s
	}
	return "$" + s + " COP"
}

// FormatFecha muestra la fecha como "1 may 2024, 10:00". Sin fecha devuelve N/A y
// un formato desconocido se devuelve tal cual.
func FormatFecha(f *string) string {
	if f == nil || strings.TrimSpace(*f) == "" {
		return "N/A"
	}
	t, ok := domain.ParseFecha(*f)
	if !ok {
		return *f
	}
	return fmt.Sprintf("%d %s %d, %02d:%02d", t.Day(), mesesCortos[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// ItemsPreview resume el pedido por la suma de cantidades: "Sin items", "1 × Pizza"
// o "4 items (ver detalles)".
func ItemsPreview(o domain.AdminOrder) string {
	n := o.ItemCount()
	switch {
	case len(o.Items) == 0 || n <= 0:
		return "Sin items"
	case n == 1:
		return "1 × " + o.Items[0].Name()
	}
	return fmt.Sprintf("%d items (ver detalles)", n)
}

func StatusClass(s domain.OrderStatus) string {
	switch s {
	case domain.OrderStatusAttended:
		return "estado-atendido"
	case domain.OrderStatusCancelled:
		return "estado-cancelado"
	case domain.OrderStatusPending:
		return "estado-pendiente"
	}
	return "estado-otro"
}

func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
